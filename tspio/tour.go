package tspio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/tourlath/geom"
)

// TourSheet is the worksheet name used by WriteTourXLSX.
const TourSheet = "Tour"

const indexHeader = "index"

// openOrder drops the closing anchor of a closed tour; open orders pass
// through unchanged.
func openOrder(tour []int) []int {
	if len(tour) >= 2 && tour[0] == tour[len(tour)-1] {
		return tour[:len(tour)-1]
	}

	return tour
}

// WriteTour writes the visiting order as CSV: a header "index", then one
// point index per line. A closed tour is written without its closing anchor.
func WriteTour(w io.Writer, tour []int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{indexHeader}); err != nil {
		return fmt.Errorf("WriteTour: %w", err)
	}
	rec := make([]string, 1)
	for _, v := range openOrder(tour) {
		rec[0] = strconv.Itoa(v)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteTour: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteTour: %w", err)
	}

	return nil
}

// ReadTour parses the format written by WriteTour and returns the indices in
// file order. Whether they form a permutation is left to the caller.
func ReadTour(r io.Reader) ([]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadTour: empty input: %w", ErrBadHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadTour: header: %w", err)
	}
	col := -1
	for i, name := range header {
		if headerName(name) == indexHeader {
			col = i
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("ReadTour: header %q: %w", header, ErrBadHeader)
	}

	var order []int
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadTour: %w: %v", ErrBadRecord, err)
		}
		v, err := strconv.Atoi(strings.TrimSpace(rec[col]))
		if err != nil {
			line, _ := cr.FieldPos(col)
			return nil, fmt.Errorf("ReadTour: line %d: %w: %q", line, ErrBadRecord, rec[col])
		}
		order = append(order, v)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("ReadTour: %w", ErrNoPoints)
	}

	return order, nil
}

// WriteTourXLSX writes a single-sheet workbook: columns order and index, plus
// x and y when pts is non-nil.
func WriteTourXLSX(w io.Writer, tour []int, pts []geom.Point) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(TourSheet)
	if err != nil {
		return fmt.Errorf("WriteTourXLSX: %w", err)
	}
	f.SetActiveSheet(idx)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("WriteTourXLSX: %w", err)
	}

	header := []interface{}{"order", indexHeader}
	if pts != nil {
		header = append(header, "x", "y")
	}
	if err = f.SetSheetRow(TourSheet, "A1", &header); err != nil {
		return fmt.Errorf("WriteTourXLSX: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(TourSheet, 1, 1, style)
	}

	for k, v := range openOrder(tour) {
		row := []interface{}{k, v}
		if pts != nil {
			if v < 0 || v >= len(pts) {
				return fmt.Errorf("WriteTourXLSX: index %d of %d points: %w", v, len(pts), ErrBadRecord)
			}
			row = append(row, pts[v].X, pts[v].Y)
		}
		cell, err := excelize.CoordinatesToCellName(1, k+2)
		if err != nil {
			return fmt.Errorf("WriteTourXLSX: %w", err)
		}
		if err = f.SetSheetRow(TourSheet, cell, &row); err != nil {
			return fmt.Errorf("WriteTourXLSX: %w", err)
		}
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("WriteTourXLSX: %w", err)
	}

	return nil
}

// WriteTourFile creates path and writes the tour as .csv/.txt (WriteTour) or
// .xlsx (WriteTourXLSX).
func WriteTourFile(path string, tour []int, pts []geom.Point) (err error) {
	var write func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		write = func(w io.Writer) error { return WriteTour(w, tour) }
	case ".xlsx":
		write = func(w io.Writer) error { return WriteTourXLSX(w, tour, pts) }
	default:
		return fmt.Errorf("WriteTourFile: %s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteTourFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteTourFile: %w", cerr)
		}
	}()

	return write(f)
}
