package tspio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/katalvlaran/tourlath/geom"
)

// ReadPoints parses CSV with a header row naming "x" and "y" columns
// (any order, case-insensitive, extra columns ignored). Row k becomes the
// point with ID k.
func ReadPoints(r io.Reader) ([]geom.Point, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadPoints: empty input: %w", ErrBadHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadPoints: header: %w", err)
	}
	xi, yi := -1, -1
	for i, name := range header {
		switch headerName(name) {
		case "x":
			xi = i
		case "y":
			yi = i
		}
	}
	if xi < 0 || yi < 0 {
		return nil, fmt.Errorf("ReadPoints: header %q: %w", header, ErrBadHeader)
	}

	var pts []geom.Point
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadPoints: %w: %v", ErrBadRecord, err)
		}
		line, _ := cr.FieldPos(0)
		x, err := parseCoord(rec[xi])
		if err != nil {
			return nil, fmt.Errorf("ReadPoints: line %d x: %w", line, err)
		}
		y, err := parseCoord(rec[yi])
		if err != nil {
			return nil, fmt.Errorf("ReadPoints: line %d y: %w", line, err)
		}
		pts = append(pts, geom.NewPoint(len(pts), x, y))
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("ReadPoints: %w", ErrNoPoints)
	}

	return pts, nil
}

// ReadPointsJSON parses a JSON5 array whose elements are either [x, y]
// pairs or {"x": .., "y": ..} objects. Comments, trailing commas and
// unquoted keys are accepted.
func ReadPointsJSON(r io.Reader) ([]geom.Point, error) {
	var raw []interface{}
	if err := json5.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("ReadPointsJSON: %w: %v", ErrBadRecord, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("ReadPointsJSON: %w", ErrNoPoints)
	}

	pts := make([]geom.Point, len(raw))
	for i, el := range raw {
		x, y, err := coordsOf(el)
		if err != nil {
			return nil, fmt.Errorf("ReadPointsJSON: element %d: %w", i, err)
		}
		pts[i] = geom.NewPoint(i, x, y)
	}

	return pts, nil
}

// ReadPointsFile opens path and dispatches on its extension: .csv or .txt
// to ReadPoints, .json or .json5 to ReadPointsJSON.
func ReadPointsFile(path string) ([]geom.Point, error) {
	var read func(io.Reader) ([]geom.Point, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		read = ReadPoints
	case ".json", ".json5":
		read = ReadPointsJSON
	default:
		return nil, fmt.Errorf("ReadPointsFile: %s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadPointsFile: %w", err)
	}
	defer f.Close()

	return read(f)
}

// WritePoints writes pts as CSV with an "x,y" header, in slice order, using
// the shortest representation that parses back to the same float.
func WritePoints(w io.Writer, pts []geom.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return fmt.Errorf("WritePoints: %w", err)
	}
	rec := make([]string, 2)
	for _, p := range pts {
		rec[0] = strconv.FormatFloat(p.X, 'g', -1, 64)
		rec[1] = strconv.FormatFloat(p.Y, 'g', -1, 64)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WritePoints: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WritePoints: %w", err)
	}

	return nil
}

// headerName normalizes a CSV header cell: byte-order mark, spaces and case.
func headerName(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "\ufeff")))
}

// parseCoord parses a finite float.
func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadRecord, s)
	}

	return finite(v)
}

func finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: non-finite coordinate", ErrBadRecord)
	}

	return v, nil
}

// coordsOf extracts (x, y) from a decoded [x, y] pair or {"x","y"} object.
func coordsOf(el interface{}) (float64, float64, error) {
	var xv, yv interface{}
	switch v := el.(type) {
	case []interface{}:
		if len(v) != 2 {
			return 0, 0, fmt.Errorf("%w: pair of length %d", ErrBadRecord, len(v))
		}
		xv, yv = v[0], v[1]
	case map[string]interface{}:
		var okX, okY bool
		xv, okX = v["x"]
		yv, okY = v["y"]
		if !okX || !okY {
			return 0, 0, fmt.Errorf("%w: object without x and y", ErrBadRecord)
		}
	default:
		return 0, 0, fmt.Errorf("%w: unexpected %T", ErrBadRecord, el)
	}

	x, okX := xv.(float64)
	y, okY := yv.(float64)
	if !okX || !okY {
		return 0, 0, fmt.Errorf("%w: coordinates must be numbers", ErrBadRecord)
	}
	if _, err := finite(x); err != nil {
		return 0, 0, err
	}
	if _, err := finite(y); err != nil {
		return 0, 0, err
	}

	return x, y, nil
}
