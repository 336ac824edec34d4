// Package tspio reads point sets and reads or writes tours.
//
// Points: CSV with an "x,y" header (ReadPoints) or a JSON5 array of pairs or
// objects (ReadPointsJSON); ReadPointsFile picks by extension. IDs are the
// 0-based row or element order. WritePoints emits the CSV form.
//
// Tours: CSV with an "index" header followed by the N indices of the open
// visiting order (WriteTour, ReadTour), or an .xlsx workbook with the same
// order plus coordinates (WriteTourXLSX). WriteTourFile picks by extension.
package tspio
