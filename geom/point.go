package geom

import (
	"errors"

	"github.com/golang/geo/r2"
)

// ErrEmptyInput is returned when a point set with no points is supplied.
var ErrEmptyInput = errors.New("geom: empty point set")

// Point is an input location with its original index.
// Points are values; nothing in this module mutates one after creation.
type Point struct {
	r2.Point

	// ID is the position of the point in the input list (0..n-1).
	ID int
}

// NewPoint returns the point with identity id at (x, y).
func NewPoint(id int, x, y float64) Point {
	return Point{Point: r2.Point{X: x, Y: y}, ID: id}
}

// FromCoords assigns identities 0..n-1 to coordinate pairs in input order.
//
// Complexity: O(n) time, O(n) space.
func FromCoords(coords [][2]float64) []Point {
	pts := make([]Point, len(coords))

	var i int
	for i = range coords {
		pts[i] = NewPoint(i, coords[i][0], coords[i][1])
	}

	return pts
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.Sub(b.Point).Norm()
}

// Coincident reports whether a and b occupy the same location.
func Coincident(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y
}

// Bounds returns the axis-aligned bounding rectangle of pts.
// An empty input yields ErrEmptyInput.
//
// Complexity: O(n).
func Bounds(pts []Point) (r2.Rect, error) {
	if len(pts) == 0 {
		return r2.EmptyRect(), ErrEmptyInput
	}
	rect := r2.RectFromPoints(pts[0].Point)

	var i int
	for i = 1; i < len(pts); i++ {
		rect = rect.AddPoint(pts[i].Point)
	}

	return rect, nil
}
