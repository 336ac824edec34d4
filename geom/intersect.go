package geom

import "github.com/golang/geo/r2"

// Orientation returns the signed cross product (b−a)×(c−a).
//
//	> 0  c lies to the left of the directed line a→b
//	< 0  c lies to the right
//	= 0  a, b and c are collinear
func Orientation(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Intersects reports whether the open segments p1–p2 and p3–p4 properly cross.
//
// p3 and p4 must lie strictly on opposite sides of line p1–p2, and p1 and p2
// strictly on opposite sides of line p3–p4. Collinear or touching
// configurations return false. The result does not depend on segment
// direction or on which segment is passed first.
func Intersects(p1, p2, p3, p4 r2.Point) bool {
	var (
		t1 = Orientation(p1, p2, p3)
		t2 = Orientation(p1, p2, p4)
		t3 = Orientation(p3, p4, p1)
		t4 = Orientation(p3, p4, p2)
	)

	return t1*t2 < 0 && t3*t4 < 0
}

// SegmentsCross is Intersects over identified points, with segments that
// share an endpoint (by identity or by location) excluded up front.
// Touching segments can never be untangled by a reversal, so callers scanning
// a tour must not see them as crossings.
func SegmentsCross(a, b, c, d Point) bool {
	if a.ID == c.ID || a.ID == d.ID || b.ID == c.ID || b.ID == d.ID {
		return false
	}
	if Coincident(a, c) || Coincident(a, d) || Coincident(b, c) || Coincident(b, d) {
		return false
	}

	return Intersects(a.Point, b.Point, c.Point, d.Point)
}
