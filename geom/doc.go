// Package geom holds the planar primitives the tour engine works with.
//
// A Point couples an immutable r2 coordinate pair with the stable integer
// identity it had in the input list. Identities are what tours store; the
// coordinates are only consulted by the geometric crossing test and by the
// distance matrix builder.
//
// The crossing predicate is the classic counter-clockwise test: two segments
// cross iff each one separates the endpoints of the other. Inequalities are
// strict, so collinear overlaps and touching endpoints are never reported.
// That is an approximation accepted by the tour engine, not a robust
// computational-geometry predicate.
//
// Complexity:
//   - Orientation, Intersects, SegmentsCross: O(1).
//   - Bounds: O(n).
package geom
