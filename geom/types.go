// Package geom is the 2D geometry kernel behind figures: vectors, points, lines,
// segments and polygons over a generic floating point scalar.
package geom

// Every entity is parameterized by its scalar type. All the entities that take
// part in one computation (or one figure) must share the same R.
type Scalar interface {
	~float32 | ~float64
}

// Column vector of fixed dimension two. The dimension is part of the type, so
// mismatched inner products cannot be written.
type Vector[R Scalar] [2]R

// A point is a vector with named accessors. Points are referenced by pointer
// from lines and polygons, and are never modified after construction.
type Point[R Scalar] struct {
	Vector[R]
}

// A line through two points. A point on the line is identified by a single
// parameter t whose coordinates are given by
//
//	P(t) = P0 + t (P1 - P0) = (1 - t) P0 + t P1
//
// where P0, P1 are the two endpoints. The line does not own its endpoints.
type Line[R Scalar] struct {
	Endpoints [2]*Point[R]
}

// A segment is a line whose parameter is restricted to [0, 1].
type LineSegment[R Scalar] struct {
	Line[R]
}

// Ordered vertex list. If closed, the last vertex connects back to the first
// (a polygon), otherwise it is a polyline.
type Polygon[R Scalar] struct {
	Vertices []*Point[R]
	Closed   bool
}

type Circle[R Scalar] struct {
	Center *Point[R]
	Radius R
}
