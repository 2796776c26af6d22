package geom

import "github.com/pkg/errors"

// Construct a line passing through the specified points.
func NewLine[R Scalar](first, second *Point[R]) *Line[R] {
	return &Line[R]{Endpoints: [2]*Point[R]{first, second}}
}

func NewLineSegment[R Scalar](first, second *Point[R]) *LineSegment[R] {
	return &LineSegment[R]{Line[R]{Endpoints: [2]*Point[R]{first, second}}}
}

// The point with parameter t. This works for more general parametric curves as
// well, which is why it is phrased as an interpolation rather than as P0 + tV.
func (l *Line[R]) PointAt(t R) Point[R] {
	var result Point[R]
	for i := range result.Vector {
		result.Vector[i] = (1-t)*l.Endpoints[0].Vector[i] + t*l.Endpoints[1].Vector[i]
	}
	return result
}

// Direction vector P1 - P0.
func (l *Line[R]) Direction() Vector[R] {
	return l.Endpoints[0].VectorTo(*l.Endpoints[1])
}

func (l *Line[R]) IsDegenerate() bool {
	return l.Direction().IsZero()
}

// Compute the intersection of this line with another line.
//
// We need the parameter t on this line and t' on the other such that
// P + t V = P' + t' V', where P, P' are the initial points and V, V' are the
// direction vectors. This is the linear system (V -V') (t t')^T = P' - P, which
// Cramer's rule solves as
//
//	t = det(D, V') / det(V, V')
//
// with D = P' - P. Negating the second column and second unknown together
// leaves the ratio unchanged, so the system is solved on (V V'). Scaling V'
// leaves t unchanged as well, so V' is replaced by its unit vector, which keeps
// the determinant finite for extreme coordinates.
func (l *Line[R]) Intersect(other *Line[R]) (Point[R], error) {
	v := l.Direction()
	vp := other.Direction()

	if v.IsZero() || vp.IsZero() {
		return Point[R]{}, errors.Wrapf(ErrDegenerateLine, "intersect %v-%v with %v-%v",
			*l.Endpoints[0], *l.Endpoints[1], *other.Endpoints[0], *other.Endpoints[1])
	}
	// Exact zero is not enough: lines that are parallel up to rounding produce
	// an astronomically far intersection. The determinant of the unit
	// directions is the sine of the angle between the lines.
	up := vp.Unit()
	if abs(v.Unit().Cross(up)) <= R(Tolerance) {
		return Point[R]{}, errors.Wrapf(ErrParallelLines, "intersect %v-%v with %v-%v",
			*l.Endpoints[0], *l.Endpoints[1], *other.Endpoints[0], *other.Endpoints[1])
	}

	d := l.Endpoints[0].VectorTo(*other.Endpoints[0])
	params, err := Columns(v, up).Solve(d)
	if err != nil {
		return Point[R]{}, errors.Wrapf(ErrParallelLines, "intersect %v-%v with %v-%v",
			*l.Endpoints[0], *l.Endpoints[1], *other.Endpoints[0], *other.Endpoints[1])
	}
	return l.PointAt(params[0]), nil
}

// Get the perpendicular projection of the given point onto this line.
//
// Recall that <v1, v2> = |v1| |v2| cos(v1, v2), so <v1, v2> / |v2|^2 is the
// parameter of the projection of v1 onto v2. It is computed as
// <v1, v2 / |v2|> / |v2| so that |v2|^2 is never formed.
func (l *Line[R]) ProjectFrom(point Point[R]) (Point[R], error) {
	v1 := l.Endpoints[0].VectorTo(point)
	v2 := l.Direction()
	if v2.IsZero() {
		return Point[R]{}, errors.Wrapf(ErrDegenerateLine, "project %v onto %v-%v",
			point, *l.Endpoints[0], *l.Endpoints[1])
	}
	return l.PointAt(v1.InnerProduct(v2.Unit()) / v2.Modulus()), nil
}

// Does the point lie on the line (within tolerance of its distance)?
func (l *Line[R]) Contains(point Point[R]) bool {
	v := l.Direction()
	if v.IsZero() {
		return l.Endpoints[0].Equals(point)
	}
	w := l.Endpoints[0].VectorTo(point)
	return abs(v.Cross(w))/v.Modulus() < R(Tolerance)
}

func (s *LineSegment[R]) MidPoint() Point[R] {
	return s.PointAt(0.5)
}

func (s *LineSegment[R]) Length() R {
	return s.Direction().Modulus()
}
