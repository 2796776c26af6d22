package geom

func NewPoint[R Scalar](x, y R) Point[R] {
	return Point[R]{Vector[R]{x, y}}
}

func (p Point[R]) X() R { return p.Vector[0] }
func (p Point[R]) Y() R { return p.Vector[1] }

// Displacement from p to q, i.e. q - p.
func (p Point[R]) VectorTo(q Point[R]) Vector[R] {
	return q.Vector.Sub(p.Vector)
}

// Translate by v, returning a new point.
func (p Point[R]) Plus(v Vector[R]) Point[R] {
	return Point[R]{p.Vector.Add(v)}
}

func (p Point[R]) Equals(q Point[R]) bool {
	return Equal(p.X(), q.X()) && Equal(p.Y(), q.Y())
}
