package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

func Vec[R Scalar](x, y R) Vector[R] {
	return Vector[R]{x, y}
}

// Get the i-th coordinate. Unlike indexing the array directly, this reports a
// bad index as ErrIndex instead of panicking.
func (v Vector[R]) Get(i int) (R, error) {
	if i < 0 || i >= len(v) {
		return 0, errors.Wrapf(ErrIndex, "coordinate %d of %d-vector", i, len(v))
	}
	return v[i], nil
}

func (v Vector[R]) ModulusSquare() R {
	var s R
	for _, c := range v {
		s += c * c
	}
	return s
}

// Euclidean length. Unlike the square root of ModulusSquare, this neither
// overflows nor underflows for extreme coordinates.
func (v Vector[R]) Modulus() R {
	return R(math.Hypot(float64(v[0]), float64(v[1])))
}

// The vector scaled to length one, or the zero vector if v is zero.
func (v Vector[R]) Unit() Vector[R] {
	mod := v.Modulus()
	if mod == 0 {
		return Vector[R]{}
	}
	return Vector[R]{v[0] / mod, v[1] / mod}
}

func (v Vector[R]) InnerProduct(w Vector[R]) R {
	var s R
	for i := range v {
		s += v[i] * w[i]
	}
	return s
}

// The z component of the 3D cross product, i.e. det(v, w).
func (v Vector[R]) Cross(w Vector[R]) R {
	return v[0]*w[1] - v[1]*w[0]
}

func (v Vector[R]) Add(w Vector[R]) Vector[R] {
	return Vector[R]{v[0] + w[0], v[1] + w[1]}
}

func (v Vector[R]) Sub(w Vector[R]) Vector[R] {
	return Vector[R]{v[0] - w[0], v[1] - w[1]}
}

func (v Vector[R]) Scale(s R) Vector[R] {
	return Vector[R]{s * v[0], s * v[1]}
}

func (v Vector[R]) IsZero() bool {
	return v == Vector[R]{}
}

func (v Vector[R]) String() string {
	return fmt.Sprintf("(%g, %g)", float64(v[0]), float64(v[1]))
}

// A 2x2 matrix stored as its two column vectors.
type Matrix2[R Scalar] [2]Vector[R]

func Columns[R Scalar](c0, c1 Vector[R]) Matrix2[R] {
	return Matrix2[R]{c0, c1}
}

func (m Matrix2[R]) GetEntry(i, j int) (R, error) {
	if j < 0 || j >= len(m) {
		return 0, errors.Wrapf(ErrIndex, "column %d of 2x2 matrix", j)
	}
	if i < 0 || i >= len(m[j]) {
		return 0, errors.Wrapf(ErrIndex, "row %d of 2x2 matrix", i)
	}
	return m[j][i], nil
}

func (m Matrix2[R]) Det() R {
	return m[0].Cross(m[1])
}

// Apply the linear map to v, i.e. v[0] * column0 + v[1] * column1.
func (m Matrix2[R]) Apply(v Vector[R]) Vector[R] {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1]))
}

// Solve m x = b by Cramer's rule: each unknown is the determinant of m with the
// corresponding column replaced by b, over det(m).
func (m Matrix2[R]) Solve(b Vector[R]) (Vector[R], error) {
	det := m.Det()
	if det == 0 {
		return Vector[R]{}, errors.Wrapf(ErrSingular, "columns %v %v", m[0], m[1])
	}
	return Vector[R]{
		b.Cross(m[1]) / det,
		m[0].Cross(b) / det,
	}, nil
}
