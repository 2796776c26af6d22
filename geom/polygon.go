package geom

import "github.com/pkg/errors"

func NewPolygon[R Scalar](closed bool, vertices ...*Point[R]) *Polygon[R] {
	return &Polygon[R]{Vertices: vertices, Closed: closed}
}

// A triangle is a closed polygon with exactly three vertices.
func NewTriangle[R Scalar](a, b, c *Point[R]) *Polygon[R] {
	return &Polygon[R]{Vertices: []*Point[R]{a, b, c}, Closed: true}
}

func (poly *Polygon[R]) Append(vertices ...*Point[R]) {
	poly.Vertices = append(poly.Vertices, vertices...)
}

func (poly *Polygon[R]) Len() int {
	return len(poly.Vertices)
}

func (poly *Polygon[R]) Vertex(i int) (*Point[R], error) {
	if i < 0 || i >= len(poly.Vertices) {
		return nil, errors.Wrapf(ErrIndex, "vertex %d of %d", i, len(poly.Vertices))
	}
	return poly.Vertices[i], nil
}

// Edges in order. A closed polygon includes the implicit edge from the last
// vertex back to the first.
func (poly *Polygon[R]) Edges() []*LineSegment[R] {
	n := len(poly.Vertices)
	if n < 2 {
		return nil
	}
	count := n - 1
	if poly.Closed {
		count = n
	}
	edges := make([]*LineSegment[R], 0, count)
	for i := 0; i < count; i++ {
		edges = append(edges, NewLineSegment(poly.Vertices[i], poly.Vertices[(i+1)%n]))
	}
	return edges
}

// Arithmetic mean of the vertices. For a triangle this is the centroid, the
// common point of the three medians.
func (poly *Polygon[R]) VertexMean() Point[R] {
	var sum Vector[R]
	if len(poly.Vertices) == 0 {
		return Point[R]{}
	}
	for _, v := range poly.Vertices {
		sum = sum.Add(v.Vector)
	}
	return Point[R]{sum.Scale(1 / R(len(poly.Vertices)))}
}

func NewCircle[R Scalar](center *Point[R], radius R) *Circle[R] {
	return &Circle[R]{Center: center, Radius: radius}
}
