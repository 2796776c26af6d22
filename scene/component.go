// Package scene collects geometric entities into a Figure and renders it under
// a world-to-view transform, as SVG or as a PNG raster.
package scene

import (
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/figure/geom"
)

type Kind int8

const (
	KindPoint Kind = iota
	KindLine
	KindLineSegment
	KindCircle
	KindPolygon
	// Reserved for coordinate axes. No component has this kind yet.
	KindCoordSystem
)

var kindNames = [...]string{"point", "line", "segment", "circle", "polygon", "axes"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds the renderers draw are green, the ones they skip are yellow.
func (k Kind) colorize(s string) string {
	switch k {
	case KindPoint, KindLineSegment, KindPolygon:
		return aurora.Green(s).String()
	case KindLine, KindCircle:
		return aurora.Yellow(s).String()
	}
	return aurora.Red(s).String()
}

// Stroke settings attached to a component. This is carried as data only: every
// renderer currently strokes in black with width 2.
type Style struct {
	StrokeWidth int
	StrokeColor int
}

// Components are polymorphic, and a figure stores them in one ordered list.
// This interface is the union over the concrete kinds; renderers dispatch on
// the concrete type.
type Component[R geom.Scalar] interface {
	Kind() Kind
	Label() string
	Style() *Style
	SetStyle(*Style)

	// Unused marker method. It closes the union to the types below, and ties
	// each component to the scalar type of its figure.
	componentTypeHint(R)
}

// Component types enumerated here with type hint
func (*Point[R]) componentTypeHint(R)       {}
func (*Line[R]) componentTypeHint(R)        {}
func (*LineSegment[R]) componentTypeHint(R) {}
func (*Circle[R]) componentTypeHint(R)      {}
func (*Polygon[R]) componentTypeHint(R)     {}

// Label and style shared by every component. An empty label means unlabelled.
type base struct {
	label string
	style *Style
}

func (b *base) Label() string     { return b.label }
func (b *base) Style() *Style     { return b.style }
func (b *base) SetStyle(s *Style) { b.style = s }

// Labelled point
type Point[R geom.Scalar] struct {
	geom.Point[R]
	base
}

func NewPoint[R geom.Scalar](x, y R, label string) *Point[R] {
	return &Point[R]{Point: geom.NewPoint(x, y), base: base{label: label}}
}

// Wrap a computed point, such as an intersection or projection, so it can be
// added to a figure.
func PointFrom[R geom.Scalar](p geom.Point[R], label string) *Point[R] {
	return &Point[R]{Point: p, base: base{label: label}}
}

func (*Point[R]) Kind() Kind { return KindPoint }

// Infinite line through two points. Figures hold it, but the renderers do not
// draw it, since that needs clipping against the viewport.
type Line[R geom.Scalar] struct {
	geom.Line[R]
	base
}

func NewLine[R geom.Scalar](first, second *Point[R], label string) *Line[R] {
	return &Line[R]{Line: *geom.NewLine(&first.Point, &second.Point), base: base{label: label}}
}

func (*Line[R]) Kind() Kind { return KindLine }

type LineSegment[R geom.Scalar] struct {
	geom.LineSegment[R]
	base
}

func NewLineSegment[R geom.Scalar](first, second *Point[R], label string) *LineSegment[R] {
	return &LineSegment[R]{LineSegment: *geom.NewLineSegment(&first.Point, &second.Point), base: base{label: label}}
}

func (*LineSegment[R]) Kind() Kind { return KindLineSegment }

type Circle[R geom.Scalar] struct {
	geom.Circle[R]
	base
}

func NewCircle[R geom.Scalar](center *Point[R], radius R, label string) *Circle[R] {
	return &Circle[R]{Circle: *geom.NewCircle(&center.Point, radius), base: base{label: label}}
}

func (*Circle[R]) Kind() Kind { return KindCircle }

type Polygon[R geom.Scalar] struct {
	geom.Polygon[R]
	base
}

func NewPolygon[R geom.Scalar](closed bool, label string, vertices ...*Point[R]) *Polygon[R] {
	poly := &Polygon[R]{base: base{label: label}}
	poly.Closed = closed
	poly.Vertices = make([]*geom.Point[R], 0, len(vertices))
	for _, v := range vertices {
		poly.Vertices = append(poly.Vertices, &v.Point)
	}
	return poly
}

// A closed polygon pre-populated with three vertices.
func NewTriangle[R geom.Scalar](a, b, c *Point[R], label string) *Polygon[R] {
	return NewPolygon(true, label, a, b, c)
}

func (*Polygon[R]) Kind() Kind { return KindPolygon }
