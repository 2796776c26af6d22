// Package figure builds 2D geometric figures and renders them as SVG.
//
// Points, lines, segments and polygons are collected into a Figure in drawing
// order, then mapped from world coordinates onto a fixed size canvas through a
// viewport. Derived points (intersections, projections, midpoints) come from
// the line algebra of package geom.
//
// This package fixes the scalar type to float64. Use packages geom and scene
// directly for float32.
package figure

import (
	"github.com/osuushi/figure/geom"
	"github.com/osuushi/figure/scene"
)

type Vector = geom.Vector[float64]
type Figure = scene.Figure[float64]
type Viewport = scene.Viewport[float64]
type Component = scene.Component[float64]
type Point = scene.Point[float64]
type Line = scene.Line[float64]
type LineSegment = scene.LineSegment[float64]
type Circle = scene.Circle[float64]
type Polygon = scene.Polygon[float64]

var (
	ErrParallelLines     = geom.ErrParallelLines
	ErrDegenerateLine    = geom.ErrDegenerateLine
	ErrIndex             = geom.ErrIndex
	ErrInvalidViewport   = scene.ErrInvalidViewport
	ErrOutputUnavailable = scene.ErrOutputUnavailable
)

func New() *Figure {
	return scene.New[float64]()
}

func NewPoint(x, y float64, label string) *Point {
	return scene.NewPoint(x, y, label)
}

func NewLine(a, b *Point, label string) *Line {
	return scene.NewLine(a, b, label)
}

func NewLineSegment(a, b *Point, label string) *LineSegment {
	return scene.NewLineSegment(a, b, label)
}

func NewTriangle(a, b, c *Point, label string) *Polygon {
	return scene.NewTriangle(a, b, c, label)
}

// Intersection of the lines through two segments, as a new labelled point.
// Fails with ErrParallelLines or ErrDegenerateLine.
func Intersect(a, b *LineSegment, label string) (*Point, error) {
	p, err := a.Intersect(&b.Line)
	if err != nil {
		return nil, err
	}
	return scene.PointFrom(p, label), nil
}

// Foot of the perpendicular from p onto the line through s.
func Project(p *Point, s *LineSegment, label string) (*Point, error) {
	foot, err := s.ProjectFrom(p.Point)
	if err != nil {
		return nil, err
	}
	return scene.PointFrom(foot, label), nil
}

func MidPoint(s *LineSegment, label string) *Point {
	return scene.PointFrom(s.MidPoint(), label)
}
