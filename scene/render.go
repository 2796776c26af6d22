package scene

import (
	"log/slog"

	"github.com/osuushi/figure/dbg"
	"github.com/osuushi/figure/geom"
	"github.com/osuushi/figure/internal"
	"github.com/osuushi/figure/internal/log"
)

// A canvas receives geometry already in device coordinates. The SVG and PNG
// backends implement it, so both walk the figure the same way.
type canvas interface {
	Text(x, y float64, label string)
	Line(x1, y1, x2, y2 float64)
	Poly(points [][2]float64, closed bool)
}

// Walk the components in insertion order, transform their geometry and hand
// it to the canvas. Failures panic with a RenderError, so callers must recover
// with internal.HandleRenderPanicRecover.
func (f *Figure[R]) draw(t *WorldToView[R], c canvas, logger *slog.Logger) {
	for i, component := range f.components {
		if isNil(component) {
			internal.Throw(ErrNilReference, "component %d", i)
		}
		switch comp := component.(type) {
		case *Point[R]:
			// Unlabelled points are only there to be referenced
			if comp.Label() == "" {
				continue
			}
			x, y := t.TransformPoint(&comp.Point)
			c.Text(x, y, comp.Label())

		case *LineSegment[R]:
			x1, y1 := t.TransformPoint(ref(i, comp.Endpoints[0]))
			x2, y2 := t.TransformPoint(ref(i, comp.Endpoints[1]))
			c.Line(x1, y1, x2, y2)

		case *Polygon[R]:
			points := make([][2]float64, len(comp.Vertices))
			for j, v := range comp.Vertices {
				points[j][0], points[j][1] = t.TransformPoint(ref(i, v))
			}
			c.Poly(points, comp.Closed)

		case *Line[R], *Circle[R]:
			// Lines need clipping against the viewport, and curves are not
			// supported
			logger.Debug("skipping component",
				slog.Int("index", i),
				slog.String("kind", comp.Kind().String()),
				slog.String("name", dbg.LabelOrName(comp, comp.Label())))

		default:
			internal.Fatalf("component %d: unsupported component %T", i, component)
		}
	}
}

// Also true for a typed nil pointer stored in the interface.
func isNil[R geom.Scalar](c Component[R]) bool {
	switch c := c.(type) {
	case nil:
		return true
	case *Point[R]:
		return c == nil
	case *Line[R]:
		return c == nil
	case *LineSegment[R]:
		return c == nil
	case *Circle[R]:
		return c == nil
	case *Polygon[R]:
		return c == nil
	}
	return false
}

func ref[R geom.Scalar](i int, p *geom.Point[R]) *geom.Point[R] {
	if p == nil {
		internal.Throw(ErrNilReference, "component %d", i)
	}
	return p
}

func renderLogger() *slog.Logger {
	return log.WithComponent("scene")
}
