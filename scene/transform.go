package scene

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/figure/geom"
	"github.com/pkg/errors"
)

// Clipping rectangle in world coordinates.
type Viewport[R geom.Scalar] struct {
	XMin, XMax, YMin, YMax R
}

func (vp Viewport[R]) Validate() error {
	for _, v := range []R{vp.XMin, vp.XMax, vp.YMin, vp.YMax} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return errors.Wrapf(ErrInvalidViewport, "non-finite bound in %+v", vp)
		}
	}
	// Negated comparisons so that equal bounds fail too
	if !(vp.XMax > vp.XMin) {
		return errors.Wrapf(ErrInvalidViewport, "x range [%v, %v] is empty", vp.XMin, vp.XMax)
	}
	if !(vp.YMax > vp.YMin) {
		return errors.Wrapf(ErrInvalidViewport, "y range [%v, %v] is empty", vp.YMin, vp.YMax)
	}
	return nil
}

// Transform world coordinates into device coordinates. The goal is to map the
// viewport rectangle (XMin, YMax) .. (XMax, YMin) onto (0, 0) .. (width,
// height), which is the affine map
//
//	X = (x - XMin) * xc  where xc = width / (XMax - XMin)
//	Y = (YMax - y) * yc  where yc = height / (YMax - YMin)
//
// Y is flipped because device space has its origin at the top left. The
// coefficients live in a gg matrix, so the raster backend can share it.
type WorldToView[R geom.Scalar] struct {
	m             gg.Matrix
	width, height int
}

func NewWorldToView[R geom.Scalar](width, height int, vp Viewport[R]) (*WorldToView[R], error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidViewport, "device size %dx%d", width, height)
	}
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	xc := float64(width) / (float64(vp.XMax) - float64(vp.XMin))
	yc := float64(height) / (float64(vp.YMax) - float64(vp.YMin))
	x0 := -float64(vp.XMin) * xc
	y0 := float64(vp.YMax) * yc
	// Finite ordered bounds can still have a span that overflows, or one so
	// small that the scale overflows.
	for _, c := range []float64{xc, yc} {
		if !(c > 0) || math.IsInf(c, 0) {
			return nil, errors.Wrapf(ErrInvalidViewport, "scale %v for %+v on %dx%d", c, vp, width, height)
		}
	}
	if math.IsInf(x0, 0) || math.IsInf(y0, 0) {
		return nil, errors.Wrapf(ErrInvalidViewport, "offset out of range for %+v on %dx%d", vp, width, height)
	}
	m := gg.Matrix{
		XX: xc, XY: 0, X0: x0,
		YX: 0, YY: -yc, Y0: y0,
	}
	return &WorldToView[R]{m: m, width: width, height: height}, nil
}

func (t *WorldToView[R]) Transform(x, y R) (float64, float64) {
	return t.m.TransformPoint(float64(x), float64(y))
}

func (t *WorldToView[R]) TransformPoint(p *geom.Point[R]) (float64, float64) {
	return t.Transform(p.X(), p.Y())
}

func (t *WorldToView[R]) Matrix() gg.Matrix {
	return t.m
}

func (t *WorldToView[R]) Size() (int, int) {
	return t.width, t.height
}
