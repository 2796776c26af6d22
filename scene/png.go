package scene

import (
	"image"
	"image/png"
	"io"
	"log/slog"

	"github.com/fogleman/gg"
	"github.com/osuushi/figure/internal"
	"github.com/spf13/afero"
	"golang.org/x/image/font/basicfont"
)

// Raster backend on a gg context. Coordinates arrive in device space, so
// stroke widths stay in pixels.
type ggCanvas struct {
	c *gg.Context
}

func newGGCanvas(width, height int) *ggCanvas {
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(2)
	c.SetFontFace(basicfont.Face7x13)
	return &ggCanvas{c}
}

func (g *ggCanvas) Text(x, y float64, label string) {
	// Like SVG text, y is the baseline
	g.c.DrawString(label, x, y)
}

func (g *ggCanvas) Line(x1, y1, x2, y2 float64) {
	g.c.DrawLine(x1, y1, x2, y2)
	g.c.Stroke()
}

func (g *ggCanvas) Poly(points [][2]float64, closed bool) {
	if len(points) == 0 {
		return
	}
	g.c.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		g.c.LineTo(p[0], p[1])
	}
	if closed {
		g.c.ClosePath()
	}
	g.c.Stroke()
}

// Rasterize the figure: white background, black strokes of width 2, labels in
// a fixed bitmap font.
func (f *Figure[R]) Image(width, height int, vp Viewport[R]) (img image.Image, err error) {
	t, err := NewWorldToView(width, height, vp)
	if err != nil {
		return nil, err
	}

	defer func() {
		recoveredErr := internal.HandleRenderPanicRecover(recover())
		if recoveredErr != nil {
			img = nil
			err = recoveredErr
		}
	}()

	gc := newGGCanvas(width, height)
	f.draw(t, gc, renderLogger())
	return gc.c.Image(), nil
}

func (f *Figure[R]) RenderPNG(width, height int, vp Viewport[R], path string) error {
	return f.RenderPNGFs(afero.NewOsFs(), width, height, vp, path)
}

// Same contract as RenderFs, with a PNG image instead of an SVG document.
func (f *Figure[R]) RenderPNGFs(fs afero.Fs, width, height int, vp Viewport[R], path string) error {
	img, err := f.Image(width, height, vp)
	if err != nil {
		return err
	}
	err = writeAtomic(fs, path, func(w io.Writer) error {
		if err := png.Encode(w, img); err != nil {
			return &OutputError{Err: err}
		}
		return nil
	})
	if err != nil {
		return err
	}
	renderLogger().Info("rendered png", slog.String("path", path), slog.Int("width", width), slog.Int("height", height))
	return nil
}
