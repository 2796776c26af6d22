package scene

import (
	"bytes"
	"encoding/xml"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/osuushi/figure/internal"
	"github.com/spf13/afero"
)

const svgStroke = `fill="none" stroke="black" stroke-width="2"`

// The document is built in memory, so the writer sees either nothing or the
// whole of it.
type svgCanvas struct {
	buf       bytes.Buffer
	precision int
}

func (c *svgCanvas) write(parts ...string) {
	for _, s := range parts {
		c.buf.WriteString(s)
	}
}

func (c *svgCanvas) num(v float64) string {
	return strconv.FormatFloat(v, 'f', c.precision, 64)
}

func (c *svgCanvas) open(width, height int) {
	c.write(`<?xml version="1.0" encoding="UTF-8" ?>`, "\n",
		`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="`, strconv.Itoa(width),
		`" height="`, strconv.Itoa(height), `">`, "\n")
}

func (c *svgCanvas) close() {
	c.write("</svg>\n")
}

func (c *svgCanvas) Text(x, y float64, label string) {
	var escaped strings.Builder
	// Writing to a strings.Builder cannot fail
	_ = xml.EscapeText(&escaped, []byte(label))
	c.write(`<text x="`, c.num(x), `" y="`, c.num(y), `">`, escaped.String(), "</text>\n")
}

func (c *svgCanvas) Line(x1, y1, x2, y2 float64) {
	c.write(`<line stroke="black" stroke-width="2" x1="`, c.num(x1), `" y1="`, c.num(y1),
		`" x2="`, c.num(x2), `" y2="`, c.num(y2), `" />`, "\n")
}

func (c *svgCanvas) Poly(points [][2]float64, closed bool) {
	if closed {
		c.write(`<polygon `, svgStroke, ` points="`)
	} else {
		c.write(`<polyline `, svgStroke, ` points="`)
	}
	for _, p := range points {
		c.write(c.num(p[0]), ",", c.num(p[1]), " ")
	}
	c.write(`" />`, "\n")
}

// Write the figure as an SVG document of the given pixel size, showing the
// viewport. The document is written with a single call to w. If that fails, the
// returned error matches ErrOutputUnavailable and whatever reached w is an
// incomplete document.
func (f *Figure[R]) WriteSVG(w io.Writer, width, height int, vp Viewport[R]) (err error) {
	t, err := NewWorldToView(width, height, vp)
	if err != nil {
		return err
	}

	defer func() {
		recoveredErr := internal.HandleRenderPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	c := &svgCanvas{precision: f.precision()}
	c.open(width, height)
	f.draw(t, c, renderLogger())
	c.close()
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		return &OutputError{Err: err}
	}
	return nil
}

// Render the figure to an SVG file on the OS filesystem.
func (f *Figure[R]) Render(width, height int, vp Viewport[R], path string) error {
	return f.RenderFs(afero.NewOsFs(), width, height, vp, path)
}

// Render the figure to an SVG file on fs. The file at path is replaced only
// once the whole document has been written, so a failed render leaves no
// truncated document behind.
func (f *Figure[R]) RenderFs(fs afero.Fs, width, height int, vp Viewport[R], path string) error {
	if _, err := NewWorldToView(width, height, vp); err != nil {
		return err
	}
	logger := renderLogger()
	logger.Debug("rendering svg", slog.String("path", path), slog.Int("components", f.Len()))

	err := writeAtomic(fs, path, func(w io.Writer) error {
		return f.WriteSVG(w, width, height, vp)
	})
	if err != nil {
		return err
	}
	logger.Info("rendered svg", slog.String("path", path), slog.Int("width", width), slog.Int("height", height))
	return nil
}
