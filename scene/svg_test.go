package scene

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangleGolden(t *testing.T) {
	fig, _ := triangleFigure()
	expected, err := os.ReadFile("testdata/figure1.svg")
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(renderSVG(t, fig)))
}

func TestTriangleDocument(t *testing.T) {
	fig, _ := triangleFigure()
	root := parseSVG(t, renderSVG(t, fig))

	assert.Equal(t, "600", root.Attributes["width"])
	assert.Equal(t, "400", root.Attributes["height"])
	assert.Equal(t, "1.1", root.Attributes["version"])

	texts := root.FindAll("text")
	require.Len(t, texts, 3)
	labels := []string{}
	for _, text := range texts {
		labels = append(labels, text.Content)
	}
	assert.Equal(t, []string{"A", "B", "C"}, labels)
	assert.InDelta(t, 200, attrFloat(t, texts[0], "x"), Epsilon)
	assert.InDelta(t, 100, attrFloat(t, texts[0], "y"), Epsilon)

	polygons := root.FindAll("polygon")
	require.Len(t, polygons, 1)
	points := parsePoints(t, polygons[0].Attributes["points"])
	require.Len(t, points, 3)
	assert.Equal(t, [2]float64{200, 100}, points[0])
	assert.Equal(t, [2]float64{100, 300}, points[1])
	assert.Equal(t, [2]float64{500, 325}, points[2])
	assert.Equal(t, "none", polygons[0].Attributes["fill"])
	assert.Equal(t, "black", polygons[0].Attributes["stroke"])
	assert.Equal(t, "2", polygons[0].Attributes["stroke-width"])
}

func TestEmptyFigure(t *testing.T) {
	out := string(renderSVG(t, New[float64]()))
	assert.Equal(t,
		`<?xml version="1.0" encoding="UTF-8" ?>`+"\n"+
			`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="600" height="400">`+"\n"+
			"</svg>\n",
		out)
}

func TestRenderOrderIsInsertionOrder(t *testing.T) {
	fig, abc := triangleFigure()
	a, b := abc[0], abc[1]
	fig.Add(NewLineSegment(a, b, ""))
	fig.Add(NewPoint(1.0, 1.0, "D"))

	lines := strings.Split(strings.TrimSuffix(string(renderSVG(t, fig)), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[2], `<text `))
	assert.True(t, strings.HasPrefix(lines[5], `<polygon `))
	assert.Equal(t,
		`<line stroke="black" stroke-width="2" x1="200.000000" y1="100.000000" x2="100.000000" y2="300.000000" />`,
		lines[6])
	assert.Equal(t, `<text x="300.000000" y="100.000000">D</text>`, lines[7])
	assert.Equal(t, "</svg>", lines[8])
}

func TestDuplicateComponentsRenderTwice(t *testing.T) {
	fig := New[float64]()
	a := NewPoint(0.0, 0.0, "A")
	fig.Add(a, a)
	root := parseSVG(t, renderSVG(t, fig))
	assert.Len(t, root.FindAll("text"), 2)
}

func TestOpenPolyline(t *testing.T) {
	fig := New[float64]()
	fig.Add(NewPolygon(false, "",
		NewPoint(-2.0, 2.0, ""),
		NewPoint(4.0, 2.0, ""),
		NewPoint(4.0, -2.0, ""),
		NewPoint(-2.0, -2.0, ""),
	))
	root := parseSVG(t, renderSVG(t, fig))
	assert.Empty(t, root.FindAll("polygon"))
	assert.Empty(t, root.FindAll("text"))
	polylines := root.FindAll("polyline")
	require.Len(t, polylines, 1)
	assert.Equal(t,
		[][2]float64{{0, 0}, {600, 0}, {600, 400}, {0, 400}},
		parsePoints(t, polylines[0].Attributes["points"]))
}

func TestSkippedComponents(t *testing.T) {
	fig := New[float64]()
	a := NewPoint(0.0, 1.0, "")
	b := NewPoint(-1.0, -1.0, "")
	fig.Add(a, b, NewLine(a, b, "l"), NewCircle(a, 1.0, "c"))
	assert.Equal(t, string(renderSVG(t, New[float64]())), string(renderSVG(t, fig)))
}

func TestLabelEscaping(t *testing.T) {
	fig := New[float64]()
	fig.Add(NewPoint(0.0, 0.0, `a<b & "c"`))
	out := string(renderSVG(t, fig))
	assert.Contains(t, out, `>a&lt;b &amp; &#34;c&#34;</text>`)

	root := parseSVG(t, []byte(out))
	texts := root.FindAll("text")
	require.Len(t, texts, 1)
	assert.Equal(t, `a<b & "c"`, texts[0].Content)
}

func TestPrecision(t *testing.T) {
	fig := New[float64]()
	fig.Add(NewPoint(0.0, 1.0, "A"), NewPoint(0.01, 0.0, "B"))

	fig.Precision = 2
	out := string(renderSVG(t, fig))
	assert.Contains(t, out, `<text x="200.00" y="100.00">A</text>`)
	assert.Contains(t, out, `<text x="201.00" y="200.00">B</text>`)

	fig.Precision = -1
	out = string(renderSVG(t, fig))
	assert.Contains(t, out, `<text x="200" y="100">A</text>`)

	// Output is stable
	assert.Equal(t, out, string(renderSVG(t, fig)))
}

func TestWriteSVGInvalidViewport(t *testing.T) {
	fig, _ := triangleFigure()
	var buf bytes.Buffer
	err := fig.WriteSVG(&buf, 600, 400, Viewport[float64]{XMin: 4, XMax: -2, YMin: -2, YMax: 2})
	assert.True(t, errors.Is(err, ErrInvalidViewport))
	assert.Zero(t, buf.Len())
}

type failingWriter struct {
	budget int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.budget {
		n := w.budget
		w.budget = 0
		return n, errors.New("disk full")
	}
	w.budget -= len(p)
	return len(p), nil
}

func TestWriteSVGWriterFailure(t *testing.T) {
	fig, _ := triangleFigure()
	err := fig.WriteSVG(&failingWriter{budget: 10}, demoWidth, demoHeight, demoViewport)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutputUnavailable))
	assert.Contains(t, err.Error(), "document incomplete")
	assert.Contains(t, err.Error(), "disk full")

	var outputErr *OutputError
	require.True(t, errors.As(err, &outputErr))
	assert.Empty(t, outputErr.Path)
}

func TestWriteSVGSingleWrite(t *testing.T) {
	fig, _ := triangleFigure()
	w := &countingWriter{}
	require.NoError(t, fig.WriteSVG(w, demoWidth, demoHeight, demoViewport))
	assert.Equal(t, 1, w.calls)
	assert.Equal(t, string(renderSVG(t, fig)), w.buf.String())
}

type countingWriter struct {
	buf   bytes.Buffer
	calls int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.calls++
	return w.buf.Write(p)
}

func TestWriteSVGNilComponent(t *testing.T) {
	cases := map[string]Component[float64]{
		"nil interface": nil,
		"nil point":     (*Point[float64])(nil),
		"nil segment":   (*LineSegment[float64])(nil),
		"nil polygon":   (*Polygon[float64])(nil),
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			fig, _ := triangleFigure()
			fig.Add(c)
			var buf bytes.Buffer
			err := fig.WriteSVG(&buf, demoWidth, demoHeight, demoViewport)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNilReference))
			assert.Contains(t, err.Error(), "component 4")
			assert.Zero(t, buf.Len(), "nothing is written for a failed document")
		})
	}
}

func TestRenderFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("out", 0o755))
	fig, _ := triangleFigure()

	require.NoError(t, fig.RenderFs(fs, demoWidth, demoHeight, demoViewport, "out/figure1.svg"))

	data, err := afero.ReadFile(fs, "out/figure1.svg")
	require.NoError(t, err)
	assert.Equal(t, string(renderSVG(t, fig)), string(data))

	// No temporary files are left behind
	entries, err := afero.ReadDir(fs, "out")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "figure1.svg", entries[0].Name())
}

func TestRenderFsReplacesExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "figure.svg", []byte("old"), 0o644))
	fig, _ := triangleFigure()

	require.NoError(t, fig.RenderFs(fs, demoWidth, demoHeight, demoViewport, "figure.svg"))
	data, err := afero.ReadFile(fs, "figure.svg")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<?xml")))
}

func TestRenderFsReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	fig, _ := triangleFigure()

	err := fig.RenderFs(fs, demoWidth, demoHeight, demoViewport, "figure1.svg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutputUnavailable))
	assert.Contains(t, err.Error(), "figure1.svg")

	exists, err := afero.Exists(fs, "figure1.svg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRenderFsInvalidViewport(t *testing.T) {
	fs := afero.NewMemMapFs()
	fig, _ := triangleFigure()

	err := fig.RenderFs(fs, demoWidth, demoHeight, Viewport[float64]{XMin: 1, XMax: 1, YMin: 0, YMax: 1}, "figure1.svg")
	assert.True(t, errors.Is(err, ErrInvalidViewport))

	exists, err := afero.Exists(fs, "figure1.svg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRenderFsNilReferenceKeepsPreviousFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("out", 0o755))
	fig, abc := triangleFigure()
	require.NoError(t, fig.RenderFs(fs, demoWidth, demoHeight, demoViewport, "out/figure1.svg"))
	before, err := afero.ReadFile(fs, "out/figure1.svg")
	require.NoError(t, err)

	broken := NewLineSegment(abc[0], abc[1], "")
	broken.Endpoints[1] = nil
	fig.Add(broken)

	err = fig.RenderFs(fs, demoWidth, demoHeight, demoViewport, "out/figure1.svg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNilReference))
	assert.Contains(t, err.Error(), "component 4")

	after, err := afero.ReadFile(fs, "out/figure1.svg")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	entries, err := afero.ReadDir(fs, "out")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFloat32Figure(t *testing.T) {
	fig := New[float32]()
	a := NewPoint[float32](0, 1, "A")
	b := NewPoint[float32](-1, -1, "B")
	fig.Add(a, b, NewLineSegment(a, b, ""))

	var buf bytes.Buffer
	require.NoError(t, fig.WriteSVG(&buf, 600, 400, Viewport[float32]{XMin: -2, XMax: 4, YMin: -2, YMax: 2}))
	root := parseSVG(t, buf.Bytes())
	lines := root.FindAll("line")
	require.Len(t, lines, 1)
	assert.InDelta(t, 100, attrFloat(t, lines[0], "x2"), 1e-4)
	assert.InDelta(t, 300, attrFloat(t, lines[0], "y2"), 1e-4)
}
