package scene

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/require"
)

const Epsilon = 1e-9

// Canvas and viewport of the demo figures
var demoViewport = Viewport[float64]{XMin: -2, XMax: 4, YMin: -2, YMax: 2}

const demoWidth, demoHeight = 600, 400

// Triangle ABC from the demo figures, with its points added first.
func triangleFigure() (*Figure[float64], [3]*Point[float64]) {
	fig := New[float64]()
	a := NewPoint(0.0, 1.0, "A")
	b := NewPoint(-1.0, -1.0, "B")
	c := NewPoint(3.0, -1.25, "C")
	fig.Add(a, b, c)
	fig.Add(NewTriangle(a, b, c, ""))
	return fig, [3]*Point[float64]{a, b, c}
}

func renderSVG(t *testing.T, fig *Figure[float64]) []byte {
	var buf bytes.Buffer
	require.NoError(t, fig.WriteSVG(&buf, demoWidth, demoHeight, demoViewport))
	return buf.Bytes()
}

// Parse a rendered document back, the same way polygon fixtures are loaded.
func parseSVG(t *testing.T, data []byte) *svgparser.Element {
	root, err := svgparser.Parse(bytes.NewReader(data), true)
	require.NoError(t, err)
	require.Equal(t, "svg", root.Name)
	return root
}

func parsePoints(t *testing.T, attr string) [][2]float64 {
	var points [][2]float64
	for _, pair := range strings.Fields(attr) {
		parts := strings.Split(pair, ",")
		require.Len(t, parts, 2, "invalid point string %q", pair)
		x, err := strconv.ParseFloat(parts[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(parts[1], 64)
		require.NoError(t, err)
		points = append(points, [2]float64{x, y})
	}
	return points
}

func attrFloat(t *testing.T, el *svgparser.Element, name string) float64 {
	v, err := strconv.ParseFloat(el.Attributes[name], 64)
	require.NoError(t, err, "attribute %s of <%s>", name, el.Name)
	return v
}
