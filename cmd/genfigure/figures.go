package main

import (
	"sort"

	"github.com/osuushi/figure"
	"github.com/pkg/errors"
)

type builder func() (*figure.Figure, error)

var figures = map[string]struct {
	help  string
	build builder
}{
	"figure1": {"Triangle ABC.", figure1},
	"figure2": {"Triangle ABC with its altitudes, medians and centroid G. " +
		"The altitude from B ends at J on CA, not at B itself as in the first version of this figure.", figure2},
}

func figureNames() []string {
	names := make([]string, 0, len(figures))
	for name := range figures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func triangleABC() (*figure.Figure, *figure.Point, *figure.Point, *figure.Point) {
	fig := figure.New()
	a := figure.NewPoint(0, 1, "A")
	b := figure.NewPoint(-1, -1, "B")
	c := figure.NewPoint(3, -1.25, "C")
	fig.Add(a, b, c)
	fig.Add(figure.NewTriangle(a, b, c, ""))
	return fig, a, b, c
}

func figure1() (*figure.Figure, error) {
	fig, _, _, _ := triangleABC()
	return fig, nil
}

func figure2() (*figure.Figure, error) {
	fig, a, b, c := triangleABC()
	bc := figure.NewLineSegment(b, c, "")
	ab := figure.NewLineSegment(a, b, "")
	ca := figure.NewLineSegment(c, a, "")

	// Feet of the altitudes
	h, err := figure.Project(a, bc, "H")
	if err != nil {
		return nil, errors.Wrap(err, "altitude from A")
	}
	i, err := figure.Project(c, ab, "I")
	if err != nil {
		return nil, errors.Wrap(err, "altitude from C")
	}
	// Projecting B onto AB would only give B back
	j, err := figure.Project(b, ca, "J")
	if err != nil {
		return nil, errors.Wrap(err, "altitude from B")
	}
	fig.Add(h, i, j)
	fig.Add(
		figure.NewLineSegment(a, h, ""),
		figure.NewLineSegment(c, i, ""),
		figure.NewLineSegment(b, j, ""),
	)

	m := figure.MidPoint(bc, "M")
	n := figure.MidPoint(ca, "N")
	p := figure.MidPoint(ab, "P")
	fig.Add(m, n, p)
	am := figure.NewLineSegment(a, m, "")
	bn := figure.NewLineSegment(b, n, "")
	cp := figure.NewLineSegment(c, p, "")
	fig.Add(am, bn, cp)

	// The medians meet at the center of gravity
	g, err := figure.Intersect(am, bn, "G")
	if err != nil {
		return nil, errors.Wrap(err, "centroid")
	}
	fig.Add(g)
	return fig, nil
}
