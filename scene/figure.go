package scene

import (
	"fmt"
	"strings"

	"github.com/osuushi/figure/dbg"
	"github.com/osuushi/figure/geom"
)

// Number of decimals written for SVG coordinates unless Figure.Precision says
// otherwise. Matches printf's %f.
const DefaultPrecision = 6

// A figure is an ordered list of components. Render order is insertion order,
// which is also the paint order: later components are drawn on top.
//
// The figure only references its components, and the components reference
// their points. Changing a point after adding it changes the rendering.
type Figure[R geom.Scalar] struct {
	components []Component[R]

	// Decimals for SVG coordinates. Zero means DefaultPrecision, negative
	// means the shortest representation that round trips.
	Precision int
}

func New[R geom.Scalar]() *Figure[R] {
	return &Figure[R]{}
}

// Add components in order. Adding several at once is the same as adding them
// one by one. Adding a component twice draws it twice.
func (f *Figure[R]) Add(components ...Component[R]) {
	f.components = append(f.components, components...)
}

func (f *Figure[R]) Len() int {
	return len(f.components)
}

// Call fn for every component, in order.
func (f *Figure[R]) Each(fn func(i int, c Component[R])) {
	for i, c := range f.components {
		fn(i, c)
	}
}

// Copy of the component list.
func (f *Figure[R]) Components() []Component[R] {
	return append([]Component[R](nil), f.components...)
}

func (f *Figure[R]) precision() int {
	if f.Precision == 0 {
		return DefaultPrecision
	}
	if f.Precision < 0 {
		return -1
	}
	return f.Precision
}

func (f *Figure[R]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Figure (%d components)", len(f.components))
	for i, c := range f.components {
		if isNil(c) {
			fmt.Fprintf(&b, "\n  %d: Ø", i)
			continue
		}
		fmt.Fprintf(&b, "\n  %d: %s %s", i, c.Kind().colorize(c.Kind().String()), dbg.LabelOrName(c, c.Label()))
	}
	return b.String()
}
