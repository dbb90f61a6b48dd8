package layout

import (
	"github.com/SaxonRah/pygame-markup-gui/pkg/css"
	"github.com/SaxonRah/pygame-markup-gui/pkg/markup"
)

// Rect is an axis-aligned rectangle in document coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point lies inside the rectangle. The external
// hit-tester runs these point-in-box queries against Box rectangles.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Box is the computed geometry for one element: the nested
// margin/border/padding/content rectangles. X, Y anchor the border box;
// Width and Height are the content box size. Boxes are created during layout
// and immutable once a reflow completes; the next reflow replaces them
// wholesale.
type Box struct {
	Node   *markup.Node
	Style  *css.ComputedStyle
	X      float64 // border-box left
	Y      float64 // border-box top
	Width  float64 // content width
	Height float64 // content height

	Margin  css.Edges
	Border  css.Edges
	Padding css.Edges

	Children []*Box
	Parent   *Box
}

// ContentRect returns the innermost rectangle.
func (b *Box) ContentRect() Rect {
	return Rect{
		X:      b.X + b.Border.Left + b.Padding.Left,
		Y:      b.Y + b.Border.Top + b.Padding.Top,
		Width:  b.Width,
		Height: b.Height,
	}
}

// PaddingRect returns the content rectangle grown by the padding.
func (b *Box) PaddingRect() Rect {
	return Rect{
		X:      b.X + b.Border.Left,
		Y:      b.Y + b.Border.Top,
		Width:  b.Padding.Left + b.Width + b.Padding.Right,
		Height: b.Padding.Top + b.Height + b.Padding.Bottom,
	}
}

// BorderRect returns the padding rectangle grown by the border widths.
func (b *Box) BorderRect() Rect {
	return Rect{
		X:      b.X,
		Y:      b.Y,
		Width:  b.Border.Left + b.Padding.Left + b.Width + b.Padding.Right + b.Border.Right,
		Height: b.Border.Top + b.Padding.Top + b.Height + b.Padding.Bottom + b.Border.Bottom,
	}
}

// MarginRect returns the border rectangle grown by the margins.
func (b *Box) MarginRect() Rect {
	border := b.BorderRect()
	return Rect{
		X:      border.X - b.Margin.Left,
		Y:      border.Y - b.Margin.Top,
		Width:  b.Margin.Left + border.Width + b.Margin.Right,
		Height: b.Margin.Top + border.Height + b.Margin.Bottom,
	}
}

// MarginBoxWidth is the horizontal space the box occupies in its parent's
// flow.
func (b *Box) MarginBoxWidth() float64 {
	return b.MarginRect().Width
}

// MarginBoxHeight is the vertical space the box occupies in its parent's
// flow.
func (b *Box) MarginBoxHeight() float64 {
	return b.MarginRect().Height
}
