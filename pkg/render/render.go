// Package render is the reference consumer of the layout tree: a debug
// painter that draws each box's background and border onto a raster surface
// in document order. The layout core never depends on it.
package render

import (
	"sort"

	"github.com/fogleman/gg"

	"github.com/SaxonRah/pygame-markup-gui/pkg/css"
	"github.com/SaxonRah/pygame-markup-gui/pkg/layout"
	"github.com/SaxonRah/pygame-markup-gui/pkg/markup"
)

type Renderer struct {
	context *gg.Context
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Render paints the whole layout tree, lowest z-index first, document order
// within equal z-index.
func (r *Renderer) Render(tree *layout.Tree) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	type paintEntry struct {
		box    *layout.Box
		zIndex int
		order  int
	}
	entries := make([]paintEntry, 0)
	order := 0
	tree.Walk(func(_ *markup.Node, style *css.ComputedStyle, box *layout.Box) bool {
		entries = append(entries, paintEntry{box: box, zIndex: style.ZIndex(), order: order})
		order++
		return true
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].zIndex < entries[j].zIndex
	})

	for _, entry := range entries {
		r.drawBox(entry.box)
	}
}

func (r *Renderer) drawBox(box *layout.Box) {
	if bg := box.Style.BackgroundColor(); bg.A > 0 {
		rect := box.PaddingRect()
		r.setColor(bg)
		r.context.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
		r.context.Fill()
	}
	r.drawBorders(box)
}

// drawBorders paints the four border edges as filled strips between the
// border rect and the padding rect.
func (r *Renderer) drawBorders(box *layout.Box) {
	b := box.Border
	if b.Top == 0 && b.Right == 0 && b.Bottom == 0 && b.Left == 0 {
		return
	}
	outer := box.BorderRect()
	r.setColor(box.Style.BorderColor())

	if b.Top > 0 {
		r.context.DrawRectangle(outer.X, outer.Y, outer.Width, b.Top)
		r.context.Fill()
	}
	if b.Bottom > 0 {
		r.context.DrawRectangle(outer.X, outer.Y+outer.Height-b.Bottom, outer.Width, b.Bottom)
		r.context.Fill()
	}
	if b.Left > 0 {
		r.context.DrawRectangle(outer.X, outer.Y, b.Left, outer.Height)
		r.context.Fill()
	}
	if b.Right > 0 {
		r.context.DrawRectangle(outer.X+outer.Width-b.Right, outer.Y, b.Right, outer.Height)
		r.context.Fill()
	}
}

func (r *Renderer) setColor(c css.Color) {
	r.context.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}

// SavePNG writes the rendered surface to a file.
func (r *Renderer) SavePNG(path string) error {
	return r.context.SavePNG(path)
}

// Context exposes the underlying drawing context for tests and embedding.
func (r *Renderer) Context() *gg.Context {
	return r.context
}
