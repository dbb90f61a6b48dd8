package layout

import (
	"github.com/SaxonRah/pygame-markup-gui/pkg/css"
	"github.com/SaxonRah/pygame-markup-gui/pkg/markup"
)

// flexItem tracks one child through flex resolution. Main sizes are
// margin-box sizes so distribution accounts for the space each child really
// occupies; outer is the margin+border+padding share of that.
type flexItem struct {
	node     *markup.Node
	style    *css.ComputedStyle
	grow     float64
	shrink   float64
	mainSize float64
	outer    float64
	minMain  css.Value
	maxMain  css.Value
}

// layoutFlexContent lays out a flex container's children along the main
// axis. Single line only: no wrapping. Returns the content height the
// children occupy.
func (r *reflow) layoutFlexContent(box *Box, childCH float64) float64 {
	isRow := box.Style.FlexDirection() == "row"

	mainAvail := box.Width
	if !isRow {
		mainAvail = childCH // unset when the container height is auto
	}

	items := r.collectFlexItems(box, isRow, childCH)
	if len(items) == 0 {
		return 0
	}

	if mainAvail >= 0 {
		resolveFlexibleLengths(items, mainAvail)
	}

	if isRow {
		return r.placeFlexRow(box, items, childCH)
	}
	return r.placeFlexColumn(box, items)
}

// collectFlexItems computes each child's flex base size: explicit main size,
// then flex-basis, then content size, clamped to the child's min/max.
func (r *reflow) collectFlexItems(box *Box, isRow bool, childCH float64) []flexItem {
	items := make([]flexItem, 0, len(box.Node.Children))

	for _, child := range box.Node.Children {
		if child.Type != markup.ElementNode {
			continue
		}
		style := r.styles[child]
		if style == nil || style.Display() == css.DisplayNone {
			continue
		}

		margin := style.Margin().Resolve(box.Width)
		border := style.BorderWidth().Resolve(box.Width)
		padding := style.Padding().Resolve(box.Width)

		item := flexItem{
			node:   child,
			style:  style,
			grow:   style.FlexGrow(),
			shrink: style.FlexShrink(),
		}

		var explicit css.Value
		var base, mainContaining float64
		if isRow {
			item.outer = margin.Left + margin.Right + border.Left + border.Right +
				padding.Left + padding.Right
			explicit = style.Width()
			mainContaining = box.Width
			item.minMain, item.maxMain = style.MinWidth(), style.MaxWidth()
		} else {
			item.outer = margin.Top + margin.Bottom + border.Top + border.Bottom +
				padding.Top + padding.Bottom
			explicit = style.Height()
			mainContaining = childCH
			item.minMain, item.maxMain = style.MinHeight(), style.MaxHeight()
		}

		switch {
		case explicit.IsSet():
			base = explicit.Resolve(mainContaining, 0)
		case style.FlexBasis().IsSet():
			base = style.FlexBasis().Resolve(mainContaining, 0)
		case isRow:
			base = r.shrinkToFitWidth(child, style)
		default:
			base = r.shrinkToFitHeight(child, style, box.Width)
		}

		base = clampMinMax(base, item.minMain, item.maxMain, mainContaining)
		item.mainSize = base + item.outer
		items = append(items, item)
	}

	return items
}

// resolveFlexibleLengths distributes free main-axis space: grow when the
// items undershoot (proportional to flex-grow, default 0), shrink when they
// overshoot (proportional to flex-shrink, default 1). Results never go
// negative.
func resolveFlexibleLengths(items []flexItem, mainAvail float64) {
	total, totalGrow, totalShrink := 0.0, 0.0, 0.0
	for i := range items {
		total += items[i].mainSize
		totalGrow += items[i].grow
		totalShrink += items[i].shrink
	}

	free := mainAvail - total
	switch {
	case free > 0 && totalGrow > 0:
		for i := range items {
			if items[i].grow > 0 {
				items[i].mainSize += free * items[i].grow / totalGrow
			}
		}
	case free < 0 && totalShrink > 0:
		for i := range items {
			if items[i].shrink > 0 {
				items[i].mainSize -= -free * items[i].shrink / totalShrink
				if items[i].mainSize < 0 {
					items[i].mainSize = 0
				}
			}
		}
	}
}

// placeFlexRow positions items left to right. Cross axis: stretch to the
// container's height unless the child has an explicit height. Returns the
// content height (the tallest margin box, or the container height when
// known).
func (r *reflow) placeFlexRow(box *Box, items []flexItem, childCH float64) float64 {
	cx := box.X + box.Border.Left + box.Padding.Left
	cy := box.Y + box.Border.Top + box.Padding.Top

	curX := cx
	contentHeight := 0.0
	for _, item := range items {
		forcedW := clamp0(item.mainSize - item.outer)

		forcedH := unset
		if !item.style.Height().IsSet() && childCH >= 0 {
			// Stretch: the margin box fills the container's cross size.
			margin := item.style.Margin().Resolve(box.Width)
			border := item.style.BorderWidth().Resolve(box.Width)
			padding := item.style.Padding().Resolve(box.Width)
			forcedH = clamp0(childCH - margin.Top - margin.Bottom -
				border.Top - border.Bottom - padding.Top - padding.Bottom)
		}

		b := r.layoutNode(item.node, curX, cy, box.Width, childCH, forcedW, forcedH)
		if b == nil {
			continue
		}
		box.Children = append(box.Children, b)
		b.Parent = box

		curX += b.MarginBoxWidth()
		if h := b.MarginBoxHeight(); h > contentHeight {
			contentHeight = h
		}
	}

	if childCH >= 0 {
		return childCH
	}
	return contentHeight
}

// placeFlexColumn positions items top to bottom. Cross axis: stretch to the
// container's width unless the child has an explicit width. Returns the
// summed content height.
func (r *reflow) placeFlexColumn(box *Box, items []flexItem) float64 {
	cx := box.X + box.Border.Left + box.Padding.Left
	cy := box.Y + box.Border.Top + box.Padding.Top

	curY := cy
	for _, item := range items {
		forcedH := clamp0(item.mainSize - item.outer)

		forcedW := unset
		if !item.style.Width().IsSet() {
			margin := item.style.Margin().Resolve(box.Width)
			border := item.style.BorderWidth().Resolve(box.Width)
			padding := item.style.Padding().Resolve(box.Width)
			forcedW = clamp0(box.Width - margin.Left - margin.Right -
				border.Left - border.Right - padding.Left - padding.Right)
		}

		b := r.layoutNode(item.node, cx, curY, box.Width, unset, forcedW, forcedH)
		if b == nil {
			continue
		}
		box.Children = append(box.Children, b)
		b.Parent = box

		curY += b.MarginBoxHeight()
	}

	return clamp0(curY - cy)
}
