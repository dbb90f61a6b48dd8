package layout

import (
	"math"
	"strings"

	"github.com/SaxonRah/pygame-markup-gui/pkg/css"
	"github.com/SaxonRah/pygame-markup-gui/pkg/markup"
)

// unset marks a dimension that is not forced or not known (auto containing
// height). All real sizes are clamped non-negative, so -1 is unambiguous.
const unset = -1.0

// layoutNode computes the box for one element and, recursively, its
// children. (x, y) is the margin-box origin. cw/ch are the containing
// block's content dimensions (ch may be unset). forcedW/forcedH override the
// content size when the parent algorithm (flex) has already resolved it.
//
// Width resolves top-down before any child is visited; auto height
// accumulates bottom-up from the children afterwards. That single
// top-down/bottom-up pair is the whole convergence story: a vertical
// percentage against a still-auto height resolves to 0 for the pass.
func (r *reflow) layoutNode(node *markup.Node, x, y, cw, ch, forcedW, forcedH float64) *Box {
	style := r.styles[node]
	if style == nil || style.Display() == css.DisplayNone {
		return nil
	}

	margin := style.Margin().Resolve(cw)
	border := style.BorderWidth().Resolve(cw)
	padding := style.Padding().Resolve(cw)

	box := &Box{
		Node:    node,
		Style:   style,
		Margin:  margin,
		Border:  border,
		Padding: padding,
		X:       x + margin.Left,
		Y:       y + margin.Top,
	}

	horizontalExtra := margin.Left + margin.Right +
		border.Left + border.Right + padding.Left + padding.Right

	var width float64
	switch {
	case forcedW >= 0:
		width = forcedW
	case style.Width().IsSet():
		width = style.Width().Resolve(cw, 0)
	case style.Display() == css.DisplayBlock || style.Display() == css.DisplayFlex:
		// Block-level auto width fills the containing block.
		width = cw - horizontalExtra
	default:
		// Inline-level auto width shrinks to fit the content.
		width = math.Min(r.shrinkToFitWidth(node, style), clamp0(cw-horizontalExtra))
	}
	box.Width = clampMinMax(width, style.MinWidth(), style.MaxWidth(), cw)

	heightKnown := forcedH >= 0 || style.Height().IsSet()
	if forcedH >= 0 {
		box.Height = clamp0(forcedH)
	} else if style.Height().IsSet() {
		box.Height = clampMinMax(style.Height().Resolve(ch, 0), style.MinHeight(), style.MaxHeight(), ch)
	}

	// The children's containing block height is only known when this box's
	// own height is.
	childCH := unset
	if heightKnown {
		childCH = box.Height
	}

	var contentHeight float64
	if style.Display() == css.DisplayFlex {
		contentHeight = r.layoutFlexContent(box, childCH)
	} else {
		contentHeight = r.layoutBlockContent(box, childCH)
	}

	if !heightKnown {
		box.Height = clampMinMax(contentHeight, style.MinHeight(), style.MaxHeight(), ch)
	}

	r.boxes[node] = box
	return box
}

// layoutBlockContent lays out the element's children in normal flow: block
// children stack vertically, runs of inline-level children flow
// horizontally with wrapping. Returns the content height used.
func (r *reflow) layoutBlockContent(box *Box, childCH float64) float64 {
	content := Rect{
		X:     box.X + box.Border.Left + box.Padding.Left,
		Y:     box.Y + box.Border.Top + box.Padding.Top,
		Width: box.Width,
	}
	y := content.Y

	children := box.Node.Children
	i := 0
	for i < len(children) {
		child := children[i]

		if child.Type == markup.TextNode {
			y += r.textBlockHeight(child, box.Style, content.Width)
			i++
			continue
		}

		style := r.styles[child]
		if style == nil || style.Display() == css.DisplayNone {
			i++
			continue
		}

		if isInlineLevel(style.Display()) {
			// Consume the whole run of adjacent inline-level siblings as
			// one horizontal flow.
			j := i
			for j < len(children) && r.isInlineChild(children[j]) {
				j++
			}
			y += r.layoutInlineRun(box, children[i:j], content.X, y, content.Width, childCH)
			i = j
			continue
		}

		b := r.layoutNode(child, content.X, y, content.Width, childCH, unset, unset)
		if b != nil {
			box.Children = append(box.Children, b)
			b.Parent = box
			y += b.MarginBoxHeight()
		}
		i++
	}

	return clamp0(y - content.Y)
}

// isInlineChild reports whether a child participates in an inline run.
// Text nodes break the run and lay out as their own block of lines.
func (r *reflow) isInlineChild(child *markup.Node) bool {
	if child.Type != markup.ElementNode {
		return false
	}
	style := r.styles[child]
	return style != nil && isInlineLevel(style.Display())
}

func isInlineLevel(d css.DisplayType) bool {
	return d == css.DisplayInline || d == css.DisplayInlineBlock
}

// layoutInlineRun flows a run of inline-level boxes left to right, wrapping
// to a new line when the running offset plus the next margin-box width would
// exceed the available width. Line height is the tallest margin box on the
// line. Returns the total height of the lines.
func (r *reflow) layoutInlineRun(parent *Box, run []*markup.Node, x, y, availWidth, childCH float64) float64 {
	curX := x
	lineY := y
	lineHeight := 0.0

	for _, child := range run {
		b := r.layoutNode(child, 0, 0, availWidth, childCH, unset, unset)
		if b == nil {
			continue
		}
		w := b.MarginBoxWidth()

		if curX > x && curX+w > x+availWidth {
			lineY += lineHeight
			curX = x
			lineHeight = 0
		}

		translate(b, curX, lineY)
		parent.Children = append(parent.Children, b)
		b.Parent = parent

		curX += w
		if h := b.MarginBoxHeight(); h > lineHeight {
			lineHeight = h
		}
	}

	return lineY + lineHeight - y
}

// translate shifts a box and its whole subtree.
func translate(b *Box, dx, dy float64) {
	b.X += dx
	b.Y += dy
	for _, child := range b.Children {
		translate(child, dx, dy)
	}
}

// textBlockHeight estimates the vertical space a text node occupies with the
// simple metrics this engine uses: character-count width, wrap at the
// available width, line-height tall lines.
func (r *reflow) textBlockHeight(node *markup.Node, style *css.ComputedStyle, availWidth float64) float64 {
	text := strings.TrimSpace(node.Text)
	if text == "" {
		return 0
	}
	lines := 1.0
	if w := textWidth(text, style.FontSize()); availWidth > 0 && w > availWidth {
		lines = math.Ceil(w / availWidth)
	}
	return lines * style.LineHeight()
}

// shrinkToFitWidth estimates an inline-level element's intrinsic content
// width from its text and children.
func (r *reflow) shrinkToFitWidth(node *markup.Node, style *css.ComputedStyle) float64 {
	width := 0.0
	inlineRun := 0.0
	for _, child := range node.Children {
		switch child.Type {
		case markup.TextNode:
			if text := strings.TrimSpace(child.Text); text != "" {
				inlineRun += textWidth(text, style.FontSize())
			}
		case markup.ElementNode:
			childStyle := r.styles[child]
			if childStyle == nil || childStyle.Display() == css.DisplayNone {
				continue
			}
			extra := childStyle.Margin().Resolve(0)
			b := childStyle.BorderWidth().Resolve(0)
			p := childStyle.Padding().Resolve(0)
			outer := extra.Left + extra.Right + b.Left + b.Right + p.Left + p.Right

			var inner float64
			if childStyle.Width().Kind == css.ValueLength {
				inner = childStyle.Width().Px
			} else {
				inner = r.shrinkToFitWidth(child, childStyle)
			}

			if isInlineLevel(childStyle.Display()) {
				inlineRun += inner + outer
			} else {
				width = math.Max(width, inlineRun)
				inlineRun = 0
				width = math.Max(width, inner+outer)
			}
		}
	}
	return clamp0(math.Max(width, inlineRun))
}

// shrinkToFitHeight estimates an element's intrinsic content height, used
// for flex column base sizes before the real layout pass.
func (r *reflow) shrinkToFitHeight(node *markup.Node, style *css.ComputedStyle, availWidth float64) float64 {
	probe := &reflow{styles: r.styles, boxes: make(map[*markup.Node]*Box)}
	b := probe.layoutNode(node, 0, 0, availWidth, unset, unset, unset)
	if b == nil {
		return 0
	}
	return b.Height
}

func clamp0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// clampMinMax applies min/max constraints (percentages against the
// containing dimension) and clamps the result non-negative.
func clampMinMax(v float64, min, max css.Value, containing float64) float64 {
	if max.IsSet() {
		if m := max.Resolve(containing, v); v > m {
			v = m
		}
	}
	if min.IsSet() {
		if m := min.Resolve(containing, 0); v < m {
			v = m
		}
	}
	return clamp0(v)
}
