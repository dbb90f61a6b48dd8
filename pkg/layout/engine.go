package layout

import (
	"errors"

	"go.uber.org/zap"

	"github.com/SaxonRah/pygame-markup-gui/pkg/css"
	"github.com/SaxonRah/pygame-markup-gui/pkg/markup"
)

// Engine computes box geometry for a document within a viewport. A reflow is
// a single synchronous pass; the engine holds no state between reflows
// beyond its configuration, so distinct documents may be laid out from
// distinct engines concurrently.
type Engine struct {
	viewport struct {
		width  float64
		height float64
	}
	extraSheets []*css.Stylesheet
	extensions  []string
	logger      *zap.Logger
}

func NewEngine(viewportWidth, viewportHeight float64) *Engine {
	e := &Engine{logger: zap.NewNop()}
	e.viewport.width = viewportWidth
	e.viewport.height = viewportHeight
	return e
}

// SetLogger routes layout and cascade warnings to the given logger.
func (e *Engine) SetLogger(logger *zap.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// AddStylesheet appends an author stylesheet applied after the document's
// own <style> sheets.
func (e *Engine) AddStylesheet(sheet *css.Stylesheet) {
	e.extraSheets = append(e.extraSheets, sheet)
}

// RegisterExtension registers opaque extension property names (see
// css.Resolver.RegisterExtension).
func (e *Engine) RegisterExtension(names ...string) {
	e.extensions = append(e.extensions, names...)
}

// Reflow runs cascade and layout for the whole document and returns the
// frozen layout tree. The returned tree is fully populated: every element
// that participates in layout has a Box. On error no tree is published.
// Reflows of the same document must not run concurrently.
func (e *Engine) Reflow(doc *markup.Document) (*Tree, error) {
	if doc == nil || doc.Root == nil {
		return nil, errors.New("layout: nil document")
	}

	for _, id := range doc.DuplicateIDs() {
		e.logger.Warn("duplicate id in document", zap.String("id", id))
	}

	sheets := make([]*css.Stylesheet, 0, len(doc.Stylesheets)+len(e.extraSheets))
	for _, text := range doc.Stylesheets {
		sheet, err := css.ParseStylesheet(text)
		if err != nil {
			// A malformed sheet is dropped; the others and layout proceed.
			e.logger.Warn("skipping malformed stylesheet", zap.Error(err))
			continue
		}
		sheets = append(sheets, sheet)
	}
	sheets = append(sheets, e.extraSheets...)

	resolver := css.NewResolver(sheets...)
	resolver.SetLogger(e.logger)
	resolver.RegisterExtension(e.extensions...)

	r := &reflow{
		styles: resolver.ApplyStyles(doc),
		boxes:  make(map[*markup.Node]*Box),
	}

	// Root children stack vertically in the viewport's containing block.
	roots := make([]*Box, 0)
	y := 0.0
	for _, node := range doc.Root.Children {
		if node.Type != markup.ElementNode {
			continue
		}
		box := r.layoutNode(node, 0, y, e.viewport.width, e.viewport.height, unset, unset)
		if box == nil {
			continue
		}
		roots = append(roots, box)
		y = box.MarginRect().Y + box.MarginBoxHeight()
	}

	return &Tree{Roots: roots, styles: r.styles, byNode: r.boxes}, nil
}

// reflow carries the per-pass state shared by the layout algorithms.
type reflow struct {
	styles map[*markup.Node]*css.ComputedStyle
	boxes  map[*markup.Node]*Box
}

// Tree is the frozen output of one reflow: the positioned, sized box tree
// with its computed styles. Read-only; consumed by the external painter and
// hit-tester.
type Tree struct {
	Roots  []*Box
	styles map[*markup.Node]*css.ComputedStyle
	byNode map[*markup.Node]*Box
}

// Walk visits every (element, style, box) triple in document order.
// Returning false stops the walk.
func (t *Tree) Walk(fn func(*markup.Node, *css.ComputedStyle, *Box) bool) {
	var walk func(*Box) bool
	walk = func(b *Box) bool {
		if !fn(b.Node, b.Style, b) {
			return false
		}
		for _, child := range b.Children {
			if !walk(child) {
				return false
			}
		}
		return true
	}
	for _, root := range t.Roots {
		if !walk(root) {
			return
		}
	}
}

// BoxFor returns the computed box for an element, or nil if the element did
// not participate in layout (display: none subtree or text node).
func (t *Tree) BoxFor(node *markup.Node) *Box {
	return t.byNode[node]
}

// StyleFor returns the resolved style for an element.
func (t *Tree) StyleFor(node *markup.Node) *css.ComputedStyle {
	return t.styles[node]
}
