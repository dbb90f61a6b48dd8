package css

import (
	"sort"

	"go.uber.org/zap"

	"github.com/SaxonRah/pygame-markup-gui/pkg/markup"
)

// Resolver computes styles for elements by running the full cascade:
// user-agent defaults, author stylesheets, and inline declarations, ordered
// by importance, origin, specificity, and source order. A Resolver is not
// safe for concurrent use on the same document tree; distinct documents get
// distinct resolvers.
type Resolver struct {
	sheets     []*Stylesheet
	extensions map[string]bool
	logger     *zap.Logger
}

// NewResolver creates a resolver over the given author stylesheets, applied
// in the order given.
func NewResolver(sheets ...*Stylesheet) *Resolver {
	return &Resolver{
		sheets:     sheets,
		extensions: make(map[string]bool),
		logger:     zap.NewNop(),
	}
}

// SetLogger routes unresolved-reference warnings (unknown properties,
// malformed values) to the given logger.
func (r *Resolver) SetLogger(logger *zap.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// RegisterExtension registers property names the cascade passes through as
// opaque values with no type coercion. External consumers (sprite layers and
// the like) interpret them from the output tree.
func (r *Resolver) RegisterExtension(names ...string) {
	for _, name := range names {
		r.extensions[name] = true
	}
}

// candidate is one declaration competing for a property, tagged with its
// cascade ordering key.
type candidate struct {
	decl        Declaration
	origin      Origin
	specificity [3]int
	order       int
}

// inlineSpecificity outranks any selector-derived specificity, so inline
// declarations lose only to !important ones from stylesheets.
var inlineSpecificity = [3]int{1 << 20, 0, 0}

// ComputeStyle resolves the element's style. parent is the parent element's
// resolved style (nil at the root); unmatched inherited properties copy from
// it, unmatched non-inherited ones take the static default. Resolution is
// idempotent: identical inputs produce identical output.
func (r *Resolver) ComputeStyle(node *markup.Node, parent *ComputedStyle) *ComputedStyle {
	candidates := r.collectCandidates(node)

	// Weakest first: applying in ascending order and letting later
	// declarations overwrite selects the same winner as the cascade's
	// descending comparison.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.decl.Important != b.decl.Important {
			return !a.decl.Important
		}
		if a.origin != b.origin {
			return a.origin < b.origin
		}
		if c := CompareSpecificity(a.specificity, b.specificity); c != 0 {
			return c < 0
		}
		return a.order < b.order
	})

	style := &ComputedStyle{
		Properties: make(map[string]Value, len(propertyTable)),
		Extensions: make(map[string]string),
	}

	for _, c := range candidates {
		name := c.decl.Property
		if IsRecognized(name) {
			value, ok := ParseValue(name, c.decl.Value)
			if !ok {
				r.logger.Warn("dropping malformed declaration value",
					zap.String("property", name),
					zap.String("value", c.decl.Value),
					zap.String("tag", node.TagName))
				continue
			}
			style.Properties[name] = value
			continue
		}
		if r.extensions[name] {
			style.Extensions[name] = c.decl.Value
			continue
		}
		r.logger.Warn("ignoring unknown property",
			zap.String("property", name),
			zap.String("tag", node.TagName))
	}

	// Unmatched properties: inherit or default.
	for name := range propertyTable {
		if _, ok := style.Properties[name]; ok {
			continue
		}
		if IsInherited(name) && parent != nil {
			style.Properties[name] = parent.Properties[name]
		} else {
			style.Properties[name] = DefaultValue(name)
		}
	}

	return style
}

// collectCandidates gathers every declaration targeting the element, from
// user-agent defaults through inline style, with monotonically increasing
// order for source-order tie-breaking.
func (r *Resolver) collectCandidates(node *markup.Node) []candidate {
	candidates := make([]candidate, 0)
	order := 0

	appendSheet := func(sheet *Stylesheet) {
		for _, rule := range sheet.Rules {
			if !Matches(node, rule.Selector) {
				continue
			}
			spec := rule.Selector.Specificity()
			for _, decl := range rule.Declarations {
				candidates = append(candidates, candidate{
					decl:        decl,
					origin:      rule.Origin,
					specificity: spec,
					order:       order,
				})
				order++
			}
		}
	}

	appendSheet(userAgentSheet())
	for _, sheet := range r.sheets {
		appendSheet(sheet)
	}

	if inline := node.InlineStyle(); inline != "" {
		for _, decl := range ParseInlineDeclarations(inline) {
			candidates = append(candidates, candidate{
				decl:        decl,
				origin:      OriginInline,
				specificity: inlineSpecificity,
				order:       order,
			})
			order++
		}
	}

	return candidates
}

// ApplyStyles resolves the whole document top-down, so each child sees its
// parent's already-resolved style for inheritance.
func (r *Resolver) ApplyStyles(doc *markup.Document) map[*markup.Node]*ComputedStyle {
	styles := make(map[*markup.Node]*ComputedStyle)
	for _, child := range doc.Root.Children {
		r.applyStylesToNode(child, nil, styles)
	}
	return styles
}

func (r *Resolver) applyStylesToNode(node *markup.Node, parent *ComputedStyle, styles map[*markup.Node]*ComputedStyle) {
	current := parent
	if node.Type == markup.ElementNode {
		current = r.ComputeStyle(node, parent)
		styles[node] = current
	}
	for _, child := range node.Children {
		r.applyStylesToNode(child, current, styles)
	}
}
