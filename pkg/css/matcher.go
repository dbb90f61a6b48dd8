package css

import (
	"strings"

	"github.com/SaxonRah/pygame-markup-gui/pkg/markup"
)

// Matches reports whether the element matches the complex selector. Matching
// starts from the rightmost (subject) part and walks the combinator chain
// outward to ancestors and siblings, short-circuiting on the first failed
// part.
func Matches(node *markup.Node, selector Selector) bool {
	if node == nil || node.Type != markup.ElementNode {
		return false
	}
	if len(selector.Parts) == 0 {
		return false
	}
	return matchesFrom(node, selector, len(selector.Parts)-1)
}

// matchesFrom checks the part at partIndex against node, then recurses along
// the combinator joining it to the previous part.
func matchesFrom(node *markup.Node, selector Selector, partIndex int) bool {
	if !matchesSimple(node, selector.Parts[partIndex]) {
		return false
	}
	if partIndex == 0 {
		return true
	}

	switch selector.Combinators[partIndex-1] {
	case Descendant:
		// Any ancestor may satisfy the previous part; try each until the
		// root is exhausted.
		for ancestor := node.Parent; ancestor != nil; ancestor = ancestor.Parent {
			if ancestor.Type == markup.ElementNode && ancestor.TagName != "document" {
				if matchesFrom(ancestor, selector, partIndex-1) {
					return true
				}
			}
		}
		return false

	case Child:
		if node.Parent != nil && node.Parent.TagName != "document" {
			return matchesFrom(node.Parent, selector, partIndex-1)
		}
		return false

	case AdjacentSibling:
		if prev := node.PreviousElementSibling(); prev != nil {
			return matchesFrom(prev, selector, partIndex-1)
		}
		return false

	case GeneralSibling:
		for prev := node.PreviousElementSibling(); prev != nil; prev = prev.PreviousElementSibling() {
			if matchesFrom(prev, selector, partIndex-1) {
				return true
			}
		}
		return false
	}
	return false
}

// matchesSimple checks one compound group against a single element.
func matchesSimple(node *markup.Node, part SimpleSelector) bool {
	if part.Tag != "" && part.Tag != "*" && node.TagName != part.Tag {
		return false
	}
	if part.ID != "" && node.ID() != part.ID {
		return false
	}
	for _, class := range part.Classes {
		if !node.HasClass(class) {
			return false
		}
	}
	for _, attr := range part.Attributes {
		if !matchesAttribute(node, attr) {
			return false
		}
	}
	// Dynamic pseudo-classes never match in a static pass, and unknown
	// pseudo-classes are rejected rather than ignored.
	return len(part.PseudoClasses) == 0
}

func matchesAttribute(node *markup.Node, attr AttributeSelector) bool {
	value, ok := node.GetAttribute(attr.Name)
	if !ok {
		return false
	}

	switch attr.Operator {
	case "":
		return true
	case "=":
		return value == attr.Value
	case "^=":
		return strings.HasPrefix(value, attr.Value)
	case "$=":
		return strings.HasSuffix(value, attr.Value)
	case "*=":
		return strings.Contains(value, attr.Value)
	case "~=":
		for _, word := range strings.Fields(value) {
			if word == attr.Value {
				return true
			}
		}
		return false
	case "|=":
		return value == attr.Value || strings.HasPrefix(value, attr.Value+"-")
	}
	return false
}
