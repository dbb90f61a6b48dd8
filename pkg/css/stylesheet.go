package css

import (
	"fmt"
	"strings"
)

// Origin ranks where a declaration came from. Later origins win the cascade
// among non-important declarations; see Resolver.
type Origin int

const (
	OriginUserAgent Origin = iota
	OriginAuthor
	OriginInline
)

// Declaration is one property:value pair, with its !important flag.
// The value stays raw text until cascade-time coercion.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Rule is one selector with its declaration block. A comma selector list
// produces one Rule per list member, all sharing the same declarations and
// source order index.
type Rule struct {
	Selector     Selector
	Declarations []Declaration
	Origin       Origin
	SourceOrder  int
}

// Stylesheet is an ordered sequence of rules. Order is preserved from the
// source text; the cascade uses it for tie-breaking.
type Stylesheet struct {
	Rules []Rule
}

// ParseError reports structurally malformed stylesheet text. Skippable
// defects (unknown selectors, bad declarations) never produce one.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("stylesheet parse error at offset %d: %s", e.Offset, e.Msg)
}

// ParseStylesheet parses CSS text into an ordered rule sequence with
// OriginAuthor. It fails only on unterminated blocks; unknown selectors and
// at-rules are skipped.
func ParseStylesheet(text string) (*Stylesheet, error) {
	return parseStylesheetOrigin(text, OriginAuthor)
}

func parseStylesheetOrigin(text string, origin Origin) (*Stylesheet, error) {
	sheet := &Stylesheet{Rules: make([]Rule, 0)}
	src := stripComments(text)

	order := 0
	pos := 0
	for pos < len(src) {
		// Selector text runs up to the next '{'.
		open := strings.IndexByte(src[pos:], '{')
		if open < 0 {
			if strings.TrimSpace(src[pos:]) != "" {
				return nil, &ParseError{Offset: pos, Msg: "selector without declaration block"}
			}
			break
		}
		open += pos
		selectorText := strings.TrimSpace(src[pos:open])

		end, ok := findBlockEnd(src, open)
		if !ok {
			return nil, &ParseError{Offset: open, Msg: "unterminated declaration block"}
		}

		if strings.HasPrefix(selectorText, "@") {
			// At-rules (@media, @keyframes, ...) are outside the supported
			// subset; skip the whole block.
			pos = end + 1
			continue
		}

		declarations := parseDeclarations(src[open+1 : end])
		for _, sel := range ParseSelectorList(selectorText) {
			sheet.Rules = append(sheet.Rules, Rule{
				Selector:     sel,
				Declarations: declarations,
				Origin:       origin,
				SourceOrder:  order,
			})
		}
		order++
		pos = end + 1
	}

	return sheet, nil
}

// findBlockEnd returns the index of the '}' closing the block opened at
// src[open] == '{', tracking nesting for at-rule bodies.
func findBlockEnd(src string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// stripComments replaces each /* ... */ comment with a single space, so a
// comment separates tokens the way whitespace does. An unterminated comment
// runs to the end of input.
func stripComments(src string) string {
	var sb strings.Builder
	for {
		start := strings.Index(src, "/*")
		if start < 0 {
			sb.WriteString(src)
			return sb.String()
		}
		sb.WriteString(src[:start])
		sb.WriteByte(' ')
		end := strings.Index(src[start+2:], "*/")
		if end < 0 {
			return sb.String()
		}
		src = src[start+2+end+2:]
	}
}

// parseDeclarations parses a declaration block body. Malformed declarations
// are dropped; shorthands are expanded into their longhand parts.
func parseDeclarations(body string) []Declaration {
	declarations := make([]Declaration, 0)
	for _, part := range strings.Split(body, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colon := strings.IndexByte(part, ':')
		if colon < 0 {
			continue
		}
		property := strings.ToLower(strings.TrimSpace(part[:colon]))
		value := strings.TrimSpace(part[colon+1:])

		important := false
		if cut, ok := strings.CutSuffix(value, "!important"); ok {
			value = strings.TrimSpace(cut)
			important = true
		}
		if property == "" || value == "" {
			continue
		}
		declarations = append(declarations, expandShorthand(property, value, important)...)
	}
	return declarations
}

// ParseInlineDeclarations parses a style attribute's text. Same grammar as a
// declaration block body.
func ParseInlineDeclarations(styleAttr string) []Declaration {
	return parseDeclarations(styleAttr)
}

// expandShorthand expands margin/padding/border-width box shorthands, the
// border shorthand, and the flex shorthand into longhand declarations.
func expandShorthand(property, value string, important bool) []Declaration {
	switch property {
	case "margin", "padding":
		return expandBoxShorthand(property+"-", "", value, important)
	case "border-width":
		return expandBoxShorthand("border-", "-width", value, important)
	case "border":
		return expandBorderShorthand(value, important)
	case "flex":
		return expandFlexShorthand(value, important)
	}
	return []Declaration{{Property: property, Value: value, Important: important}}
}

// expandBoxShorthand handles the 1-4 value top/right/bottom/left pattern.
func expandBoxShorthand(prefix, suffix, value string, important bool) []Declaration {
	parts := strings.Fields(value)
	var top, right, bottom, left string
	switch len(parts) {
	case 1:
		top, right, bottom, left = parts[0], parts[0], parts[0], parts[0]
	case 2:
		top, right, bottom, left = parts[0], parts[1], parts[0], parts[1]
	case 3:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[1]
	case 4:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[3]
	default:
		return nil
	}
	return []Declaration{
		{Property: prefix + "top" + suffix, Value: top, Important: important},
		{Property: prefix + "right" + suffix, Value: right, Important: important},
		{Property: prefix + "bottom" + suffix, Value: bottom, Important: important},
		{Property: prefix + "left" + suffix, Value: left, Important: important},
	}
}

// expandBorderShorthand handles "1px solid red" in any component order.
func expandBorderShorthand(value string, important bool) []Declaration {
	declarations := make([]Declaration, 0, 6)
	for _, part := range strings.Fields(value) {
		switch {
		case isBorderStyleKeyword(part):
			declarations = append(declarations,
				Declaration{Property: "border-style", Value: part, Important: important})
		case looksLikeLength(part):
			declarations = append(declarations,
				expandBoxShorthand("border-", "-width", part, important)...)
		default:
			declarations = append(declarations,
				Declaration{Property: "border-color", Value: part, Important: important})
		}
	}
	return declarations
}

// expandFlexShorthand handles "flex: <grow> [<shrink>] [<basis>]".
func expandFlexShorthand(value string, important bool) []Declaration {
	parts := strings.Fields(value)
	if len(parts) == 0 {
		return nil
	}
	declarations := []Declaration{
		{Property: "flex-grow", Value: parts[0], Important: important},
	}
	if len(parts) > 1 {
		declarations = append(declarations,
			Declaration{Property: "flex-shrink", Value: parts[1], Important: important})
	}
	if len(parts) > 2 {
		declarations = append(declarations,
			Declaration{Property: "flex-basis", Value: parts[2], Important: important})
	}
	return declarations
}

func isBorderStyleKeyword(s string) bool {
	switch s {
	case "none", "solid", "dotted", "dashed", "double", "inset", "outset":
		return true
	}
	return false
}

func looksLikeLength(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c >= '0' && c <= '9' || c == '.' || c == '-'
}
