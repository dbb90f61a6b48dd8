package css

import "strings"

// Combinator joins two compound selector parts.
type Combinator int

const (
	Descendant Combinator = iota // "a b"
	Child                        // "a > b"
	AdjacentSibling              // "a + b"
	GeneralSibling               // "a ~ b"
)

// AttributeSelector matches against an element attribute. Operator is one of
// "", "=", "^=", "$=", "*=", "~=", "|=" ("" checks existence only).
type AttributeSelector struct {
	Name     string
	Operator string
	Value    string
}

// SimpleSelector is one compound group of requirements that all apply to the
// same element: tag, id, classes, attributes, pseudo-classes.
type SimpleSelector struct {
	Tag           string // "" or "*" matches any element
	ID            string
	Classes       []string
	Attributes    []AttributeSelector
	PseudoClasses []string
}

// Selector is an ordered sequence of compound parts joined by combinators.
// Parts[len-1] is the subject (rightmost) part; Combinators[i] joins
// Parts[i] and Parts[i+1].
type Selector struct {
	Raw         string
	Parts       []SimpleSelector
	Combinators []Combinator
}

// Specificity returns the (id, class+attribute+pseudo, tag) weight tuple.
// It is a pure function of the selector text, independent of any tree.
func (s Selector) Specificity() [3]int {
	var spec [3]int
	for _, part := range s.Parts {
		if part.ID != "" {
			spec[0]++
		}
		spec[1] += len(part.Classes) + len(part.Attributes) + len(part.PseudoClasses)
		if part.Tag != "" && part.Tag != "*" {
			spec[2]++
		}
	}
	return spec
}

// CompareSpecificity compares two specificity tuples lexicographically,
// returning -1, 0, or 1.
func CompareSpecificity(a, b [3]int) int {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// ParseSelectorList parses a comma-separated selector list. Members that do
// not parse are skipped, matching the cascade's tolerance for unsupported
// selectors.
func ParseSelectorList(raw string) []Selector {
	selectors := make([]Selector, 0)
	for _, member := range strings.Split(raw, ",") {
		if sel, ok := ParseSelector(member); ok {
			selectors = append(selectors, sel)
		}
	}
	return selectors
}

// ParseSelector parses a single complex selector.
func ParseSelector(raw string) (Selector, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Selector{}, false
	}

	sel := Selector{Raw: raw}
	pending := Descendant
	havePending := false

	for _, token := range tokenizeSelector(raw) {
		switch token {
		case ">":
			pending, havePending = Child, true
		case "+":
			pending, havePending = AdjacentSibling, true
		case "~":
			pending, havePending = GeneralSibling, true
		default:
			part, ok := parseSimpleSelector(token)
			if !ok {
				return Selector{}, false
			}
			if len(sel.Parts) > 0 {
				if !havePending {
					pending = Descendant
				}
				sel.Combinators = append(sel.Combinators, pending)
			}
			sel.Parts = append(sel.Parts, part)
			pending, havePending = Descendant, false
		}
	}

	if len(sel.Parts) == 0 || havePending {
		return Selector{}, false
	}
	return sel, true
}

// tokenizeSelector splits a complex selector into compound and combinator
// tokens. Combinator characters and whitespace inside attribute brackets are
// literal, so "div>p" and `[title="a>b"]` both tokenize correctly.
func tokenizeSelector(raw string) []string {
	tokens := make([]string, 0)
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			tokens = append(tokens, sb.String())
			sb.Reset()
		}
	}

	inBracket := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case inBracket:
			if c == ']' {
				inBracket = false
			}
			sb.WriteByte(c)
		case c == '[':
			inBracket = true
			sb.WriteByte(c)
		case c == '>' || c == '+' || c == '~':
			flush()
			tokens = append(tokens, string(c))
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()
		default:
			sb.WriteByte(c)
		}
	}
	flush()
	return tokens
}

// parseSimpleSelector parses one compound group like "div.note#main[role=x]:hover".
func parseSimpleSelector(token string) (SimpleSelector, bool) {
	var part SimpleSelector
	i := 0
	for i < len(token) {
		switch token[i] {
		case '.':
			name, next := readIdent(token, i+1)
			if name == "" {
				return part, false
			}
			part.Classes = append(part.Classes, name)
			i = next
		case '#':
			name, next := readIdent(token, i+1)
			if name == "" {
				return part, false
			}
			part.ID = name
			i = next
		case ':':
			// "::" pseudo-elements are unsupported; treat like pseudo-classes
			// for specificity and let matching reject them.
			j := i + 1
			for j < len(token) && token[j] == ':' {
				j++
			}
			name, next := readIdent(token, j)
			if name == "" {
				return part, false
			}
			part.PseudoClasses = append(part.PseudoClasses, name)
			i = next
		case '[':
			end := strings.IndexByte(token[i:], ']')
			if end < 0 {
				return part, false
			}
			attr, ok := parseAttributeSelector(token[i+1 : i+end])
			if !ok {
				return part, false
			}
			part.Attributes = append(part.Attributes, attr)
			i += end + 1
		case '*':
			part.Tag = "*"
			i++
		default:
			name, next := readIdent(token, i)
			if name == "" || part.Tag != "" {
				return part, false
			}
			part.Tag = strings.ToLower(name)
			i = next
		}
	}
	return part, true
}

func parseAttributeSelector(body string) (AttributeSelector, bool) {
	body = strings.TrimSpace(body)
	if body == "" {
		return AttributeSelector{}, false
	}
	for _, op := range []string{"^=", "$=", "*=", "~=", "|=", "="} {
		if idx := strings.Index(body, op); idx >= 0 {
			name := strings.TrimSpace(body[:idx])
			value := strings.TrimSpace(body[idx+len(op):])
			value = strings.Trim(value, `"'`)
			if name == "" {
				return AttributeSelector{}, false
			}
			return AttributeSelector{Name: name, Operator: op, Value: value}, true
		}
	}
	return AttributeSelector{Name: body}, true
}

// readIdent reads a CSS identifier (letters, digits, '-', '_') starting at i.
func readIdent(s string, i int) (string, int) {
	start := i
	for i < len(s) {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' || c == '-' || c == '_' {
			i++
			continue
		}
		break
	}
	return s[start:i], i
}
