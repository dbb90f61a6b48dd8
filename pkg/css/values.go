package css

import (
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// ValueKind discriminates the typed forms a declaration value can take after
// cascade-time coercion.
type ValueKind int

const (
	ValueKeyword ValueKind = iota
	ValueLength            // absolute pixels
	ValuePercent           // unresolved until layout knows the containing block
	ValueAuto
	ValueNumber
	ValueColor
	ValueOpaque // registered extension property, passed through untyped
)

// Value is a single resolved declaration value. Percentages are kept as
// percent markers, not pixels: they resolve against the containing block
// during layout.
type Value struct {
	Kind    ValueKind
	Px      float64
	Pct     float64
	Num     float64
	Keyword string
	Color   Color
	Raw     string
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// rootFontSize is the basis for em/rem units. The original engine resolved
// both against a fixed 16px root.
const rootFontSize = 16.0

// ParseValue coerces a raw declaration value into a typed Value according to
// the property's registered kind. ok is false when the value is malformed
// for that property; callers drop such declarations before layout.
func ParseValue(property, raw string) (Value, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Value{}, false
	}

	info, known := propertyTable[property]
	if !known {
		return Value{}, false
	}

	switch info.Kind {
	case KindLength:
		return parseLengthValue(raw)
	case KindColor:
		return parseColorValue(raw)
	case KindNumber:
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, false
		}
		return Value{Kind: ValueNumber, Num: num, Raw: raw}, true
	case KindKeyword:
		return Value{Kind: ValueKeyword, Keyword: strings.ToLower(raw), Raw: raw}, true
	}
	return Value{}, false
}

// parseLengthValue handles px, %, em, rem, bare numbers, and auto.
func parseLengthValue(raw string) (Value, bool) {
	lower := strings.ToLower(raw)
	if lower == "auto" {
		return Value{Kind: ValueAuto, Raw: raw}, true
	}
	if strings.HasSuffix(lower, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(lower, "%"), 64)
		if err != nil {
			return Value{}, false
		}
		return Value{Kind: ValuePercent, Pct: pct, Raw: raw}, true
	}

	mult := 1.0
	num := lower
	switch {
	case strings.HasSuffix(lower, "px"):
		num = strings.TrimSuffix(lower, "px")
	case strings.HasSuffix(lower, "rem"):
		num = strings.TrimSuffix(lower, "rem")
		mult = rootFontSize
	case strings.HasSuffix(lower, "em"):
		num = strings.TrimSuffix(lower, "em")
		mult = rootFontSize
	}
	px, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Value{}, false
	}
	return Value{Kind: ValueLength, Px: px * mult, Raw: raw}, true
}

func parseColorValue(raw string) (Value, bool) {
	parsed, err := csscolorparser.Parse(raw)
	if err != nil {
		return Value{}, false
	}
	r, g, b, a := parsed.RGBA255()
	return Value{Kind: ValueColor, Color: Color{R: r, G: g, B: b, A: a}, Raw: raw}, true
}

// Resolve returns the pixel value of a length, resolving percentages against
// the containing dimension. An unresolvable percentage (containing dimension
// not yet known) and auto both resolve to the provided fallback.
func (v Value) Resolve(containing float64, fallback float64) float64 {
	switch v.Kind {
	case ValueLength:
		return v.Px
	case ValuePercent:
		if containing < 0 {
			return fallback
		}
		return containing * v.Pct / 100
	default:
		return fallback
	}
}

// IsSet reports whether the value holds an explicit length or percentage.
func (v Value) IsSet() bool {
	return v.Kind == ValueLength || v.Kind == ValuePercent
}
