package css

// ComputedStyle is the fully resolved style for one element: exactly one
// typed value per recognized property, plus opaque values for registered
// extension properties. Instances are produced by Resolver.ComputeStyle and
// are treated as immutable afterwards.
type ComputedStyle struct {
	Properties map[string]Value
	Extensions map[string]string
}

// Get returns the resolved value for a recognized property. After resolution
// every recognized property has a value, so ok is false only for names
// outside the recognized set.
func (s *ComputedStyle) Get(name string) (Value, bool) {
	v, ok := s.Properties[name]
	return v, ok
}

// Extension returns the opaque value of a registered extension property.
func (s *ComputedStyle) Extension(name string) (string, bool) {
	v, ok := s.Extensions[name]
	return v, ok
}

// DisplayType enumerates the display values layout dispatches on.
type DisplayType string

const (
	DisplayBlock       DisplayType = "block"
	DisplayInline      DisplayType = "inline"
	DisplayInlineBlock DisplayType = "inline-block"
	DisplayFlex        DisplayType = "flex"
	DisplayNone        DisplayType = "none"
)

// Display returns the element's display mode. Unrecognized keywords fall
// back to block.
func (s *ComputedStyle) Display() DisplayType {
	switch s.Properties["display"].Keyword {
	case "inline":
		return DisplayInline
	case "inline-block":
		return DisplayInlineBlock
	case "flex":
		return DisplayFlex
	case "none":
		return DisplayNone
	}
	return DisplayBlock
}

// Edges holds resolved pixel widths for the four sides of a box layer.
type Edges struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// EdgeValues holds the four per-side values of a box layer before percentage
// resolution.
type EdgeValues struct {
	Top    Value
	Right  Value
	Bottom Value
	Left   Value
}

// Resolve converts edge values to pixels. Horizontal and vertical
// percentages both resolve against the containing block width, per the box
// model; auto resolves to 0.
func (e EdgeValues) Resolve(containingWidth float64) Edges {
	return Edges{
		Top:    e.Top.Resolve(containingWidth, 0),
		Right:  e.Right.Resolve(containingWidth, 0),
		Bottom: e.Bottom.Resolve(containingWidth, 0),
		Left:   e.Left.Resolve(containingWidth, 0),
	}
}

func (s *ComputedStyle) edges(prefix, suffix string) EdgeValues {
	return EdgeValues{
		Top:    s.Properties[prefix+"top"+suffix],
		Right:  s.Properties[prefix+"right"+suffix],
		Bottom: s.Properties[prefix+"bottom"+suffix],
		Left:   s.Properties[prefix+"left"+suffix],
	}
}

func (s *ComputedStyle) Margin() EdgeValues  { return s.edges("margin-", "") }
func (s *ComputedStyle) Padding() EdgeValues { return s.edges("padding-", "") }

// BorderWidth returns the four border widths. A border-style of none zeroes
// them, like the domain's used-value rules.
func (s *ComputedStyle) BorderWidth() EdgeValues {
	if s.Properties["border-style"].Keyword == "none" {
		return EdgeValues{}
	}
	return s.edges("border-", "-width")
}

func (s *ComputedStyle) Width() Value     { return s.Properties["width"] }
func (s *ComputedStyle) Height() Value    { return s.Properties["height"] }
func (s *ComputedStyle) MinWidth() Value  { return s.Properties["min-width"] }
func (s *ComputedStyle) MaxWidth() Value  { return s.Properties["max-width"] }
func (s *ComputedStyle) MinHeight() Value { return s.Properties["min-height"] }
func (s *ComputedStyle) MaxHeight() Value { return s.Properties["max-height"] }

// FontSize returns the resolved font size in pixels.
func (s *ComputedStyle) FontSize() float64 {
	if v := s.Properties["font-size"]; v.Kind == ValueLength {
		return v.Px
	}
	return rootFontSize
}

// LineHeight returns the line height in pixels, defaulting to 1.2 times the
// font size when auto.
func (s *ComputedStyle) LineHeight() float64 {
	if v := s.Properties["line-height"]; v.Kind == ValueLength {
		return v.Px
	}
	return s.FontSize() * 1.2
}

func (s *ComputedStyle) TextColor() Color {
	return s.Properties["color"].Color
}

func (s *ComputedStyle) BackgroundColor() Color {
	return s.Properties["background-color"].Color
}

func (s *ComputedStyle) BorderColor() Color {
	return s.Properties["border-color"].Color
}

// FlexDirection returns "row" or "column"; anything else is treated as row.
func (s *ComputedStyle) FlexDirection() string {
	if s.Properties["flex-direction"].Keyword == "column" {
		return "column"
	}
	return "row"
}

func (s *ComputedStyle) FlexGrow() float64 {
	return s.Properties["flex-grow"].Num
}

func (s *ComputedStyle) FlexShrink() float64 {
	return s.Properties["flex-shrink"].Num
}

func (s *ComputedStyle) FlexBasis() Value {
	return s.Properties["flex-basis"]
}

func (s *ComputedStyle) ZIndex() int {
	return int(s.Properties["z-index"].Num)
}
