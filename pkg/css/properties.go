package css

// PropertyKind describes how a recognized property's values are typed.
type PropertyKind int

const (
	KindLength PropertyKind = iota
	KindKeyword
	KindColor
	KindNumber
)

type propertyInfo struct {
	Kind      PropertyKind
	Inherited bool
	Default   string
}

// propertyTable is the closed set of recognized properties. Anything outside
// this table is either a registered extension property (cascaded opaquely)
// or dropped with a warning. Immutable after init; safe to share across
// documents.
var propertyTable = map[string]propertyInfo{
	"display": {Kind: KindKeyword, Default: "block"},

	"width":      {Kind: KindLength, Default: "auto"},
	"height":     {Kind: KindLength, Default: "auto"},
	"min-width":  {Kind: KindLength, Default: "0"},
	"max-width":  {Kind: KindLength, Default: "auto"},
	"min-height": {Kind: KindLength, Default: "0"},
	"max-height": {Kind: KindLength, Default: "auto"},

	"margin-top":    {Kind: KindLength, Default: "0"},
	"margin-right":  {Kind: KindLength, Default: "0"},
	"margin-bottom": {Kind: KindLength, Default: "0"},
	"margin-left":   {Kind: KindLength, Default: "0"},

	"padding-top":    {Kind: KindLength, Default: "0"},
	"padding-right":  {Kind: KindLength, Default: "0"},
	"padding-bottom": {Kind: KindLength, Default: "0"},
	"padding-left":   {Kind: KindLength, Default: "0"},

	"border-top-width":    {Kind: KindLength, Default: "0"},
	"border-right-width":  {Kind: KindLength, Default: "0"},
	"border-bottom-width": {Kind: KindLength, Default: "0"},
	"border-left-width":   {Kind: KindLength, Default: "0"},
	"border-style":        {Kind: KindKeyword, Default: "none"},
	"border-color":        {Kind: KindColor, Default: "black"},

	"background-color": {Kind: KindColor, Default: "transparent"},

	"color":       {Kind: KindColor, Inherited: true, Default: "black"},
	"font-size":   {Kind: KindLength, Inherited: true, Default: "16px"},
	"font-family": {Kind: KindKeyword, Inherited: true, Default: "sans-serif"},
	"font-weight": {Kind: KindKeyword, Inherited: true, Default: "normal"},
	"line-height": {Kind: KindLength, Inherited: true, Default: "auto"},
	"text-align":  {Kind: KindKeyword, Inherited: true, Default: "left"},

	"flex-direction": {Kind: KindKeyword, Default: "row"},
	"flex-grow":      {Kind: KindNumber, Default: "0"},
	"flex-shrink":    {Kind: KindNumber, Default: "1"},
	"flex-basis":     {Kind: KindLength, Default: "auto"},

	"z-index": {Kind: KindNumber, Default: "0"},
}

// defaultValues holds the parsed default for every recognized property.
// Built once at init, never mutated.
var defaultValues = map[string]Value{}

func init() {
	for name, info := range propertyTable {
		if v, ok := ParseValue(name, info.Default); ok {
			defaultValues[name] = v
		}
	}
}

// IsRecognized reports whether name is in the closed recognized set.
func IsRecognized(name string) bool {
	_, ok := propertyTable[name]
	return ok
}

// IsInherited reports whether a recognized property propagates from the
// parent's computed style when unmatched.
func IsInherited(name string) bool {
	return propertyTable[name].Inherited
}

// DefaultValue returns the static default for a recognized property.
func DefaultValue(name string) Value {
	return defaultValues[name]
}
