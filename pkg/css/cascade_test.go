package css

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SaxonRah/pygame-markup-gui/pkg/markup"
)

func mustSheet(t *testing.T, text string) *Stylesheet {
	t.Helper()
	sheet, err := ParseStylesheet(text)
	if err != nil {
		t.Fatalf("failed to parse test stylesheet: %v", err)
	}
	return sheet
}

var red = Color{R: 255, A: 255}

func TestComputeStyle_ElementSelector(t *testing.T) {
	r := NewResolver(mustSheet(t, `div { color: red; }`))
	node := element("div", nil)

	style := r.ComputeStyle(node, nil)
	if got := style.TextColor(); got != red {
		t.Errorf("expected red text, got %+v", got)
	}
}

func TestComputeStyle_SpecificityOverride(t *testing.T) {
	r := NewResolver(mustSheet(t, `
		div { color: red; }
		.highlight { color: blue; }
	`))
	node := element("div", map[string]string{"class": "highlight"})

	style := r.ComputeStyle(node, nil)
	if got := style.TextColor(); got != (Color{B: 255, A: 255}) {
		t.Errorf("expected class rule to override element rule, got %+v", got)
	}
}

func TestComputeStyle_IDOutranksClass(t *testing.T) {
	r := NewResolver(mustSheet(t, `
		#header { color: green; }
		div { color: red; }
		.highlight { color: blue; }
	`))
	node := element("div", map[string]string{"class": "highlight", "id": "header"})

	style := r.ComputeStyle(node, nil)
	if got := style.TextColor(); got != (Color{G: 128, A: 255}) {
		t.Errorf("expected id rule to win, got %+v", got)
	}
}

func TestComputeStyle_SourceOrderBreaksTies(t *testing.T) {
	r := NewResolver(mustSheet(t, `
		div { color: red; }
		div { color: blue; }
	`))
	style := r.ComputeStyle(element("div", nil), nil)
	if got := style.TextColor(); got != (Color{B: 255, A: 255}) {
		t.Errorf("expected the later rule to win the tie, got %+v", got)
	}
}

func TestComputeStyle_LaterSheetWins(t *testing.T) {
	first := mustSheet(t, `div { color: red; }`)
	second := mustSheet(t, `div { color: blue; }`)
	style := NewResolver(first, second).ComputeStyle(element("div", nil), nil)
	if got := style.TextColor(); got != (Color{B: 255, A: 255}) {
		t.Errorf("expected the later sheet to win, got %+v", got)
	}
}

func TestComputeStyle_InlineBeatsSheet(t *testing.T) {
	r := NewResolver(mustSheet(t, `#main { color: blue; }`))
	node := element("div", map[string]string{
		"id":    "main",
		"style": "color: red",
	})
	style := r.ComputeStyle(node, nil)
	if got := style.TextColor(); got != red {
		t.Errorf("expected inline declaration to beat the id rule, got %+v", got)
	}
}

func TestComputeStyle_ImportantBeatsInline(t *testing.T) {
	r := NewResolver(mustSheet(t, `div { color: blue !important; }`))
	node := element("div", map[string]string{"style": "color: red"})
	style := r.ComputeStyle(node, nil)
	if got := style.TextColor(); got != (Color{B: 255, A: 255}) {
		t.Errorf("expected !important to beat inline, got %+v", got)
	}
}

func TestComputeStyle_InheritedAndDefaulted(t *testing.T) {
	r := NewResolver(mustSheet(t, `div { color: red; margin-top: 10px; }`))
	parentNode := element("div", nil)
	childNode := element("span", nil)
	parentNode.AddChild(childNode)

	parent := r.ComputeStyle(parentNode, nil)
	child := r.ComputeStyle(childNode, parent)

	// color inherits; margin-top does not.
	if got := child.TextColor(); got != red {
		t.Errorf("expected inherited red text, got %+v", got)
	}
	if got := child.Margin().Resolve(100).Top; got != 0 {
		t.Errorf("expected default margin-top 0, got %v", got)
	}
	if got := parent.Margin().Resolve(100).Top; got != 10 {
		t.Errorf("expected parent margin-top 10, got %v", got)
	}
}

func TestComputeStyle_MalformedValueLeavesEarlierWinner(t *testing.T) {
	r := NewResolver(mustSheet(t, `
		div { width: 100px; }
		div { width: banana; }
	`))
	style := r.ComputeStyle(element("div", nil), nil)
	if got := style.Width(); got.Kind != ValueLength || got.Px != 100 {
		t.Errorf("expected 100px to survive the malformed override, got %+v", got)
	}
}

func TestComputeStyle_UnknownPropertyDropped(t *testing.T) {
	r := NewResolver(mustSheet(t, `div { frobnicate: yes; color: red; }`))
	style := r.ComputeStyle(element("div", nil), nil)
	if got := style.TextColor(); got != red {
		t.Errorf("unknown property disturbed resolution: %+v", got)
	}
	if _, ok := style.Get("frobnicate"); ok {
		t.Error("unknown property leaked into the computed style")
	}
}

func TestComputeStyle_ExtensionPassthrough(t *testing.T) {
	r := NewResolver(mustSheet(t, `div { sprite-tint: #ff0000; sprite-rotation: 45; }`))
	r.RegisterExtension("sprite-tint", "sprite-rotation")

	style := r.ComputeStyle(element("div", nil), nil)
	if got, ok := style.Extension("sprite-tint"); !ok || got != "#ff0000" {
		t.Errorf("expected sprite-tint passthrough, got %q ok=%v", got, ok)
	}
	if got, ok := style.Extension("sprite-rotation"); !ok || got != "45" {
		t.Errorf("expected sprite-rotation passthrough, got %q ok=%v", got, ok)
	}
}

func TestComputeStyle_Idempotent(t *testing.T) {
	r := NewResolver(mustSheet(t, `
		div { color: red; width: 50%; }
		.panel { padding: 4px 8px; }
	`))
	node := element("div", map[string]string{"class": "panel", "style": "height: 2em"})

	first := r.ComputeStyle(node, nil)
	second := r.ComputeStyle(node, nil)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("resolution is not idempotent (-first +second):\n%s", diff)
	}
}

func TestComputeStyle_UserAgentDefaults(t *testing.T) {
	r := NewResolver()

	if got := r.ComputeStyle(element("span", nil), nil).Display(); got != DisplayInline {
		t.Errorf("expected span to default to inline, got %v", got)
	}
	if got := r.ComputeStyle(element("button", nil), nil).Display(); got != DisplayInlineBlock {
		t.Errorf("expected button to default to inline-block, got %v", got)
	}
	body := r.ComputeStyle(element("body", nil), nil)
	if got := body.Margin().Resolve(800).Top; got != 8 {
		t.Errorf("expected body's default 8px margin, got %v", got)
	}
	// Author rules override user-agent defaults regardless of specificity.
	r = NewResolver(mustSheet(t, `body { margin: 0; }`))
	if got := r.ComputeStyle(element("body", nil), nil).Margin().Resolve(800).Top; got != 0 {
		t.Errorf("expected author rule to override the UA margin, got %v", got)
	}
}

func TestApplyStyles_WholeDocument(t *testing.T) {
	doc, err := markup.Parse(`
		<style>div { color: red; } span { font-size: 20px; }</style>
		<div><span>text</span></div>
	`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	r := NewResolver(mustSheet(t, doc.Stylesheets[0]))
	styles := r.ApplyStyles(doc)

	body := doc.Root.Children[0]
	div := body.Children[0]
	span := div.Children[0]

	if _, ok := styles[body]; !ok {
		t.Fatal("expected the body element to be styled")
	}
	if got := styles[div].TextColor(); got != red {
		t.Errorf("expected red div, got %+v", got)
	}
	if got := styles[span].TextColor(); got != red {
		t.Errorf("expected span to inherit red, got %+v", got)
	}
	if got := styles[span].FontSize(); got != 20 {
		t.Errorf("expected span font-size 20, got %v", got)
	}
	if _, ok := styles[span.Children[0]]; ok {
		t.Error("text nodes must not receive computed styles")
	}
}
