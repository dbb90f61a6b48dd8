package css

import (
	"errors"
	"testing"
)

func TestParseStylesheet_RulesInSourceOrder(t *testing.T) {
	sheet, err := ParseStylesheet(`
		div { color: red; }
		p { color: blue; }
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sheet.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(sheet.Rules))
	}
	if sheet.Rules[0].SourceOrder != 0 || sheet.Rules[1].SourceOrder != 1 {
		t.Errorf("expected source orders 0,1, got %d,%d",
			sheet.Rules[0].SourceOrder, sheet.Rules[1].SourceOrder)
	}
	if sheet.Rules[0].Origin != OriginAuthor {
		t.Errorf("expected OriginAuthor, got %v", sheet.Rules[0].Origin)
	}
}

func TestParseStylesheet_CommaListSharesDeclarations(t *testing.T) {
	sheet, err := ParseStylesheet(`div, .note { color: red; }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sheet.Rules) != 2 {
		t.Fatalf("expected 2 rules from the comma list, got %d", len(sheet.Rules))
	}
	// List members count as one rule for source-order purposes.
	if sheet.Rules[0].SourceOrder != sheet.Rules[1].SourceOrder {
		t.Errorf("expected matching source order, got %d and %d",
			sheet.Rules[0].SourceOrder, sheet.Rules[1].SourceOrder)
	}
	for i, rule := range sheet.Rules {
		if len(rule.Declarations) != 1 || rule.Declarations[0].Property != "color" {
			t.Errorf("rule %d: unexpected declarations %+v", i, rule.Declarations)
		}
	}
}

func TestParseStylesheet_StripsComments(t *testing.T) {
	sheet, err := ParseStylesheet(`
		/* heading styles */
		div { /* inline note */ color: red; }
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sheet.Rules) != 1 || len(sheet.Rules[0].Declarations) != 1 {
		t.Fatalf("comments changed the parse: %+v", sheet.Rules)
	}
	if sheet.Rules[0].Declarations[0].Value != "red" {
		t.Errorf("expected value 'red', got %q", sheet.Rules[0].Declarations[0].Value)
	}
}

func TestParseStylesheet_CommentSeparatesTokens(t *testing.T) {
	sheet, err := ParseStylesheet(`div/* gap */p { color: red; }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	sel := sheet.Rules[0].Selector
	if len(sel.Parts) != 2 || sel.Combinators[0] != Descendant {
		t.Errorf("expected the comment to act as a descendant separator, got %+v", sel)
	}
	if sel.Parts[0].Tag != "div" || sel.Parts[1].Tag != "p" {
		t.Errorf("expected parts div and p, got %q and %q", sel.Parts[0].Tag, sel.Parts[1].Tag)
	}
}

func TestParseStylesheet_UnterminatedBlock(t *testing.T) {
	_, err := ParseStylesheet(`div { color: red;`)
	if err == nil {
		t.Fatal("expected an error for an unterminated block")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestParseStylesheet_TrailingSelectorWithoutBlock(t *testing.T) {
	_, err := ParseStylesheet(`div { color: red; } p`)
	if err == nil {
		t.Fatal("expected an error for a trailing selector")
	}
}

func TestParseStylesheet_SkipsAtRules(t *testing.T) {
	sheet, err := ParseStylesheet(`
		@media screen { div { color: red; } }
		p { color: blue; }
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sheet.Rules) != 1 || sheet.Rules[0].Selector.Raw != "p" {
		t.Fatalf("expected only the p rule, got %+v", sheet.Rules)
	}
}

func TestParseInlineDeclarations_ImportantAndMalformed(t *testing.T) {
	decls := ParseInlineDeclarations(`color: red !important; broken; width: 10px;`)
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d: %+v", len(decls), decls)
	}
	if !decls[0].Important || decls[0].Property != "color" || decls[0].Value != "red" {
		t.Errorf("unexpected first declaration: %+v", decls[0])
	}
	if decls[1].Important {
		t.Error("width should not be important")
	}
}

func TestExpandShorthand_MarginTwoValues(t *testing.T) {
	decls := ParseInlineDeclarations(`margin: 10px 20px;`)
	want := map[string]string{
		"margin-top":    "10px",
		"margin-right":  "20px",
		"margin-bottom": "10px",
		"margin-left":   "20px",
	}
	if len(decls) != 4 {
		t.Fatalf("expected 4 longhands, got %d", len(decls))
	}
	for _, d := range decls {
		if want[d.Property] != d.Value {
			t.Errorf("%s: expected %q, got %q", d.Property, want[d.Property], d.Value)
		}
	}
}

func TestExpandShorthand_Border(t *testing.T) {
	decls := ParseInlineDeclarations(`border: 2px solid red;`)
	got := map[string]string{}
	for _, d := range decls {
		got[d.Property] = d.Value
	}
	if got["border-style"] != "solid" {
		t.Errorf("expected border-style solid, got %q", got["border-style"])
	}
	if got["border-color"] != "red" {
		t.Errorf("expected border-color red, got %q", got["border-color"])
	}
	for _, side := range []string{"top", "right", "bottom", "left"} {
		if got["border-"+side+"-width"] != "2px" {
			t.Errorf("expected border-%s-width 2px, got %q", side, got["border-"+side+"-width"])
		}
	}
}

func TestExpandShorthand_Flex(t *testing.T) {
	decls := ParseInlineDeclarations(`flex: 2 1 100px;`)
	got := map[string]string{}
	for _, d := range decls {
		got[d.Property] = d.Value
	}
	if got["flex-grow"] != "2" || got["flex-shrink"] != "1" || got["flex-basis"] != "100px" {
		t.Errorf("unexpected flex expansion: %v", got)
	}

	decls = ParseInlineDeclarations(`flex: 1;`)
	if len(decls) != 1 || decls[0].Property != "flex-grow" {
		t.Errorf("expected single flex-grow from 'flex: 1', got %+v", decls)
	}
}
