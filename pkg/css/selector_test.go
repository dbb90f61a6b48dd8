package css

import "testing"

func TestSpecificity_Tuples(t *testing.T) {
	cases := []struct {
		selector string
		want     [3]int
	}{
		{"div", [3]int{0, 0, 1}},
		{"*", [3]int{0, 0, 0}},
		{".b.c", [3]int{0, 2, 0}},
		{"#a", [3]int{1, 0, 0}},
		{"div.note#main:hover", [3]int{1, 2, 1}},
		{"ul li a", [3]int{0, 0, 3}},
		{"div[role=button]", [3]int{0, 1, 1}},
	}
	for _, tc := range cases {
		sel, ok := ParseSelector(tc.selector)
		if !ok {
			t.Errorf("%q: failed to parse", tc.selector)
			continue
		}
		if got := sel.Specificity(); got != tc.want {
			t.Errorf("%q: expected specificity %v, got %v", tc.selector, tc.want, got)
		}
	}
}

func TestCompareSpecificity_Lexicographic(t *testing.T) {
	id := [3]int{1, 0, 0}
	classes := [3]int{0, 2, 0}
	tag := [3]int{0, 0, 1}

	// One id outweighs any number of classes; one class outweighs any tags.
	if CompareSpecificity(id, classes) != 1 {
		t.Error("expected id to outrank two classes")
	}
	if CompareSpecificity(classes, tag) != 1 {
		t.Error("expected classes to outrank a tag")
	}
	if CompareSpecificity(tag, tag) != 0 {
		t.Error("expected equal tuples to compare equal")
	}
	if CompareSpecificity(tag, classes) != -1 {
		t.Error("expected a tag to rank below classes")
	}
}

func TestParseSelector_Combinators(t *testing.T) {
	for _, raw := range []string{"div > p", "div>p"} {
		sel, ok := ParseSelector(raw)
		if !ok {
			t.Fatalf("%q: failed to parse", raw)
		}
		if len(sel.Parts) != 2 || len(sel.Combinators) != 1 {
			t.Fatalf("%q: expected 2 parts and 1 combinator, got %d/%d",
				raw, len(sel.Parts), len(sel.Combinators))
		}
		if sel.Combinators[0] != Child {
			t.Errorf("%q: expected Child combinator, got %v", raw, sel.Combinators[0])
		}
	}

	sel, ok := ParseSelector("ul li + span ~ em")
	if !ok {
		t.Fatal("failed to parse combinator chain")
	}
	want := []Combinator{Descendant, AdjacentSibling, GeneralSibling}
	for i, c := range want {
		if sel.Combinators[i] != c {
			t.Errorf("combinator %d: expected %v, got %v", i, c, sel.Combinators[i])
		}
	}
}

func TestParseSelector_CompoundParts(t *testing.T) {
	sel, ok := ParseSelector(`div.note#main[data-kind="x"]`)
	if !ok {
		t.Fatal("failed to parse compound selector")
	}
	part := sel.Parts[0]
	if part.Tag != "div" || part.ID != "main" {
		t.Errorf("unexpected tag/id: %q/%q", part.Tag, part.ID)
	}
	if len(part.Classes) != 1 || part.Classes[0] != "note" {
		t.Errorf("unexpected classes: %v", part.Classes)
	}
	if len(part.Attributes) != 1 {
		t.Fatalf("expected 1 attribute selector, got %d", len(part.Attributes))
	}
	attr := part.Attributes[0]
	if attr.Name != "data-kind" || attr.Operator != "=" || attr.Value != "x" {
		t.Errorf("unexpected attribute selector: %+v", attr)
	}
}

func TestParseSelector_BracketedLiterals(t *testing.T) {
	// Combinator characters inside attribute values are literal.
	sel, ok := ParseSelector(`div[title="a>b"]`)
	if !ok {
		t.Fatal("failed to parse bracketed combinator character")
	}
	if len(sel.Parts) != 1 {
		t.Fatalf("expected a single compound part, got %d", len(sel.Parts))
	}
	attr := sel.Parts[0].Attributes[0]
	if attr.Name != "title" || attr.Operator != "=" || attr.Value != "a>b" {
		t.Errorf("unexpected attribute selector: %+v", attr)
	}

	// Spaces inside attribute values do not split the compound.
	sel, ok = ParseSelector(`[data-x="a b"] span`)
	if !ok {
		t.Fatal("failed to parse bracketed space")
	}
	if len(sel.Parts) != 2 || sel.Combinators[0] != Descendant {
		t.Fatalf("expected two parts joined by descendant, got %+v", sel)
	}
	if got := sel.Parts[0].Attributes[0].Value; got != "a b" {
		t.Errorf("expected attribute value 'a b', got %q", got)
	}
}

func TestParseSelector_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "div >", ".", "#"} {
		if _, ok := ParseSelector(raw); ok {
			t.Errorf("%q: expected parse failure", raw)
		}
	}
}

func TestParseSelectorList_SkipsBadMembers(t *testing.T) {
	selectors := ParseSelectorList("div, , .note")
	if len(selectors) != 2 {
		t.Fatalf("expected 2 selectors, got %d", len(selectors))
	}
	if selectors[0].Raw != "div" || selectors[1].Raw != ".note" {
		t.Errorf("unexpected selectors: %+v", selectors)
	}
}
