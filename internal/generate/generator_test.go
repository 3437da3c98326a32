package generate

import (
	"strings"
	"testing"

	"quill/internal/document"
)

func TestCoreWithoutSummary(t *testing.T) {
	g := New("")
	got := g.Core("Logos Field", "")
	want := "[A] Logos Field is a key concept in the Theophysics framework."
	if got != want {
		t.Fatalf("Core = %q, want %q", got, want)
	}
}

func TestCoreUsesFirstSentence(t *testing.T) {
	g := New("Theophysics")
	got := g.Core("Entropy", "Entropy measures disorder. It always increases.")
	if got != "[W] Entropy measures disorder." {
		t.Fatalf("Core = %q", got)
	}
}

func TestScientific(t *testing.T) {
	g := New("Theophysics")
	if got := g.Scientific(""); got != "[A] No external scientific description is currently available." {
		t.Fatalf("Scientific fallback = %q", got)
	}
	if got := g.Scientific(" full summary text "); got != "[W] full summary text" {
		t.Fatalf("Scientific = %q", got)
	}
}

func TestOntologyCascadeOrder(t *testing.T) {
	g := New("Theophysics")
	cases := []struct {
		term   string
		triad  string
		domain string
		layer  string
	}{
		// "field" wins over "logos" because the cascade is ordered.
		{"Logos Field", "Relation", "Observer-Consciousness", "Meaning / Information"},
		{"Wave Function", "Relation", "Structure", "Mathematical / Dynamical"},
		{"Trinity Mechanics", "Necessity", "Trinity-Mechanics", "Foundational"},
		{"Grace", "Relation", "Observer-Consciousness", "Meaning"},
	}
	for _, tc := range cases {
		got := g.Ontology(tc.term)
		for _, fragment := range []string{
			"[A] **Triad Position:** " + tc.triad,
			"[A] **Domain:** " + tc.domain,
			"[A] **Layer:** " + tc.layer,
		} {
			if !strings.Contains(got, fragment) {
				t.Errorf("Ontology(%q) missing %q:\n%s", tc.term, fragment, got)
			}
		}
	}
}

func TestNarrative(t *testing.T) {
	g := New("Theophysics")
	got := g.Narrative("Entropy", "Entropy Measures Disorder. More text.")
	if got != "[A] In simple terms, Entropy can be thought of as entropy measures disorder." {
		t.Fatalf("Narrative = %q", got)
	}
	fallback := g.Narrative("Grace", "")
	if !strings.Contains(fallback, "grace is an important idea in both physics and theology") {
		t.Fatalf("Narrative fallback = %q", fallback)
	}
}

func TestSectionNeverGeneratesRelationships(t *testing.T) {
	g := New("Theophysics")
	if _, ok := g.Section(document.KeyRelationships, "Term", "summary"); ok {
		t.Fatal("relationships must never be generated")
	}
	if _, ok := g.Section(document.KeyOther, "Term", ""); ok {
		t.Fatal("other sections must never be generated")
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	g := New("Theophysics")
	first := g.All("Logos Field", "The field binds meaning. It persists.")
	second := g.All("Logos Field", "The field binds meaning. It persists.")
	if len(first) != 6 {
		t.Fatalf("expected 6 generatable sections, got %d", len(first))
	}
	for key, body := range first {
		if second[key] != body {
			t.Errorf("non-deterministic output for %s", key)
		}
	}
}
