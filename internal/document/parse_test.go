package document

import (
	"strings"
	"testing"
)

const sampleDoc = `---
aliases: [Logos, Word Field]
---

# Logos Field

## 1. Aliases
<!-- Other names, symbols, abbreviations -->
- The Word

## 2. Core Definition
[A] Logos Field is a key concept in the Theophysics framework.

## 5. Relationships
| Relation | Term |
|----------|------|
| Parent | |

## 6. Scientific Definition
User wrote this sentence by hand.
`

func TestParseSections(t *testing.T) {
	doc := Parse(sampleDoc, "logos_field")

	if doc.Term != "Logos Field" {
		t.Fatalf("term = %q", doc.Term)
	}
	if len(doc.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(doc.Sections))
	}
	if !strings.HasPrefix(doc.Prefix, "---") || !strings.Contains(doc.Prefix, "# Logos Field") {
		t.Fatalf("prefix lost frontmatter or H1: %q", doc.Prefix)
	}

	wantKeys := []Key{KeyAliases, KeyCore, KeyRelationships, KeyScientific}
	for i, want := range wantKeys {
		if doc.Sections[i].Key != want {
			t.Errorf("section %d key = %q, want %q", i, doc.Sections[i].Key, want)
		}
	}
	if doc.Sections[1].Header != "## 2. Core Definition" {
		t.Errorf("header not preserved verbatim: %q", doc.Sections[1].Header)
	}
}

func TestParseNoSections(t *testing.T) {
	doc := Parse("# Just A Note\n\nFree-form text only.\n", "note")
	if len(doc.Sections) != 0 {
		t.Fatalf("expected no sections, got %d", len(doc.Sections))
	}
	if doc.Prefix == "" {
		t.Fatal("prefix should hold the entire document")
	}
}

func TestParseStripsReviewTrailer(t *testing.T) {
	text := "# T\n\n## 2. Core Definition\n\n[A] body\n\n\n---\n\n## Review Status\n\n[REVIEW] core section flagged.\n\n"
	doc := Parse(text, "t")
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	if strings.Contains(doc.Sections[0].Body, "Review Status") {
		t.Fatalf("review trailer leaked into section body: %q", doc.Sections[0].Body)
	}
}

func TestTermFallsBackToFileName(t *testing.T) {
	doc := Parse("## 2. Core Definition\n\nbody\n", "quantum_collapse")
	if doc.Term != "Quantum Collapse" {
		t.Fatalf("term = %q", doc.Term)
	}
}

func TestKeyForHeader(t *testing.T) {
	cases := map[string]Key{
		"## 2. Core Definition":        KeyCore,
		"## 6. Scientific Definition":  KeyScientific,
		"## 3. Operational Definition": KeyOperational,
		"## 4. Ontological Context":    KeyOntology,
		"## 7. Narrative Definition":   KeyNarrative,
		"## 1. Aliases":                KeyAliases,
		"## 5. Relationships":          KeyRelationships,
		"## 9. Bibliography":           KeyOther,
	}
	for header, want := range cases {
		if got := KeyForHeader(header); got != want {
			t.Errorf("KeyForHeader(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestSplitDiagnostics(t *testing.T) {
	body := "[A] content\n\n### Contradiction\nfirst message\n\n### Contradiction\nsecond message\n"
	main, diag := SplitDiagnostics(body)
	if main != "[A] content" {
		t.Fatalf("main = %q", main)
	}
	if !strings.HasPrefix(diag, "### Contradiction") || !strings.Contains(diag, "second message") {
		t.Fatalf("diagnostics should span to end of body: %q", diag)
	}

	main, diag = SplitDiagnostics("plain body\n")
	if main != "plain body" || diag != "" {
		t.Fatalf("unexpected split: %q / %q", main, diag)
	}
}

func TestExtractAliases(t *testing.T) {
	fromFlow := ExtractAliases("---\naliases: [Foo, Bar]\n---\n# T\n")
	fromBlock := ExtractAliases("---\naliases:\n  - Foo\n  - Bar\n---\n# T\n")
	fromSection := ExtractAliases("# T\n\n## 1. Aliases\n- Foo\n- Bar\n\n## 2. Core Definition\n")

	for name, got := range map[string][]string{"flow": fromFlow, "block": fromBlock, "section": fromSection} {
		set := make(map[string]bool)
		for _, alias := range got {
			set[alias] = true
		}
		if !set["Foo"] || !set["Bar"] || len(got) != 2 {
			t.Errorf("%s form: aliases = %v", name, got)
		}
	}
}

func TestExtractAliasesUnionsSources(t *testing.T) {
	content := "---\naliases: [Foo]\n---\n\n## 1. Aliases\n*Foo, Bar*\n\n## 2. Core Definition\n"
	got := ExtractAliases(content)
	if len(got) != 2 || got[0] != "Foo" || got[1] != "Bar" {
		t.Fatalf("aliases = %v", got)
	}
}

func TestComposeRoundTrip(t *testing.T) {
	sections := []ComposedSection{
		{Header: "## 2. Core Definition", Body: "[A] body"},
	}
	out := Compose("# Term\n\n", sections, nil)
	want := "# Term\n\n## 2. Core Definition\n\n[A] body\n\n"
	if out != want {
		t.Fatalf("compose = %q, want %q", out, want)
	}
}

func TestComposeContradictionsAndFlags(t *testing.T) {
	sections := []ComposedSection{
		{Header: "## 2. Core Definition", Body: "[A] body", Contradictions: []string{"msg one"}},
	}
	out := Compose("", sections, []string{"[REVIEW] core section flagged."})
	if !strings.Contains(out, "### Contradiction\nmsg one\n\n") {
		t.Fatalf("missing contradiction block: %q", out)
	}
	if !strings.Contains(out, "\n---\n\n## Review Status\n\n[REVIEW] core section flagged.\n\n") {
		t.Fatalf("missing review trailer: %q", out)
	}
}
