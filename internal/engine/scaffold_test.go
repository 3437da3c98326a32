package engine

import (
	"context"
	"strings"
	"testing"

	"quill/internal/testsupport"
)

func TestScaffoldFileInjectsTemplate(t *testing.T) {
	dir := t.TempDir()
	content := "# Logos Field\n\nThe Logos Field is a proposed substrate connecting information and meaning across observers.\n\nSee also [[Observer Effect]] and [[Information]]. #physics #theology\n"
	path := testsupport.WriteVaultFile(t, dir, "logos_field.md", content)

	eng := newTestEngine()
	result := eng.ScaffoldFile(path, false)
	if result.Action != ScaffoldInjected {
		t.Fatalf("action = %q (%s), want injected", result.Action, result.Reason)
	}
	if result.Term != "Logos Field" {
		t.Fatalf("term = %q", result.Term)
	}

	got := testsupport.ReadFile(t, path)
	for _, want := range []string{
		"## 1. Aliases",
		"## 2. Core Definition",
		"## 7. Narrative Definition",
		"The Logos Field is a proposed substrate connecting information and meaning across observers.",
		"**Tags:** #physics #theology",
		"**Links:** [[Observer Effect]], [[Information]]",
		"| See Also | [[Observer Effect]], [[Information]] |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("scaffolded file missing %q", want)
		}
	}
	if !strings.HasPrefix(got, "---\n") {
		t.Error("expected synthesized frontmatter")
	}

	// A second pass must recognize the structure and leave the file alone.
	again := eng.ScaffoldFile(path, false)
	if again.Action != ScaffoldSkipped {
		t.Fatalf("second pass action = %q, want skipped", again.Action)
	}
}

func TestScaffoldFileKeepsExistingFrontmatter(t *testing.T) {
	dir := t.TempDir()
	content := "---\naliases: [LF]\ntitle: Logos Field\n---\n\n# Logos Field\n\nA working definition that is long enough to be promoted into the core slot.\n"
	path := testsupport.WriteVaultFile(t, dir, "logos_field.md", content)

	eng := newTestEngine()
	if result := eng.ScaffoldFile(path, false); result.Action != ScaffoldInjected {
		t.Fatalf("action = %q (%s)", result.Action, result.Reason)
	}

	got := testsupport.ReadFile(t, path)
	if !strings.HasPrefix(got, "---\naliases: [LF]\n") {
		t.Fatal("original frontmatter was not preserved")
	}
	if strings.Count(got, "aliases:") != 1 {
		t.Fatal("frontmatter was duplicated")
	}
}

func TestScaffoldFileSkipsStructuredDocument(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteVaultFile(t, dir, "logos_field.md",
		testsupport.TermDoc{Term: "Logos Field", Core: "Existing core."}.Render())

	eng := newTestEngine()
	result := eng.ScaffoldFile(path, false)
	if result.Action != ScaffoldSkipped {
		t.Fatalf("action = %q, want skipped", result.Action)
	}
}

func TestScaffoldFileDryRun(t *testing.T) {
	dir := t.TempDir()
	content := "Some loose notes about an undefined term that should become a definition file.\n"
	path := testsupport.WriteVaultFile(t, dir, "strange_loop.md", content)

	eng := newTestEngine()
	result := eng.ScaffoldFile(path, true)
	if result.Action != ScaffoldInjected {
		t.Fatalf("action = %q", result.Action)
	}
	if result.Term != "Strange Loop" {
		t.Fatalf("term = %q, want Strange Loop", result.Term)
	}
	if got := testsupport.ReadFile(t, path); got != content {
		t.Fatal("dry run modified the file")
	}
}

func TestScaffoldFolder(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteVaultFile(t, dir, "raw.md", "An unstructured note that is long enough to seed a core definition body.\n")
	testsupport.WriteVaultFile(t, dir, "done.md", testsupport.TermDoc{Term: "Done"}.Render())

	eng := newTestEngine()
	results, err := eng.ScaffoldFolder(context.Background(), dir, Options{}, nil)
	if err != nil {
		t.Fatalf("ScaffoldFolder: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	injected, skipped := 0, 0
	for _, result := range results {
		switch result.Action {
		case ScaffoldInjected:
			injected++
		case ScaffoldSkipped:
			skipped++
		}
	}
	if injected != 1 || skipped != 1 {
		t.Fatalf("injected=%d skipped=%d, want 1/1", injected, skipped)
	}
}
