// Package testsupport provides shared fixtures for quill tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteVaultFile writes a markdown file into dir and returns its path.
func WriteVaultFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create vault subdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write vault file: %v", err)
	}
	return path
}

// ReadFile reads path or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// TermDoc builds a minimal term document with the given section bodies in
// canonical order. Empty-body sections are emitted with a bare header.
type TermDoc struct {
	Term          string
	Aliases       string
	Core          string
	Operational   string
	Ontology      string
	Relationships string
	Scientific    string
	Narrative     string
}

// Render produces the markdown text for the fixture.
func (d TermDoc) Render() string {
	out := "# " + d.Term + "\n\n"
	sections := []struct {
		header string
		body   string
	}{
		{"## 1. Aliases", d.Aliases},
		{"## 2. Core Definition", d.Core},
		{"## 3. Operational Definition", d.Operational},
		{"## 4. Ontological Context", d.Ontology},
		{"## 5. Relationships", d.Relationships},
		{"## 6. Scientific Definition", d.Scientific},
		{"## 7. Narrative Definition", d.Narrative},
	}
	for _, section := range sections {
		out += section.header + "\n\n"
		if section.body != "" {
			out += section.body + "\n\n"
		}
	}
	return out
}
