package engine

import "quill/internal/document"

// Result records the outcome of processing one file. It is immutable after
// ProcessFile returns; later files in a batch never touch earlier results.
type Result struct {
	FilePath            string
	Term                string
	Updated             bool
	SectionsFilled      []document.Key
	ContradictionsFound []string
	ReviewFlags         []string
	Error               string
}

// Failed reports whether processing ended with an error.
func (r Result) Failed() bool {
	return r.Error != ""
}

// FilledNames returns the filled section keys as plain strings, for
// journaling and display.
func (r Result) FilledNames() []string {
	if len(r.SectionsFilled) == 0 {
		return nil
	}
	names := make([]string, len(r.SectionsFilled))
	for i, key := range r.SectionsFilled {
		names[i] = string(key)
	}
	return names
}
