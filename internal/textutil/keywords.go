package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var termCaser = cases.Title(language.English)

// ContainsAny reports whether the lowercased text contains any of the needles.
// Needles are expected to already be lowercase.
func ContainsAny(text string, needles ...string) bool {
	lowered := strings.ToLower(text)
	for _, needle := range needles {
		if strings.Contains(lowered, needle) {
			return true
		}
	}
	return false
}

// TermFromName derives a human-readable term from a file base name: separators
// become spaces and each word is title-cased, so "logos_field" yields
// "Logos Field".
func TermFromName(name string) string {
	replaced := strings.NewReplacer("_", " ", "-", " ").Replace(name)
	fields := strings.Fields(replaced)
	if len(fields) == 0 {
		return strings.TrimSpace(name)
	}
	return termCaser.String(strings.ToLower(strings.Join(fields, " ")))
}
