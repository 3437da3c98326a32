// Package review turns classifier and detector output into the [REVIEW]
// flag lines appended to a processed document.
package review

import (
	"fmt"

	"quill/internal/contradict"
	"quill/internal/document"
	"quill/internal/provenance"
)

// Tag prefixes every review flag line.
const Tag = "[REVIEW]"

// Collect builds the ordered flag list for the five analyzable sections:
// section-state flags first, in section-processing order, then contradiction
// flags in detector order. Aliases and relationships are never flagged.
func Collect(bodies map[document.Key]string, report contradict.Report) []string {
	var flags []string

	for _, key := range document.AnalyzedOrder {
		body := bodies[key]
		switch {
		case provenance.IsEmpty(body):
			flags = append(flags, fmt.Sprintf("%s %s section is missing and was auto-filled or remains empty.", Tag, key))
		case provenance.IsAllTagged(body) && !provenance.ContainsUserText(body):
			flags = append(flags, fmt.Sprintf("%s %s section contains only engine-generated or external content.", Tag, key))
		}
	}

	for _, key := range document.AnalyzedOrder {
		for _, msg := range report.ForSection(key) {
			flags = append(flags, fmt.Sprintf("%s Contradiction in %s section: %s", Tag, key, msg))
		}
	}

	return flags
}
