package document

import "strings"

// ComposedSection is one section ready for re-serialization, with any
// contradiction messages the detector attached to it. Key carries the parsed
// section kind so callers never have to re-derive it from the header.
type ComposedSection struct {
	Header         string
	Key            Key
	Body           string
	Contradictions []string
}

// Compose reassembles a processed document: prefix, then each section as
// header, blank line, body, blank line, with a "### Contradiction" sub-block
// per attached message, and finally a Review Status trailer when any flags
// exist. Flags are emitted verbatim, one line each.
func Compose(prefix string, sections []ComposedSection, flags []string) string {
	var b strings.Builder
	b.WriteString(prefix)

	for _, section := range sections {
		b.WriteString(section.Header)
		b.WriteString("\n\n")
		b.WriteString(strings.TrimSpace(section.Body))
		b.WriteString("\n\n")
		for _, msg := range section.Contradictions {
			b.WriteString("### Contradiction\n")
			b.WriteString(msg)
			b.WriteString("\n\n")
		}
	}

	if len(flags) > 0 {
		b.WriteString("\n---\n\n## Review Status\n\n")
		for _, flag := range flags {
			b.WriteString(flag)
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
