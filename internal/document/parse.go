package document

import (
	"regexp"
	"strings"

	"quill/internal/textutil"
)

// headerPattern matches the canonical section header shape "## <n>. <Title>".
var headerPattern = regexp.MustCompile(`(?m)^##\s+[0-9]+\.\s+.+$`)

// reviewTrailerPattern matches the engine-owned Review Status trailer at the
// end of a document. The trailer is regenerated on every run, so the parser
// drops it; leaving it attached to the last section's body would duplicate it
// on each pass.
var reviewTrailerPattern = regexp.MustCompile(`(?s)\n---\s*\n## Review Status.*\z`)

// Parse splits raw document text into a prefix and ordered sections. The term
// is taken from the first H1 heading, falling back to a title-cased form of
// fallbackName (typically the file base name). A document with no canonical
// headers parses to an empty section list; callers treat that as a reportable
// condition, not a failure.
func Parse(text, fallbackName string) Document {
	doc := Document{Term: termFromText(text, fallbackName)}
	text = reviewTrailerPattern.ReplaceAllString(text, "")

	locs := headerPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		doc.Prefix = text
		return doc
	}

	doc.Prefix = text[:locs[0][0]]
	for i, loc := range locs {
		header := strings.TrimSpace(text[loc[0]:loc[1]])
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		doc.Sections = append(doc.Sections, Section{
			Header: header,
			Key:    KeyForHeader(header),
			Body:   text[loc[1]:end],
		})
	}
	return doc
}

func termFromText(text, fallbackName string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return textutil.TermFromName(fallbackName)
}

const contradictionMarker = "### Contradiction"

// SplitDiagnostics splits a section body into its main content and any
// engine-owned contradiction block. Everything from the first
// "### Contradiction" marker to the end of the body counts as diagnostics and
// is replaced wholesale on the next run, so manually duplicated blocks can
// never accumulate.
func SplitDiagnostics(body string) (main, diagnostics string) {
	idx := strings.Index(body, contradictionMarker)
	if idx < 0 {
		return strings.TrimSpace(body), ""
	}
	return strings.TrimSpace(body[:idx]), strings.TrimSpace(body[idx:])
}
