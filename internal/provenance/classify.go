package provenance

import "strings"

// Provenance line markers.
const (
	TagExternal  = "[W]"
	TagGenerated = "[A]"
)

// meaningfulLines returns the trimmed lines of body that carry content,
// skipping blanks and HTML comments.
func meaningfulLines(body string) []string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "<!--") {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}

func isTagged(line string) bool {
	return strings.HasPrefix(line, TagExternal) || strings.HasPrefix(line, TagGenerated)
}

// IsEmpty reports whether the body has no meaningful content.
func IsEmpty(body string) bool {
	return len(meaningfulLines(body)) == 0
}

// IsAllTagged reports whether every meaningful line carries a provenance tag.
// Vacuously true for an empty body.
func IsAllTagged(body string) bool {
	for _, line := range meaningfulLines(body) {
		if !isTagged(line) {
			return false
		}
	}
	return true
}

// ContainsUserText reports whether any meaningful line lacks a provenance tag.
func ContainsUserText(body string) bool {
	for _, line := range meaningfulLines(body) {
		if !isTagged(line) {
			return true
		}
	}
	return false
}

// FirstUntaggedLine returns the first meaningful line with any leading
// provenance tag stripped. The contradiction detector uses it for semantic
// sniffing. Returns "" for an empty body.
func FirstUntaggedLine(body string) string {
	for _, line := range meaningfulLines(body) {
		switch {
		case strings.HasPrefix(line, TagExternal):
			return strings.TrimSpace(line[len(TagExternal):])
		case strings.HasPrefix(line, TagGenerated):
			return strings.TrimSpace(line[len(TagGenerated):])
		default:
			return line
		}
	}
	return ""
}
