package textutil

import "strings"

// FirstSentence returns the text before the first period, trimmed. When no
// period is present the whole trimmed input is returned.
func FirstSentence(text string) string {
	idx := strings.Index(text, ".")
	if idx < 0 {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[:idx])
}

// LimitSentences truncates text to at most n sentences. The terminating period
// of the final kept sentence is preserved. Zero or negative n returns the
// trimmed input unchanged.
func LimitSentences(text string, n int) string {
	trimmed := strings.TrimSpace(text)
	if n <= 0 || trimmed == "" {
		return trimmed
	}
	count := 0
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != '.' {
			continue
		}
		count++
		if count == n {
			return strings.TrimSpace(trimmed[:i+1])
		}
	}
	return trimmed
}
