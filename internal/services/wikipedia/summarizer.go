package wikipedia

import "context"

// Summarizer resolves a term (then its aliases, in order) to a short external
// summary. ok is false when nothing could be found; implementations must not
// return errors or panic.
type Summarizer interface {
	Summary(ctx context.Context, term string, aliases []string) (summary string, ok bool)
}

// NullSummarizer is the null object used when external fetching is disabled
// or unavailable: every lookup misses.
type NullSummarizer struct{}

// Summary always reports a miss.
func (NullSummarizer) Summary(context.Context, string, []string) (string, bool) {
	return "", false
}
