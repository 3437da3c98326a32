// Package wikipedia fetches short external summaries used to seed
// [W]-tagged section content.
//
// The engine only depends on the Summarizer interface; this package supplies
// the REST client and the NullSummarizer used when external lookups are
// disabled. The client's contract is absorb-all-failures: page-not-found,
// disambiguation dead ends, and network errors all resolve to a missing
// summary, never an error, so the generator degrades to [A] fallback content.
package wikipedia
