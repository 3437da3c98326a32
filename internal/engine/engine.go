package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"quill/internal/contradict"
	"quill/internal/document"
	"quill/internal/fileutil"
	"quill/internal/generate"
	"quill/internal/provenance"
	"quill/internal/review"
	"quill/internal/services/wikipedia"
)

// ErrNoSections marks files that carry no canonical section headers. Many
// vault files are not term documents, so this is reportable, not fatal.
var ErrNoSections = errors.New("no structured sections found")

// Options controls a processing pass.
type Options struct {
	DryRun    bool
	Recursive bool
	SkipFetch bool
}

// Engine wires the generator, the external summarizer, and a logger into the
// merge pipeline.
type Engine struct {
	gen        generate.Generator
	summarizer wikipedia.Summarizer
	logger     *slog.Logger
}

// New constructs an Engine. A nil summarizer degrades to the null object and
// a nil logger to a discard logger.
func New(gen generate.Generator, summarizer wikipedia.Summarizer, logger *slog.Logger) *Engine {
	if summarizer == nil {
		summarizer = wikipedia.NullSummarizer{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{gen: gen, summarizer: summarizer, logger: logger}
}

// ProcessFile runs the merge pipeline over a single term document. All
// failures land in the result; the method itself never returns an error so a
// batch caller cannot accidentally abort on one bad file.
func (e *Engine) ProcessFile(ctx context.Context, path string, opts Options) Result {
	result := Result{FilePath: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Error = fmt.Sprintf("read file: %v", err)
		return result
	}
	original := string(data)

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	doc := document.Parse(original, base)
	result.Term = doc.Term

	if len(doc.Sections) == 0 {
		result.Error = ErrNoSections.Error()
		return result
	}

	aliases := document.ExtractAliases(original)

	var summary string
	if !opts.SkipFetch {
		summary, _ = e.summarizer.Summary(ctx, doc.Term, aliases)
	}

	bodies := make(map[document.Key]string, len(document.AnalyzedOrder))
	for _, key := range document.AnalyzedOrder {
		bodies[key] = ""
	}

	ordered := orderSections(doc.Sections)
	composed := make([]document.ComposedSection, 0, len(ordered))
	// analyzedAt remembers which composed section supplied each analyzed body;
	// with duplicate headers the last copy wins, same as the bodies map.
	analyzedAt := make(map[document.Key]int, len(document.AnalyzedOrder))
	for _, section := range ordered {
		if section.Key == document.KeyOther {
			// Unrecognized numbered sections pass through untouched.
			composed = append(composed, document.ComposedSection{Header: section.Header, Key: section.Key, Body: section.Body})
			continue
		}
		final := e.mergeSection(section, doc.Term, summary, &result)
		if analyzed(section.Key) {
			bodies[section.Key] = final
			analyzedAt[section.Key] = len(composed)
		}
		composed = append(composed, document.ComposedSection{Header: section.Header, Key: section.Key, Body: final})
	}

	report := contradict.Detect(contradict.Inputs{
		Core:        bodies[document.KeyCore],
		Scientific:  bodies[document.KeyScientific],
		Operational: bodies[document.KeyOperational],
		Ontology:    bodies[document.KeyOntology],
		Narrative:   bodies[document.KeyNarrative],
	})
	result.ContradictionsFound = report.Messages()

	for _, key := range document.AnalyzedOrder {
		msgs := report.ForSection(key)
		if len(msgs) == 0 {
			continue
		}
		if idx, ok := analyzedAt[key]; ok {
			composed[idx].Contradictions = msgs
			result.Updated = true
		}
	}

	result.ReviewFlags = review.Collect(bodies, report)

	if result.Updated && !opts.DryRun {
		output := document.Compose(doc.Prefix, composed, result.ReviewFlags)
		if err := fileutil.WriteFileAtomic(path, []byte(output), 0o644); err != nil {
			result.Error = fmt.Sprintf("write file: %v", err)
			return result
		}
	}

	e.logger.Debug("processed term document",
		slog.String("path", path),
		slog.String("term", result.Term),
		slog.Bool("updated", result.Updated),
		slog.Int("filled", len(result.SectionsFilled)),
		slog.Int("contradictions", len(result.ContradictionsFound)))
	return result
}

// mergeSection applies the per-section merge policy and returns the final
// body. Relationships are always preserved verbatim; user text is never
// overwritten; machine-only bodies are refreshed.
func (e *Engine) mergeSection(section document.Section, term, summary string, result *Result) string {
	main, _ := document.SplitDiagnostics(section.Body)

	if section.Key == document.KeyRelationships {
		return main
	}

	switch {
	case provenance.IsEmpty(main):
		generated, ok := e.gen.Section(section.Key, term, summary)
		if !ok {
			return main
		}
		result.SectionsFilled = append(result.SectionsFilled, section.Key)
		result.Updated = true
		return generated

	case provenance.ContainsUserText(main):
		return main

	default:
		// Machine-only content: safe to refresh, except aliases which are
		// only ever filled when empty.
		if section.Key == document.KeyAliases {
			return main
		}
		generated, ok := e.gen.Section(section.Key, term, summary)
		if !ok {
			return main
		}
		result.Updated = true
		return generated
	}
}

func analyzed(key document.Key) bool {
	for _, candidate := range document.AnalyzedOrder {
		if key == candidate {
			return true
		}
	}
	return false
}

var canonicalRank = func() map[document.Key]int {
	ranks := make(map[document.Key]int, len(document.CanonicalOrder))
	for i, key := range document.CanonicalOrder {
		ranks[key] = i
	}
	return ranks
}()

// orderSections rearranges canonical sections into canonical order while
// leaving unrecognized sections in their original slots.
func orderSections(sections []document.Section) []document.Section {
	out := make([]document.Section, len(sections))
	var canonical []document.Section
	var slots []int
	for i, section := range sections {
		if section.Key == document.KeyOther {
			out[i] = section
			continue
		}
		canonical = append(canonical, section)
		slots = append(slots, i)
	}
	// Stable insertion sort: duplicate keys keep their relative order.
	for i := 1; i < len(canonical); i++ {
		for j := i; j > 0 && canonicalRank[canonical[j].Key] < canonicalRank[canonical[j-1].Key]; j-- {
			canonical[j], canonical[j-1] = canonical[j-1], canonical[j]
		}
	}
	for i, section := range canonical {
		out[slots[i]] = section
	}
	return out
}
