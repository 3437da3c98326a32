package generate

import (
	"fmt"
	"strings"

	"quill/internal/document"
	"quill/internal/provenance"
	"quill/internal/textutil"
)

// DefaultFramework names the knowledge framework referenced by generated
// boilerplate when no override is configured.
const DefaultFramework = "Theophysics"

// Generator renders section content for a term. The zero value is not usable;
// construct with New.
type Generator struct {
	framework string
}

// New returns a Generator for the given framework name, defaulting to
// DefaultFramework when blank.
func New(framework string) Generator {
	framework = strings.TrimSpace(framework)
	if framework == "" {
		framework = DefaultFramework
	}
	return Generator{framework: framework}
}

// Core produces a one-sentence identity-style definition. With an external
// summary its first sentence is used verbatim under the [W] tag.
func (g Generator) Core(term, summary string) string {
	if summary == "" {
		return fmt.Sprintf("%s %s is a key concept in the %s framework.", provenance.TagGenerated, term, g.framework)
	}
	first := textutil.FirstSentence(summary)
	if first == "" {
		first = strings.TrimSpace(summary)
	}
	return fmt.Sprintf("%s %s.", provenance.TagExternal, first)
}

// Scientific grounds the term in the external summary verbatim, or states
// that none is available.
func (g Generator) Scientific(summary string) string {
	if summary == "" {
		return provenance.TagGenerated + " No external scientific description is currently available."
	}
	return provenance.TagExternal + " " + strings.TrimSpace(summary)
}

// Operational describes how the term functions within the framework.
func (g Generator) Operational(term string) string {
	return fmt.Sprintf("%s In the %s framework, %s functions as an active operator that shapes or constrains the behavior of systems consistent with its core definition.",
		provenance.TagGenerated, g.framework, term)
}

// Ontology derives a triad/domain/layer classification from keywords in the
// term itself. The cascade is ordered: the first match wins.
func (g Generator) Ontology(term string) string {
	lower := strings.ToLower(term)
	var triad, domain, layer string
	switch {
	case strings.Contains(lower, "field"):
		triad, domain, layer = "Relation", "Observer-Consciousness", "Meaning / Information"
	case strings.Contains(lower, "function") || strings.Contains(lower, "operator"):
		triad, domain, layer = "Relation", "Structure", "Mathematical / Dynamical"
	case strings.Contains(lower, "trinity") || strings.Contains(lower, "logos"):
		triad, domain, layer = "Necessity", "Trinity-Mechanics", "Foundational"
	default:
		triad, domain, layer = "Relation", "Observer-Consciousness", "Meaning"
	}
	tag := provenance.TagGenerated
	return fmt.Sprintf("%s **Triad Position:** %s\n%s **Domain:** %s\n%s **Layer:** %s",
		tag, triad, tag, domain, tag, layer)
}

// Narrative offers an intuitive restatement, seeded by the summary's first
// sentence when one exists.
func (g Generator) Narrative(term, summary string) string {
	var simplified string
	if summary != "" {
		simplified = textutil.FirstSentence(summary)
	} else {
		simplified = fmt.Sprintf("%s is an important idea in both physics and theology", term)
	}
	return fmt.Sprintf("%s In simple terms, %s can be thought of as %s.",
		provenance.TagGenerated, term, strings.ToLower(simplified))
}

// Aliases emits the fixed stub used when the aliases section is empty,
// regardless of summary.
func (g Generator) Aliases() string {
	return provenance.TagGenerated + " *No aliases defined yet.*"
}

// Section dispatches to the generator for key. The second return is false for
// keys that are never generated (relationships, other).
func (g Generator) Section(key document.Key, term, summary string) (string, bool) {
	switch key {
	case document.KeyCore:
		return g.Core(term, summary), true
	case document.KeyScientific:
		return g.Scientific(summary), true
	case document.KeyOperational:
		return g.Operational(term), true
	case document.KeyOntology:
		return g.Ontology(term), true
	case document.KeyNarrative:
		return g.Narrative(term, summary), true
	case document.KeyAliases:
		return g.Aliases(), true
	default:
		return "", false
	}
}

// All renders every generatable section for a term, keyed by section kind.
// Used by the preview command; it never touches disk.
func (g Generator) All(term, summary string) map[document.Key]string {
	out := make(map[document.Key]string, 6)
	for _, key := range document.CanonicalOrder {
		if body, ok := g.Section(key, term, summary); ok {
			out[key] = body
		}
	}
	return out
}
