package contradict

import (
	"regexp"
	"strings"

	"quill/internal/document"
	"quill/internal/provenance"
	"quill/internal/textutil"
)

// Inputs carries the final (possibly freshly generated) bodies of the five
// analyzable sections. Absent sections are empty strings.
type Inputs struct {
	Core        string
	Scientific  string
	Operational string
	Ontology    string
	Narrative   string
}

// Report maps implicated section keys to their contradiction messages.
// Iteration for output always follows document.AnalyzedOrder so results are
// deterministic.
type Report struct {
	byKey map[document.Key][]string
}

func (r *Report) add(key document.Key, msg string) {
	if r.byKey == nil {
		r.byKey = make(map[document.Key][]string)
	}
	r.byKey[key] = append(r.byKey[key], msg)
}

// ForSection returns the messages attached to key, in detection order.
func (r Report) ForSection(key document.Key) []string {
	return r.byKey[key]
}

// Messages flattens the report in analyzed-section order.
func (r Report) Messages() []string {
	var msgs []string
	for _, key := range document.AnalyzedOrder {
		msgs = append(msgs, r.byKey[key]...)
	}
	return msgs
}

// Empty reports whether no check fired.
func (r Report) Empty() bool {
	for _, msgs := range r.byKey {
		if len(msgs) > 0 {
			return false
		}
	}
	return true
}

var (
	triadPattern  = regexp.MustCompile(`(?i)Triad.*?:\s*(.+)`)
	domainPattern = regexp.MustCompile(`(?i)Domain.*?:\s*(.+)`)
)

func isPhysical(text string) bool {
	return textutil.ContainsAny(text, "physical", "material", "spacetime", "energy")
}

func isNonPhysical(text string) bool {
	return textutil.ContainsAny(text, "non-physical", "immaterial", "purely abstract", "purely spiritual")
}

// Detect runs all checks against the supplied section bodies.
func Detect(in Inputs) Report {
	var report Report

	coreText := provenance.FirstUntaggedLine(in.Core)
	sciText := provenance.FirstUntaggedLine(in.Scientific)
	opText := provenance.FirstUntaggedLine(in.Operational)
	narrText := provenance.FirstUntaggedLine(in.Narrative)
	ontoText := in.Ontology

	// Physicality mismatch: symmetric between core and scientific.
	if coreText != "" && sciText != "" {
		if isNonPhysical(coreText) && isPhysical(sciText) {
			msg := "Core Definition implies non-physical/immaterial, while Scientific Definition describes it as physical/material."
			report.add(document.KeyCore, msg)
			report.add(document.KeyScientific, msg)
		}
		if isPhysical(coreText) && isNonPhysical(sciText) {
			msg := "Core Definition implies physical/material, while Scientific Definition describes it as non-physical/immaterial."
			report.add(document.KeyCore, msg)
			report.add(document.KeyScientific, msg)
		}
	}

	// Core must state identity, not function.
	if coreText != "" && textutil.ContainsAny(coreText, "causes ", "describes ", "is the process", "operates as") {
		report.add(document.KeyCore,
			"Core Definition contains functional/operational language. Core should state what the term IS, not how it works.")
	}

	if ontoText != "" {
		triad := submatch(triadPattern, ontoText)
		domain := submatch(domainPattern, ontoText)

		// Necessity vs contingency across scientific + narrative.
		if strings.HasPrefix(strings.ToLower(triad), "necessity") {
			combined := sciText + narrText
			if textutil.ContainsAny(combined, "history", "historical", "contingent", "emergent", "depends on", "developed") {
				report.add(document.KeyOntology,
					"Ontological Context marks this as Necessity, but Scientific/Narrative layers describe it as historical or contingent.")
			}
		}

		// Observer domain needs observer language in core or operational.
		if strings.Contains(domain, "Observer") {
			combined := opText + coreText
			if !textutil.ContainsAny(combined, "conscious", "observer", "awareness", "witness") {
				report.add(document.KeyOntology,
					"Ontological Context places this in Observer-Consciousness, but Core/Operational definitions contain no explicit observer/consciousness language.")
			}
		}
	}

	return report
}

// submatch extracts a labeled value. Generated ontology lines bold the label
// ("**Triad Position:** Necessity"), which leaves the closing emphasis markers
// on the captured side of the colon, so they are stripped along with
// whitespace before the value is compared.
func submatch(pattern *regexp.Regexp, text string) string {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	value := strings.TrimSpace(match[1])
	value = strings.TrimSpace(strings.Trim(value, "*"))
	return value
}
