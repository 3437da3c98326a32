package document

import "strings"

// Key identifies the semantic kind of a section.
type Key string

const (
	KeyAliases       Key = "aliases"
	KeyCore          Key = "core"
	KeyOperational   Key = "operational"
	KeyOntology      Key = "ontology"
	KeyRelationships Key = "relationships"
	KeyScientific    Key = "scientific"
	KeyNarrative     Key = "narrative"
	KeyOther         Key = "other"
)

// CanonicalOrder is the fixed emission order for the seven canonical sections.
var CanonicalOrder = []Key{
	KeyAliases,
	KeyCore,
	KeyOperational,
	KeyOntology,
	KeyRelationships,
	KeyScientific,
	KeyNarrative,
}

// AnalyzedOrder lists the five sections the contradiction detector and the
// review collector operate on, in their processing order.
var AnalyzedOrder = []Key{
	KeyCore,
	KeyScientific,
	KeyOperational,
	KeyOntology,
	KeyNarrative,
}

// CanonicalHeaders maps each canonical key to its template header text.
var CanonicalHeaders = map[Key]string{
	KeyAliases:       "## 1. Aliases",
	KeyCore:          "## 2. Core Definition",
	KeyOperational:   "## 3. Operational Definition",
	KeyOntology:      "## 4. Ontological Context",
	KeyRelationships: "## 5. Relationships",
	KeyScientific:    "## 6. Scientific Definition",
	KeyNarrative:     "## 7. Narrative Definition",
}

// headerKeywords maps header substrings to keys. Matching is by substring so
// renumbered or lightly reworded headers still classify.
var headerKeywords = []struct {
	substr string
	key    Key
}{
	{"Core Definition", KeyCore},
	{"Scientific Definition", KeyScientific},
	{"Operational Definition", KeyOperational},
	{"Ontological Context", KeyOntology},
	{"Narrative Definition", KeyNarrative},
	{"Aliases", KeyAliases},
	{"Relationships", KeyRelationships},
}

// KeyForHeader classifies a section header, returning KeyOther when the
// header matches no canonical section kind.
func KeyForHeader(header string) Key {
	for _, candidate := range headerKeywords {
		if strings.Contains(header, candidate.substr) {
			return candidate.key
		}
	}
	return KeyOther
}

// Section is one parsed document section. Header is preserved verbatim;
// Body is the raw text between this header and the next one.
type Section struct {
	Header string
	Key    Key
	Body   string
}

// Document is a parsed term file. Prefix holds everything before the first
// section header, frontmatter included.
type Document struct {
	Term     string
	Prefix   string
	Sections []Section
}

// Section returns the first section with the given key, or nil.
func (d *Document) Section(key Key) *Section {
	for i := range d.Sections {
		if d.Sections[i].Key == key {
			return &d.Sections[i]
		}
	}
	return nil
}
