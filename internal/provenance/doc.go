// Package provenance classifies section bodies by line authorship.
//
// Every non-blank, non-comment line of a section body is either tagged with a
// provenance marker ([W] for externally sourced text, [A] for generated text)
// or untagged, meaning a person wrote it. The three section states derived
// here — empty, all tagged, contains user text — are mutually exclusive and
// drive the merge policy: user text is never overwritten, tagged-only bodies
// may be refreshed, empty bodies may be filled.
//
// All functions are pure over the body text; no state crosses sections.
package provenance
