// Package generate produces deterministic replacement content for term
// document sections.
//
// Every generator is a pure function of (term, external summary): identical
// inputs always yield identical bytes, which is what makes a second engine
// pass over the same vault a no-op. Content derived from an external summary
// carries the [W] tag; fallback boilerplate carries the [A] tag. Relationships
// are never generated — relational data cannot be synthesized safely.
package generate
