// Package contradict runs cross-section consistency checks over a term
// document's analyzable section bodies.
//
// Detection is a bounded keyword heuristic, not semantic reasoning: four
// independent, order-insensitive checks scan fixed vocabularies and attach
// human-readable messages to the implicated sections. Checks that span two
// sections attach the same message to both. Every run recomputes the full set
// from scratch; nothing is diffed against a previous pass.
package contradict
