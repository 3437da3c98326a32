// Package engine drives the non-destructive merge pipeline over term
// documents.
//
// For each file it parses sections, classifies their provenance, regenerates
// only bodies that are empty or machine-only, runs the contradiction
// detector, collects review flags, and reassembles the document. User-written
// prose is never overwritten: the merge policy only ever replaces bodies
// whose every line carries a [W] or [A] tag. Folder processing is strictly
// sequential under a vault lock, and a failure in one file never aborts its
// siblings.
package engine
