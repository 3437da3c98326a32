// Package textutil provides small text helpers shared by the content
// generators and the contradiction detector.
//
// The primary use cases are:
//   - Splitting prose into sentences and truncating to a sentence budget
//   - Case-insensitive keyword matching against fixed vocabularies
//   - Deriving a display term from a file base name
//
// Sentence handling is deliberately naive (split on '.'): generated content is
// short declarative prose, and the engine's determinism contract matters more
// than linguistic accuracy.
package textutil
