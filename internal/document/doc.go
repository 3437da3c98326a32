// Package document models term documents: markdown files with a fixed
// sequence of numbered semantic sections.
//
// It owns the line-scanning parser that splits raw text into a prefix plus
// ordered (header, body) sections, the frontmatter/alias extraction, the
// section-key taxonomy, and the composer that reassembles a processed
// document. Headers are preserved verbatim so an unchanged document
// round-trips byte for byte.
package document
