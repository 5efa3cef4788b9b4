// Package pipeline walks FASTA inputs through the window scanner and
// hands matches, in emission order, to a visit callback.
//
// It owns run accounting (Stats) and provenance (Match.SourceFile);
// scanning semantics live in core/window.
package pipeline
