// Package writers turns window matches into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (BED/GFF3/JSON/JSONL).
//   - The scanner stays domain-only; the pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
