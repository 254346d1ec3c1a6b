// Package simplify turns raw Figma document trees into a compact,
// deduplicated representation suitable for constrained AI contexts.
//
// The pipeline walks the tree depth-first, filters invisible content,
// normalizes paints and layout into CSS-flavored values, and interns
// every non-trivial style into a per-run global table so repeated
// styles are stored once and referenced by id. The finished Design is
// compacted into a generic tree with all empty values pruned before
// serialization.
package simplify
