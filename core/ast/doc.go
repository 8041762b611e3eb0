// Package ast defines the parse-tree node types produced by the chalk
// parser for all three dialects: documents, manifests, and
// bibliographies.
//
// Trees are immutable once constructed. Ownership is strictly
// hierarchical: a parent owns its children and nodes hold no back
// references. Cross references (proof justifications, reference
// targets, parent system ids) are stored as plain symbolic strings and
// resolved by downstream passes, never by this package.
//
// Every node carries a source span so diagnostics and renderers can
// point back into the original buffer. Use Walk to traverse a tree
// read-only.
package ast
