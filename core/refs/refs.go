// Package refs parses and resolves standalone reference-target
// strings, the form used by CLI queries and cross-page link indexes.
// The in-page <ref> form is handled by the document parser; this
// package covers the same target grammar when it appears outside a
// page.
package refs

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/chalk/core/ast"
)

// Ref is a parsed reference target.
type Ref struct {
	// Kind classifies the target form.
	Kind ast.RefTargetKind `json:"kind"`

	// Parent is the system identifier of a qualified target.
	Parent string `json:"parent,omitempty"`

	// Name is the tag, child, or system identifier.
	Name string `json:"name"`

	// Raw is the original string, when the Ref came from ParseRef.
	Raw string `json:"raw,omitempty"`
}

// refGrammar is the participle grammar for reference targets.
// Examples: "#step_one", "prop.and", "prop"
//
type refGrammar struct {
	Tag  *tagPart  `parser:"  @@"`
	Path *pathPart `parser:"| @@"`
}

type tagPart struct {
	Name string `parser:"'#' @Ident"`
}

type pathPart struct {
	First  string  `parser:"@Ident"`
	Second *string `parser:"( '.' @Ident )?"`
}

var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[.#]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// ParseRef parses a reference-target string.
// Supported forms:
//   - "#step_one" (tagged proof step)
//   - "prop.and" (child of a system)
//   - "prop" (system)
func ParseRef(s string) (*Ref, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("empty reference string")
	}

	parsed, err := refParser.ParseString("", trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid reference format: %q: %w", s, err)
	}

	ref := &Ref{Raw: trimmed}
	switch {
	case parsed.Tag != nil:
		ref.Kind = ast.RefTag
		ref.Name = parsed.Tag.Name
	case parsed.Path.Second != nil:
		ref.Kind = ast.RefQualified
		ref.Parent = parsed.Path.First
		ref.Name = *parsed.Path.Second
	default:
		ref.Kind = ast.RefIdent
		ref.Name = parsed.Path.First
	}
	return ref, nil
}

// FromTarget converts a parsed in-page target into a Ref.
func FromTarget(t *ast.RefTarget) *Ref {
	return &Ref{Kind: t.Kind, Parent: t.Parent, Name: t.Name}
}

// String returns the canonical written form of the reference.
func (r *Ref) String() string {
	switch r.Kind {
	case ast.RefTag:
		return "#" + r.Name
	case ast.RefQualified:
		return r.Parent + "." + r.Name
	default:
		return r.Name
	}
}

// Key returns the canonical form used for index lookups. Tags are
// page-local, so the key carries no parent.
func (r *Ref) Key() string {
	return r.String()
}

// Matches reports whether two refs name the same target.
func (r *Ref) Matches(other *Ref) bool {
	return r.Kind == other.Kind && r.Parent == other.Parent && r.Name == other.Name
}

// Set is a collection of targets declared by a page, used to resolve
// incoming references.
type Set struct {
	byKey map[string]*Ref
}

// NewSet builds an empty target set.
func NewSet() *Set {
	return &Set{byKey: make(map[string]*Ref)}
}

// Add records a target. Later additions with the same key replace
// earlier ones.
func (s *Set) Add(ref *Ref) {
	s.byKey[ref.Key()] = ref
}

// Lookup returns the target with the same canonical form, if any.
func (s *Set) Lookup(ref *Ref) (*Ref, bool) {
	found, ok := s.byKey[ref.Key()]
	return found, ok
}

// Len returns the number of distinct targets in the set.
func (s *Set) Len() int {
	return len(s.byKey)
}

// Targets collects every referenceable target a document declares:
// system identifiers, qualified block identifiers, and proof step
// tags.
func Targets(doc *ast.Document) *Set {
	set := NewSet()
	ast.Walk(doc, func(n ast.Node) bool {
		switch b := n.(type) {
		case *ast.System:
			set.Add(&Ref{Kind: ast.RefIdent, Name: b.ID})
		case *ast.Type:
			set.Add(&Ref{Kind: ast.RefQualified, Parent: b.Parent, Name: b.ID})
		case *ast.Symbol:
			set.Add(&Ref{Kind: ast.RefQualified, Parent: b.Parent, Name: b.ID})
		case *ast.Definition:
			set.Add(&Ref{Kind: ast.RefQualified, Parent: b.Parent, Name: b.ID})
		case *ast.Axiom:
			set.Add(&Ref{Kind: ast.RefQualified, Parent: b.Parent, Name: b.ID})
		case *ast.Theorem:
			set.Add(&Ref{Kind: ast.RefQualified, Parent: b.Parent, Name: b.ID})
		case *ast.Proof:
			set.Add(&Ref{Kind: ast.RefQualified, Parent: b.Parent, Name: b.ID})
		case *ast.TagDef:
			set.Add(&Ref{Kind: ast.RefTag, Name: b.Name})
		}
		return true
	})
	return set
}
