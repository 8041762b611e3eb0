package ast

// Document is an ordered sequence of top-level blocks. Order is
// preserved from the source and is semantically meaningful: later
// blocks may reference earlier ones by name.
type Document struct {
	SpanInfo

	// Blocks are the document blocks in source order.
	Blocks []Block `json:"blocks"`
}

// Block is one top-level document block.
type Block interface {
	Node
	blockNode()
}

// Entry is one named entry inside a declaration block. The parser
// accepts any subset, order, and repetition of the entry kinds legal
// for the block; required-ness and uniqueness are enforced by the
// semantic layer, which is why entries are kept as an ordered list.
type Entry interface {
	Node
	entryNode()
}

// NameEntry is name = "...";.
type NameEntry struct {
	SpanInfo

	// Value is the unescaped string contents.
	Value string `json:"value"`
}

func (*NameEntry) entryNode() {}

// TaglineEntry is tagline = oneline;.
type TaglineEntry struct {
	SpanInfo

	// Text is the oneline prose.
	Text *Paragraph `json:"text"`
}

func (*TaglineEntry) entryNode() {}

// DescriptionEntry is description = [ text blocks ];.
type DescriptionEntry struct {
	SpanInfo

	// Blocks are the prose blocks in source order.
	Blocks []TextBlock `json:"blocks"`
}

func (*DescriptionEntry) entryNode() {}

// TypeSignature is the type of a symbol or variable: a bare output
// type, or (inputs) -> output. An input marked Variable (written with
// a leading apostrophe) ranges over variables rather than closed
// terms.
type TypeSignature struct {
	SpanInfo

	// Inputs are the input signatures, empty for a bare type.
	Inputs []*TypeSignature `json:"inputs,omitempty"`

	// Output is the result type identifier.
	Output string `json:"output"`

	// Variable marks a variable-typed input signature.
	Variable bool `json:"variable,omitempty"`
}

// TypeEntry is type = signature; on a symbol block.
type TypeEntry struct {
	SpanInfo

	// Signature is the declared type.
	Signature *TypeSignature `json:"signature"`
}

func (*TypeEntry) entryNode() {}

// ReadStyle selects prefix or infix placement.
type ReadStyle string

// Read styles.
const (
	// StylePrefix places the operator before its operand.
	StylePrefix ReadStyle = "prefix"

	// StyleInfix places the operator between its operands.
	StyleInfix ReadStyle = "infix"
)

// ReadEntry is read = style operator; and declares how a symbol is
// written in formulas.
type ReadEntry struct {
	SpanInfo

	// Style is prefix or infix.
	Style ReadStyle `json:"style"`

	// Op is the operator spelling bound to the symbol.
	Op Operator `json:"op"`
}

func (*ReadEntry) entryNode() {}

// DisplayEntry is display = style glyph; and declares the typeset form
// of a symbol. The glyph is kept verbatim.
type DisplayEntry struct {
	SpanInfo

	// Style is prefix or infix.
	Style ReadStyle `json:"style"`

	// Glyph is the typeset operator text as written.
	Glyph string `json:"glyph"`
}

func (*DisplayEntry) entryNode() {}

// VarDecl is a variable declaration ident: signature.
type VarDecl struct {
	SpanInfo

	// Name is the variable identifier.
	Name string `json:"name"`

	// Signature is the declared type.
	Signature *TypeSignature `json:"signature"`
}

// InputsEntry is inputs = [x: T, y: T]; on a definition block. The
// grammar admits exactly two declarations; see DESIGN.md for why this
// arity is replicated rather than generalized.
type InputsEntry struct {
	SpanInfo

	// Decls are the two input declarations.
	Decls []*VarDecl `json:"decls"`
}

func (*InputsEntry) entryNode() {}

// ExpandedEntry is expanded = formula; on a definition block.
type ExpandedEntry struct {
	SpanInfo

	// Formula is the definition expansion.
	Formula Formula `json:"formula"`
}

func (*ExpandedEntry) entryNode() {}

// Flag is a deduction block property flag.
type Flag string

// Deduction flags.
const (
	// FlagReflexive marks a reflexive relation.
	FlagReflexive Flag = "reflexive"

	// FlagSymmetric marks a symmetric relation.
	FlagSymmetric Flag = "symmetric"

	// FlagTransitive marks a transitive relation.
	FlagTransitive Flag = "transitive"

	// FlagFunction marks a function property.
	FlagFunction Flag = "function"

	// FlagList marks a list property.
	FlagList Flag = "list"
)

// FlagsEntry is flags = [ ... ];.
type FlagsEntry struct {
	SpanInfo

	// Flags are the listed flags in source order.
	Flags []Flag `json:"flags"`
}

func (*FlagsEntry) entryNode() {}

// VarEntry is var ident: signature;.
type VarEntry struct {
	SpanInfo

	// Decl is the declaration.
	Decl *VarDecl `json:"decl"`
}

func (*VarEntry) entryNode() {}

// PremiseEntry is premise = [ formula; ... ]; holding zero or more
// semicolon-terminated hypotheses.
type PremiseEntry struct {
	SpanInfo

	// Formulas are the hypotheses in source order.
	Formulas []Formula `json:"formulas"`
}

func (*PremiseEntry) entryNode() {}

// AssertionEntry is assertion = formula;.
type AssertionEntry struct {
	SpanInfo

	// Formula is the asserted statement.
	Formula Formula `json:"formula"`
}

func (*AssertionEntry) entryNode() {}

// System is a \System block introducing a logical system.
type System struct {
	SpanInfo

	// ID is the system identifier.
	ID string `json:"id"`

	// Entries are the block entries in source order.
	Entries []Entry `json:"entries"`
}

func (*System) blockNode() {}

// Type is a \Type block declaring a type inside a system.
type Type struct {
	SpanInfo

	// ID is the type identifier.
	ID string `json:"id"`

	// Parent is the owning system identifier.
	Parent string `json:"parent"`

	// Entries are the block entries in source order.
	Entries []Entry `json:"entries"`
}

func (*Type) blockNode() {}

// Symbol is a \Symbol block declaring a symbol inside a system.
type Symbol struct {
	SpanInfo

	// ID is the symbol identifier.
	ID string `json:"id"`

	// Parent is the owning system identifier.
	Parent string `json:"parent"`

	// Entries are the block entries in source order.
	Entries []Entry `json:"entries"`
}

func (*Symbol) blockNode() {}

// Definition is a \Definition block declaring a defined symbol.
type Definition struct {
	SpanInfo

	// ID is the definition identifier.
	ID string `json:"id"`

	// Parent is the owning system identifier.
	Parent string `json:"parent"`

	// Entries are the block entries in source order.
	Entries []Entry `json:"entries"`
}

func (*Definition) blockNode() {}

// Axiom is an \Axiom block.
type Axiom struct {
	SpanInfo

	// ID is the axiom identifier.
	ID string `json:"id"`

	// Parent is the owning system identifier.
	Parent string `json:"parent"`

	// Entries are the block entries in source order.
	Entries []Entry `json:"entries"`
}

func (*Axiom) blockNode() {}

// TheoremKind distinguishes the deduction block keywords that share
// the theorem grammar.
type TheoremKind string

// Theorem kinds.
const (
	// KindTheorem is the \Theorem keyword.
	KindTheorem TheoremKind = "theorem"

	// KindLemma is the \Lemma keyword.
	KindLemma TheoremKind = "lemma"

	// KindExample is the \Example keyword.
	KindExample TheoremKind = "example"
)

// Theorem is a \Theorem, \Lemma, or \Example block.
type Theorem struct {
	SpanInfo

	// Kind records which keyword introduced the block.
	Kind TheoremKind `json:"kind"`

	// ID is the theorem identifier.
	ID string `json:"id"`

	// Parent is the owning system identifier.
	Parent string `json:"parent"`

	// Entries are the block entries in source order.
	Entries []Entry `json:"entries"`
}

func (*Theorem) blockNode() {}

// JustificationKind identifies a macro justification.
type JustificationKind string

// Macro justification kinds.
const (
	// ByDefinition is the !def macro.
	ByDefinition JustificationKind = "by-definition"

	// ByFunctionApplication is the !fun macro.
	ByFunctionApplication JustificationKind = "by-function-application"

	// BySubstitution is the !sub macro.
	BySubstitution JustificationKind = "by-substitution"
)

// MetaItem is one item of a proof step's metadata list.
type MetaItem interface {
	Node
	metaItemNode()
}

// MacroJustification cites a built-in rule.
type MacroJustification struct {
	SpanInfo

	// Kind selects the rule.
	Kind JustificationKind `json:"kind"`
}

func (*MacroJustification) metaItemNode() {}

// NamedJustification cites an axiom, theorem, or definition by
// identifier. The identifier is not resolved at parse time.
type NamedJustification struct {
	SpanInfo

	// Name is the cited identifier.
	Name string `json:"name"`
}

func (*NamedJustification) metaItemNode() {}

// StepRef cites a premise by its 1-based position.
type StepRef struct {
	SpanInfo

	// Index is the cited premise number.
	Index int `json:"index"`
}

func (*StepRef) metaItemNode() {}

// TagDef attaches a #tag to a proof step so later steps and prose can
// reference it.
type TagDef struct {
	SpanInfo

	// Name is the tag identifier without the leading hash.
	Name string `json:"name"`
}

func (*TagDef) metaItemNode() {}

// ProofStep is | meta | formula ; with any trailing punctuation after
// the semicolon captured verbatim.
type ProofStep struct {
	SpanInfo

	// Meta are the metadata items in source order.
	Meta []MetaItem `json:"meta"`

	// Formula is the step statement.
	Formula Formula `json:"formula"`

	// Trailing is the punctuation run after the terminator.
	Trailing string `json:"trailing,omitempty"`
}

func (*ProofStep) proofElementNode() {}

// ProofElement is one element of a proof body: a step or prose.
type ProofElement interface {
	Node
	proofElementNode()
}

// ProofText wraps a prose block appearing between proof steps.
type ProofText struct {
	SpanInfo

	// Block is the prose content.
	Block TextBlock `json:"block"`
}

func (*ProofText) proofElementNode() {}

// Proof is a \Proof block: an interleaving of steps and prose.
type Proof struct {
	SpanInfo

	// ID is the proof identifier.
	ID string `json:"id"`

	// Parent identifies the theorem the proof establishes.
	Parent string `json:"parent"`

	// Elements are the steps and prose blocks in source order.
	Elements []ProofElement `json:"elements"`
}

func (*Proof) blockNode() {}

// TableSection is one of the head, body, or foot sections of a table.
type TableSection struct {
	SpanInfo

	// Rows are the section rows in source order.
	Rows []*TableRow `json:"rows"`
}

// TableRow is one table row; cells are separated by & in the source.
type TableRow struct {
	SpanInfo

	// Cells are the row cells in source order.
	Cells []*Paragraph `json:"cells"`
}

// Table is a \Table block. Head, body, foot, and caption are each
// optional and appear at most once, in source order.
type Table struct {
	SpanInfo

	// Head is the header section, nil if absent.
	Head *TableSection `json:"head,omitempty"`

	// Body is the body section, nil if absent.
	Body *TableSection `json:"body,omitempty"`

	// Foot is the footer section, nil if absent.
	Foot *TableSection `json:"foot,omitempty"`

	// Caption is the caption paragraph, nil if absent.
	Caption *Paragraph `json:"caption,omitempty"`
}

func (*Table) blockNode() {}

// Quote is a \Quote block with an optional original-language body and
// a mandatory value body.
type Quote struct {
	SpanInfo

	// Original is the original-language text, nil if absent.
	Original *Unformatted `json:"original,omitempty"`

	// Value is the quoted text.
	Value *Unformatted `json:"value"`
}

func (*Quote) blockNode() {}

// Todo is a \Todo block holding prose to be revisited.
type Todo struct {
	SpanInfo

	// Blocks are the prose blocks in source order.
	Blocks []TextBlock `json:"blocks"`
}

func (*Todo) blockNode() {}

// Subheading is one heading line: a level of 1 to 3 and its text.
type Subheading struct {
	SpanInfo

	// Level is the heading depth, 1 for #, 2 for ##, 3 for ###.
	Level int `json:"level"`

	// Elements are the heading text elements.
	Elements []TextElement `json:"elements"`
}

// Heading is a run of consecutive subheading lines.
type Heading struct {
	SpanInfo

	// Subheadings are the lines in source order.
	Subheadings []*Subheading `json:"subheadings"`
}

func (*Heading) blockNode() {}

// UnorderedList is a run of "- item" lines.
type UnorderedList struct {
	SpanInfo

	// Items are the list items in source order.
	Items []*Paragraph `json:"items"`
}

func (*UnorderedList) blockNode() {}

// OrderedList is a run of "n. item" lines. The source numbers are not
// recorded; renderers number items sequentially.
type OrderedList struct {
	SpanInfo

	// Items are the list items in source order.
	Items []*Paragraph `json:"items"`
}

func (*OrderedList) blockNode() {}

// ProseBlock adapts a TextBlock into a document-level block for the
// prose fallback of the document driver.
type ProseBlock struct {
	SpanInfo

	// Block is the prose content.
	Block TextBlock `json:"block"`
}

func (*ProseBlock) blockNode() {}
