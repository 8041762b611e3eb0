package ast

// GlyphKind classifies an unformatted text glyph.
type GlyphKind string

// Glyph kinds. Escaped punctuation keeps its own kind so renderers can
// choose the typeset form.
const (
	// GlyphWord is a bare run of word characters.
	GlyphWord GlyphKind = "word"

	// GlyphSpace is an inter-element whitespace run.
	GlyphSpace GlyphKind = "space"

	// GlyphOpenBracket is the escape \[ for a literal open bracket.
	GlyphOpenBracket GlyphKind = "open_bracket"

	// GlyphCloseBracket is the escape \] for a literal close bracket.
	GlyphCloseBracket GlyphKind = "close_bracket"

	// GlyphAmpersand is the escape \& for a literal ampersand.
	GlyphAmpersand GlyphKind = "ampersand"

	// GlyphApostrophe is the escape \' for an apostrophe.
	GlyphApostrophe GlyphKind = "apostrophe"

	// GlyphLeftDoubleQuote is the opening double quote ``.
	GlyphLeftDoubleQuote GlyphKind = "ldquo"

	// GlyphRightDoubleQuote is the closing double quote ''.
	GlyphRightDoubleQuote GlyphKind = "rdquo"

	// GlyphLeftSingleQuote is the opening single quote `.
	GlyphLeftSingleQuote GlyphKind = "lsquo"

	// GlyphRightSingleQuote is the closing single quote '.
	GlyphRightSingleQuote GlyphKind = "rsquo"

	// GlyphEllipsis is the punctuation run "...".
	GlyphEllipsis GlyphKind = "ellipsis"
)

// Glyph is an unformatted text atom. For GlyphWord the Text field
// holds the exact source substring; other kinds leave it empty.
type Glyph struct {
	SpanInfo

	// Kind classifies the glyph.
	Kind GlyphKind `json:"kind"`

	// Text is the verbatim source text of a word glyph.
	Text string `json:"text,omitempty"`
}

func (*Glyph) textElementNode() {}

// BareText is plain text with no markup at all: words, spaces, and
// punctuation glyphs. Used for hyperlink bodies and reference bodies,
// which must be reproduced verbatim.
type BareText struct {
	SpanInfo

	// Glyphs are the text atoms in source order.
	Glyphs []*Glyph `json:"glyphs"`
}

// Hyperlink is <a url>text</a>.
type Hyperlink struct {
	SpanInfo

	// URL is the link target exactly as written.
	URL string `json:"url"`

	// Text is the link body.
	Text *BareText `json:"text"`
}

func (*Hyperlink) textElementNode() {}

// Unformatted is a run of inline elements with no nested markup:
// glyphs and hyperlinks only. Quote bodies, bibliography fields, and
// heading contents use it.
type Unformatted struct {
	SpanInfo

	// Elements holds *Glyph and *Hyperlink values in source order.
	Elements []TextElement `json:"elements"`
}

// TextElement is one inline element of a paragraph or oneline.
type TextElement interface {
	Node
	textElementNode()
}

// RefTargetKind classifies a reference target.
type RefTargetKind string

// Reference target kinds, in parse priority order.
const (
	// RefTag targets a tagged proof step, written #name.
	RefTag RefTargetKind = "tag"

	// RefQualified targets a system child, written parent.name.
	RefQualified RefTargetKind = "qualified"

	// RefIdent targets a system, written name.
	RefIdent RefTargetKind = "ident"
)

// RefTarget is the symbolic target of a reference. It is not resolved
// at parse time.
type RefTarget struct {
	SpanInfo

	// Kind classifies the target form.
	Kind RefTargetKind `json:"kind"`

	// Parent is the system identifier of a qualified target.
	Parent string `json:"parent,omitempty"`

	// Name is the tag, child, or system identifier.
	Name string `json:"name"`
}

// Reference is an inline cross reference: void form <ref target/> or
// full form <ref target>body</ref>. The full-form body is literal text
// reproduced verbatim, never re-derived from the target.
type Reference struct {
	SpanInfo

	// Target is the symbolic reference target.
	Target *RefTarget `json:"target"`

	// Body is the full-form body, nil for the void form.
	Body *BareText `json:"body,omitempty"`
}

func (*Reference) textElementNode() {}

// InlineMath is a $[ ... ]$ math span.
type InlineMath struct {
	SpanInfo

	// Row is the math content.
	Row *MathRow `json:"row"`
}

func (*InlineMath) textElementNode() {}

// CiteRef is an inline citation marker ~key. The key names a
// bibliography entry; it is resolved by a later pass.
type CiteRef struct {
	SpanInfo

	// Key is the bibliography entry identifier.
	Key string `json:"key"`
}

func (*CiteRef) textElementNode() {}

// Emphasis is an <em> or </em> marker. Begin/end balance is not
// checked at parse time.
type Emphasis struct {
	SpanInfo

	// Open reports whether this is the begin marker.
	Open bool `json:"open"`
}

func (*Emphasis) textElementNode() {}

// Highlight is a <unicorn> or </unicorn> marker. Begin/end balance is
// not checked at parse time.
type Highlight struct {
	SpanInfo

	// Open reports whether this is the begin marker.
	Open bool `json:"open"`
}

func (*Highlight) textElementNode() {}

// Paragraph is a run of inline elements. A whitespace run containing
// at most one newline separates elements; a run with two or more
// newlines ended the paragraph.
type Paragraph struct {
	SpanInfo

	// Elements are the inline elements in source order.
	Elements []TextElement `json:"elements"`
}

func (*Paragraph) textBlockNode() {}

// TextBlock is one prose unit inside descriptions, todo blocks, and
// proof bodies, and the document-level prose fallback.
type TextBlock interface {
	Node
	textBlockNode()
}

// SublistItem maps a variable to its replacement math row, written
// 'x >>> row ;.
type SublistItem struct {
	SpanInfo

	// Var is the variable identifier without the leading apostrophe.
	Var string `json:"var"`

	// Replacement is the math row substituted for the variable.
	Replacement *MathRow `json:"replacement"`
}

// Sublist is one or more substitution items.
type Sublist struct {
	SpanInfo

	// Items are the substitution items in source order.
	Items []*SublistItem `json:"items"`
}

func (*Sublist) textBlockNode() {}

// DisplayMath is a $$ ... $$ block. The punctuation after the closing
// delimiter is captured verbatim for rendering.
type DisplayMath struct {
	SpanInfo

	// Row is the math content.
	Row *MathRow `json:"row"`

	// Trailing is the punctuation run after the closing $$.
	Trailing string `json:"trailing,omitempty"`
}

func (*DisplayMath) textBlockNode() {}

// Citation is a raw citation insert \Citation { ... } carrying the
// same field set as a bibliography entry.
type Citation struct {
	SpanInfo

	// Fields is the citation record.
	Fields *BibFields `json:"fields"`
}

func (*Citation) textBlockNode() {}
