package ast

// Visitor is called for each node during a Walk. Returning false stops
// descent into the node's children; siblings are still visited.
type Visitor func(n Node) bool

// Walk calls v for n, then recursively for each child of n in source
// order. Nil nodes are skipped.
func Walk(n Node, v Visitor) {
	if n == nil || !v(n) {
		return
	}
	switch t := n.(type) {
	case *Document:
		for _, b := range t.Blocks {
			Walk(b, v)
		}
	case *System:
		walkEntries(t.Entries, v)
	case *Type:
		walkEntries(t.Entries, v)
	case *Symbol:
		walkEntries(t.Entries, v)
	case *Definition:
		walkEntries(t.Entries, v)
	case *Axiom:
		walkEntries(t.Entries, v)
	case *Theorem:
		walkEntries(t.Entries, v)
	case *Proof:
		for _, e := range t.Elements {
			Walk(e, v)
		}
	case *ProofStep:
		for _, m := range t.Meta {
			Walk(m, v)
		}
		Walk(t.Formula, v)
	case *ProofText:
		Walk(t.Block, v)
	case *TaglineEntry:
		Walk(t.Text, v)
	case *DescriptionEntry:
		for _, b := range t.Blocks {
			Walk(b, v)
		}
	case *TypeEntry:
		Walk(t.Signature, v)
	case *TypeSignature:
		for _, in := range t.Inputs {
			Walk(in, v)
		}
	case *InputsEntry:
		for _, d := range t.Decls {
			Walk(d, v)
		}
	case *VarDecl:
		Walk(t.Signature, v)
	case *VarEntry:
		Walk(t.Decl, v)
	case *ExpandedEntry:
		Walk(t.Formula, v)
	case *PremiseEntry:
		for _, f := range t.Formulas {
			Walk(f, v)
		}
	case *AssertionEntry:
		Walk(t.Formula, v)
	case *ParenFormula:
		Walk(t.Inner, v)
	case *ChainOperand:
		Walk(t.Primary, v)
	case *OperatorChain:
		for _, o := range t.Operands {
			Walk(o, v)
		}
	case *MathRow:
		for _, it := range t.Items {
			Walk(it, v)
		}
	case *MathParen:
		Walk(t.Row, v)
	case *MathBigOp:
		for _, a := range t.Args {
			Walk(a, v)
		}
	case *Paragraph:
		for _, e := range t.Elements {
			Walk(e, v)
		}
	case *Unformatted:
		for _, e := range t.Elements {
			Walk(e, v)
		}
	case *BareText:
		for _, g := range t.Glyphs {
			Walk(g, v)
		}
	case *Hyperlink:
		Walk(t.Text, v)
	case *Reference:
		Walk(t.Target, v)
		if t.Body != nil {
			Walk(t.Body, v)
		}
	case *InlineMath:
		Walk(t.Row, v)
	case *Sublist:
		for _, it := range t.Items {
			Walk(it, v)
		}
	case *SublistItem:
		Walk(t.Replacement, v)
	case *DisplayMath:
		Walk(t.Row, v)
	case *Citation:
		Walk(t.Fields, v)
	case *Table:
		if t.Head != nil {
			Walk(t.Head, v)
		}
		if t.Body != nil {
			Walk(t.Body, v)
		}
		if t.Foot != nil {
			Walk(t.Foot, v)
		}
		if t.Caption != nil {
			Walk(t.Caption, v)
		}
	case *TableSection:
		for _, r := range t.Rows {
			Walk(r, v)
		}
	case *TableRow:
		for _, c := range t.Cells {
			Walk(c, v)
		}
	case *Quote:
		if t.Original != nil {
			Walk(t.Original, v)
		}
		Walk(t.Value, v)
	case *Todo:
		for _, b := range t.Blocks {
			Walk(b, v)
		}
	case *Heading:
		for _, s := range t.Subheadings {
			Walk(s, v)
		}
	case *Subheading:
		for _, e := range t.Elements {
			Walk(e, v)
		}
	case *UnorderedList:
		for _, it := range t.Items {
			Walk(it, v)
		}
	case *OrderedList:
		for _, it := range t.Items {
			Walk(it, v)
		}
	case *ProseBlock:
		Walk(t.Block, v)
	case *Manifest:
		for _, b := range t.Books {
			Walk(b, v)
		}
	case *Book:
		Walk(t.Tagline, v)
		for _, c := range t.Chapters {
			Walk(c, v)
		}
	case *Chapter:
		Walk(t.Tagline, v)
		for _, p := range t.Pages {
			Walk(p, v)
		}
	case *Bibliography:
		for _, e := range t.Entries {
			Walk(e, v)
		}
	case *BibEntry:
		Walk(t.Fields, v)
	case *BibFields:
		walkUnformatted(v, t.Authors, t.Title)
		for _, c := range t.Containers {
			Walk(c, v)
		}
	case *BibContainer:
		walkUnformatted(v, t.Title, t.Contributors, t.Version, t.Number, t.Publisher, t.Date, t.Location)
	}
}

func walkEntries(entries []Entry, v Visitor) {
	for _, e := range entries {
		Walk(e, v)
	}
}

func walkUnformatted(v Visitor, fields ...*Unformatted) {
	for _, f := range fields {
		if f != nil {
			Walk(f, v)
		}
	}
}
