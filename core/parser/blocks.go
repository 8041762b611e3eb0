package parser

import (
	"errors"
	"strconv"

	"github.com/FocuswithJustin/chalk/core/ast"
)

// typeSignature parses ("(" ts_input ("," ts_input)* ")" "->")? ident.
func (p *parser) typeSignature() (*ast.TypeSignature, error) {
	p.skipSpace()
	start := p.pos
	var inputs []*ast.TypeSignature
	if p.lit("(") {
		first, err := p.tsInput()
		if err != nil {
			return nil, err
		}
		inputs = []*ast.TypeSignature{first}
		for {
			if err := p.token(","); err != nil {
				break
			}
			in, err := p.tsInput()
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, in)
		}
		if err := p.need(")"); err != nil {
			return nil, err
		}
		if err := p.need("->"); err != nil {
			return nil, err
		}
		p.skipSpace()
	}
	output, err := p.ident()
	if err != nil {
		if len(inputs) > 0 {
			return nil, p.unexpected("type")
		}
		return nil, err
	}
	return &ast.TypeSignature{SpanInfo: p.span(start), Inputs: inputs, Output: output}, nil
}

// tsInput parses "'"? type_signature. The apostrophe marks an input
// that ranges over variables. An input position is committed, so a
// missing signature is fatal.
func (p *parser) tsInput() (*ast.TypeSignature, error) {
	p.skipSpace()
	variable := p.lit("'")
	sig, err := p.typeSignature()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("type")
		}
		return nil, err
	}
	sig.Variable = variable
	return sig, nil
}

// varDecl parses ident ":" type_signature.
func (p *parser) varDecl() (*ast.VarDecl, error) {
	p.skipSpace()
	start := p.pos
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.need(":"); err != nil {
		return nil, err
	}
	sig, err := p.typeSignature()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("type")
		}
		return nil, err
	}
	return &ast.VarDecl{SpanInfo: p.span(start), Name: name, Signature: sig}, nil
}

// readStyle parses the prefix/infix discriminator of read and display
// entries.
func (p *parser) readStyle() (ast.ReadStyle, error) {
	p.skipSpace()
	if p.keyword("prefix") {
		return ast.StylePrefix, nil
	}
	if p.keyword("infix") {
		return ast.StyleInfix, nil
	}
	return "", p.unexpected(`"prefix"`, `"infix"`)
}

// flagName parses one deduction flag.
func (p *parser) flagName() (ast.Flag, error) {
	p.skipSpace()
	for _, f := range []ast.Flag{
		ast.FlagReflexive,
		ast.FlagSymmetric,
		ast.FlagTransitive,
		ast.FlagFunction,
		ast.FlagList,
	} {
		if p.keyword(string(f)) {
			return f, nil
		}
	}
	return "", p.miss("flag")
}

// entry parses one declaration-block entry. Which entry kinds are
// legal in which block is a semantic question; the syntax accepts the
// full set everywhere and validation rejects misplaced ones later.
func (p *parser) entry() (ast.Entry, error) {
	p.skipSpace()
	start := p.pos
	switch {
	case p.keyword("name"):
		if err := p.need("="); err != nil {
			return nil, err
		}
		p.skipSpace()
		value, err := p.str()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected("string")
			}
			return nil, err
		}
		if err := p.need(";"); err != nil {
			return nil, err
		}
		return &ast.NameEntry{SpanInfo: p.span(start), Value: value}, nil

	case p.keyword("tagline"):
		if err := p.need("="); err != nil {
			return nil, err
		}
		text, err := p.oneline()
		if err != nil {
			return nil, err
		}
		if err := p.need(";"); err != nil {
			return nil, err
		}
		return &ast.TaglineEntry{SpanInfo: p.span(start), Text: text}, nil

	case p.keyword("description"):
		if err := p.need("="); err != nil {
			return nil, err
		}
		if err := p.need("["); err != nil {
			return nil, err
		}
		blocks, err := p.textBlocks(']', "description entry")
		if err != nil {
			return nil, err
		}
		if err := p.need("]"); err != nil {
			return nil, err
		}
		if err := p.need(";"); err != nil {
			return nil, err
		}
		return &ast.DescriptionEntry{SpanInfo: p.span(start), Blocks: blocks}, nil

	case p.keyword("type"):
		if err := p.need("="); err != nil {
			return nil, err
		}
		sig, err := p.typeSignature()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected("type")
			}
			return nil, err
		}
		if err := p.need(";"); err != nil {
			return nil, err
		}
		return &ast.TypeEntry{SpanInfo: p.span(start), Signature: sig}, nil

	case p.keyword("read"):
		if err := p.need("="); err != nil {
			return nil, err
		}
		style, err := p.readStyle()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		op, err := p.operator()
		if err != nil {
			return nil, p.unexpected("operator")
		}
		if err := p.need(";"); err != nil {
			return nil, err
		}
		return &ast.ReadEntry{SpanInfo: p.span(start), Style: style, Op: op}, nil

	case p.keyword("display"):
		if err := p.need("="); err != nil {
			return nil, err
		}
		style, err := p.readStyle()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		glyph, err := p.word()
		if err != nil {
			return nil, p.unexpected("word")
		}
		if err := p.need(";"); err != nil {
			return nil, err
		}
		return &ast.DisplayEntry{SpanInfo: p.span(start), Style: style, Glyph: glyph}, nil

	case p.keyword("inputs"):
		if err := p.need("="); err != nil {
			return nil, err
		}
		if err := p.need("["); err != nil {
			return nil, err
		}
		// Exactly two declarations, no more, no fewer.
		first, err := p.varDecl()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected("input declaration")
			}
			return nil, err
		}
		if err := p.need(","); err != nil {
			return nil, err
		}
		second, err := p.varDecl()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected("input declaration")
			}
			return nil, err
		}
		_ = p.token(",")
		if err := p.need("]"); err != nil {
			return nil, err
		}
		if err := p.need(";"); err != nil {
			return nil, err
		}
		return &ast.InputsEntry{SpanInfo: p.span(start), Decls: []*ast.VarDecl{first, second}}, nil

	case p.keyword("expanded"):
		if err := p.need("="); err != nil {
			return nil, err
		}
		f, err := p.committedFormula()
		if err != nil {
			return nil, err
		}
		if err := p.need(";"); err != nil {
			return nil, err
		}
		return &ast.ExpandedEntry{SpanInfo: p.span(start), Formula: f}, nil

	case p.keyword("flags"):
		if err := p.need("="); err != nil {
			return nil, err
		}
		if err := p.need("["); err != nil {
			return nil, err
		}
		first, err := p.flagName()
		if err != nil {
			return nil, p.unexpected("flag")
		}
		flags := []ast.Flag{first}
		for {
			if err := p.token(","); err != nil {
				break
			}
			f, err := p.flagName()
			if err != nil {
				// Trailing comma before the closing bracket.
				break
			}
			flags = append(flags, f)
		}
		if err := p.need("]"); err != nil {
			return nil, err
		}
		if err := p.need(";"); err != nil {
			return nil, err
		}
		return &ast.FlagsEntry{SpanInfo: p.span(start), Flags: flags}, nil

	case p.keyword("var"):
		decl, err := p.varDecl()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected("identifier")
			}
			return nil, err
		}
		if err := p.need(";"); err != nil {
			return nil, err
		}
		return &ast.VarEntry{SpanInfo: p.span(start), Decl: decl}, nil

	case p.keyword("premise"):
		if err := p.need("="); err != nil {
			return nil, err
		}
		if err := p.need("["); err != nil {
			return nil, err
		}
		var formulas []ast.Formula
		for {
			p.skipSpace()
			if p.eof() {
				return nil, p.unterminated("premise entry")
			}
			if p.src[p.pos] == ']' {
				break
			}
			f, err := p.committedFormula()
			if err != nil {
				return nil, err
			}
			if err := p.need(";"); err != nil {
				return nil, err
			}
			formulas = append(formulas, f)
		}
		if err := p.need("]"); err != nil {
			return nil, err
		}
		if err := p.need(";"); err != nil {
			return nil, err
		}
		return &ast.PremiseEntry{SpanInfo: p.span(start), Formulas: formulas}, nil

	case p.keyword("assertion"):
		if err := p.need("="); err != nil {
			return nil, err
		}
		f, err := p.committedFormula()
		if err != nil {
			return nil, err
		}
		if err := p.need(";"); err != nil {
			return nil, err
		}
		return &ast.AssertionEntry{SpanInfo: p.span(start), Formula: f}, nil
	}
	return nil, p.miss("entry")
}

// committedFormula parses a formula at a position where one must
// appear.
func (p *parser) committedFormula() (ast.Formula, error) {
	f, err := p.formula()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("formula")
		}
		return nil, err
	}
	return f, nil
}

// oneline parses a single-line paragraph at a committed position.
func (p *parser) oneline() (*ast.Paragraph, error) {
	text, err := p.paragraphRun(true)
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("text")
		}
		return nil, err
	}
	return text, nil
}

// blockHeader parses the ident (":" parent)? "{" header shared by all
// declaration blocks. The keyword has been consumed, so failures are
// fatal.
func (p *parser) blockHeader(withParent bool) (id, parent string, err error) {
	p.skipSpace()
	id, err = p.ident()
	if err != nil {
		return "", "", p.unexpected("identifier")
	}
	if withParent {
		if err := p.need(":"); err != nil {
			return "", "", err
		}
		p.skipSpace()
		parent, err = p.ident()
		if err != nil {
			return "", "", p.unexpected("identifier")
		}
	}
	if err := p.need("{"); err != nil {
		return "", "", err
	}
	return id, parent, nil
}

// entryBody parses entries until the closing brace.
func (p *parser) entryBody(construct string) ([]ast.Entry, error) {
	var entries []ast.Entry
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.unterminated(construct)
		}
		if p.lit("}") {
			return entries, nil
		}
		e, err := p.entry()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected(`"}"`)
			}
			return nil, err
		}
		entries = append(entries, e)
	}
}

// metaItem parses one proof step metadata item: a macro justification,
// a premise number, a #tag, or a named justification.
func (p *parser) metaItem() (ast.MetaItem, error) {
	p.skipSpace()
	start := p.pos
	switch {
	case p.keyword("!def"):
		return &ast.MacroJustification{SpanInfo: p.span(start), Kind: ast.ByDefinition}, nil
	case p.keyword("!fun"):
		return &ast.MacroJustification{SpanInfo: p.span(start), Kind: ast.ByFunctionApplication}, nil
	case p.keyword("!sub"):
		return &ast.MacroJustification{SpanInfo: p.span(start), Kind: ast.BySubstitution}, nil
	}
	if digits, err := p.integer(); err == nil {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return nil, p.malformed("premise reference")
		}
		return &ast.StepRef{SpanInfo: p.span(start), Index: n}, nil
	}
	if name, err := p.tag(); err == nil {
		return &ast.TagDef{SpanInfo: p.span(start), Name: name}, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}
	if name, err := p.ident(); err == nil {
		return &ast.NamedJustification{SpanInfo: p.span(start), Name: name}, nil
	}
	return nil, p.miss("justification")
}

// proofStep parses "|" meta ("," meta)* "|" formula ";" punct*. The
// leading bar has been consumed by the caller.
func (p *parser) proofStep(start int) (*ast.ProofStep, error) {
	first, err := p.metaItem()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("justification")
		}
		return nil, err
	}
	meta := []ast.MetaItem{first}
	for {
		if err := p.token(","); err != nil {
			break
		}
		item, err := p.metaItem()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected("justification")
			}
			return nil, err
		}
		meta = append(meta, item)
	}
	if err := p.need("|"); err != nil {
		return nil, err
	}
	f, err := p.committedFormula()
	if err != nil {
		return nil, err
	}
	if err := p.need(";"); err != nil {
		return nil, err
	}
	trailing := p.punctRun()
	return &ast.ProofStep{SpanInfo: p.span(start), Meta: meta, Formula: f, Trailing: trailing}, nil
}

// proofBody parses the interleaving of proof steps and prose until the
// closing brace.
func (p *parser) proofBody(construct string) ([]ast.ProofElement, error) {
	var elements []ast.ProofElement
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.unterminated(construct)
		}
		if p.lit("}") {
			return elements, nil
		}
		start := p.pos
		if p.lit("|") {
			step, err := p.proofStep(start)
			if err != nil {
				return nil, err
			}
			elements = append(elements, step)
			continue
		}
		b, err := p.textBlock()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected(`"}"`)
			}
			return nil, err
		}
		elements = append(elements, &ast.ProofText{
			SpanInfo: p.spanBetween(b.Pos().Offset, b.End().Offset),
			Block:    b,
		})
	}
}

// tableRows parses row { ... } entries until the closing brace of a
// table section.
func (p *parser) tableRows() ([]*ast.TableRow, error) {
	var rows []*ast.TableRow
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.unterminated("table section")
		}
		if p.src[p.pos] == '}' {
			return rows, nil
		}
		start := p.pos
		if !p.keyword("row") {
			return nil, p.unexpected(`"row"`, `"}"`)
		}
		if err := p.need("{"); err != nil {
			return nil, err
		}
		first, err := p.paragraphRun(false)
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected("text")
			}
			return nil, err
		}
		cells := []*ast.Paragraph{first}
		for {
			if err := p.token("&"); err != nil {
				break
			}
			cell, err := p.paragraphRun(false)
			if err != nil {
				if errors.Is(err, errNoMatch) {
					return nil, p.unexpected("text")
				}
				return nil, err
			}
			cells = append(cells, cell)
		}
		if err := p.need("}"); err != nil {
			return nil, err
		}
		rows = append(rows, &ast.TableRow{SpanInfo: p.span(start), Cells: cells})
	}
}

// tableSection parses the braced row list after head, body, or foot.
func (p *parser) tableSection() (*ast.TableSection, error) {
	start := p.pos
	if err := p.need("{"); err != nil {
		return nil, err
	}
	rows, err := p.tableRows()
	if err != nil {
		return nil, err
	}
	if err := p.need("}"); err != nil {
		return nil, err
	}
	return &ast.TableSection{SpanInfo: p.span(start), Rows: rows}, nil
}

// table parses the body of a \Table block. Head, body, foot, and
// caption are each optional, at most once, in that order.
func (p *parser) table(start int) (*ast.Table, error) {
	if err := p.need("{"); err != nil {
		return nil, err
	}
	t := &ast.Table{}
	p.skipSpace()
	if p.keyword("head") {
		sec, err := p.tableSection()
		if err != nil {
			return nil, err
		}
		t.Head = sec
		p.skipSpace()
	}
	if p.keyword("body") {
		sec, err := p.tableSection()
		if err != nil {
			return nil, err
		}
		t.Body = sec
		p.skipSpace()
	}
	if p.keyword("foot") {
		sec, err := p.tableSection()
		if err != nil {
			return nil, err
		}
		t.Foot = sec
		p.skipSpace()
	}
	if p.keyword("caption") {
		if err := p.need("{"); err != nil {
			return nil, err
		}
		caption, err := p.paragraphRun(false)
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected("text")
			}
			return nil, err
		}
		if err := p.need("}"); err != nil {
			return nil, err
		}
		t.Caption = caption
	}
	if err := p.need("}"); err != nil {
		return nil, err
	}
	t.SpanInfo = p.span(start)
	return t, nil
}

// quote parses the body of a \Quote block: an optional original text
// and a mandatory value.
func (p *parser) quote(start int) (*ast.Quote, error) {
	if err := p.need("{"); err != nil {
		return nil, err
	}
	q := &ast.Quote{}
	p.skipSpace()
	if p.keyword("original") {
		if err := p.need("{"); err != nil {
			return nil, err
		}
		u, err := p.unformatted()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected("text")
			}
			return nil, err
		}
		if err := p.need("}"); err != nil {
			return nil, err
		}
		q.Original = u
		p.skipSpace()
	}
	if !p.keyword("value") {
		return nil, p.unexpected(`"value"`)
	}
	if err := p.need("{"); err != nil {
		return nil, err
	}
	u, err := p.unformatted()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("text")
		}
		return nil, err
	}
	if err := p.need("}"); err != nil {
		return nil, err
	}
	q.Value = u
	if err := p.need("}"); err != nil {
		return nil, err
	}
	q.SpanInfo = p.span(start)
	return q, nil
}

// todo parses the body of a \Todo block.
func (p *parser) todo(start int) (*ast.Todo, error) {
	if err := p.need("{"); err != nil {
		return nil, err
	}
	blocks, err := p.textBlocks('}', `\Todo block`)
	if err != nil {
		return nil, err
	}
	if err := p.need("}"); err != nil {
		return nil, err
	}
	return &ast.Todo{SpanInfo: p.span(start), Blocks: blocks}, nil
}

// subheading parses one heading line: "#", "##", or "###" followed by
// oneline text.
func (p *parser) subheading() (*ast.Subheading, error) {
	start := p.pos
	level := 0
	switch {
	case p.lit("###"):
		level = 3
	case p.lit("##"):
		level = 2
	case p.lit("#"):
		level = 1
	default:
		return nil, p.miss("heading")
	}
	text, err := p.oneline()
	if err != nil {
		return nil, err
	}
	return &ast.Subheading{SpanInfo: p.span(start), Level: level, Elements: text.Elements}, nil
}

// heading parses a run of consecutive heading lines.
func (p *parser) heading() (*ast.Heading, error) {
	start := p.pos
	first, err := p.subheading()
	if err != nil {
		return nil, err
	}
	subs := []*ast.Subheading{first}
	for {
		m := p.pos
		p.skipSpace()
		sub, err := p.subheading()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				p.pos = m
				break
			}
			return nil, err
		}
		subs = append(subs, sub)
	}
	return &ast.Heading{SpanInfo: p.span(start), Subheadings: subs}, nil
}

// unorderedList parses a run of "-" oneline items.
func (p *parser) unorderedList() (*ast.UnorderedList, error) {
	start := p.pos
	if !p.lit("-") {
		return nil, p.miss("list item")
	}
	first, err := p.oneline()
	if err != nil {
		return nil, err
	}
	items := []*ast.Paragraph{first}
	for {
		m := p.pos
		p.skipSpace()
		if !p.lit("-") {
			p.pos = m
			break
		}
		item, err := p.oneline()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &ast.UnorderedList{SpanInfo: p.span(start), Items: items}, nil
}

// orderedList parses a run of integer "." oneline items.
func (p *parser) orderedList() (*ast.OrderedList, error) {
	start := p.pos
	if _, err := p.integer(); err != nil {
		return nil, err
	}
	if !p.lit(".") {
		err := p.miss(`"."`)
		p.pos = start
		return nil, err
	}
	first, err := p.oneline()
	if err != nil {
		return nil, err
	}
	items := []*ast.Paragraph{first}
	for {
		m := p.pos
		p.skipSpace()
		if _, err := p.integer(); err != nil {
			p.pos = m
			break
		}
		if !p.lit(".") {
			p.pos = m
			break
		}
		item, err := p.oneline()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &ast.OrderedList{SpanInfo: p.span(start), Items: items}, nil
}
