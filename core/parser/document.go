package parser

import (
	"errors"

	"github.com/FocuswithJustin/chalk/core/ast"
)

// ParseDocument parses a document page: a sequence of declaration
// blocks, prose blocks, and proofs. The returned tree is fully built
// or the error is a *SyntaxError describing the first failure.
func ParseDocument(src string) (*ast.Document, error) {
	p := newParser(src)
	var blocks []ast.Block
	for {
		p.skipSpace()
		if p.eof() {
			break
		}
		b, err := p.documentBlock()
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return &ast.Document{SpanInfo: p.span(0), Blocks: blocks}, nil
}

// documentBlock parses one top-level block. Keyword-introduced blocks
// are tried first so a heading or list line is never swallowed by the
// prose fallback.
func (p *parser) documentBlock() (ast.Block, error) {
	p.skipSpace()
	start := p.pos
	switch {
	case p.keyword(`\System`):
		id, _, err := p.blockHeader(false)
		if err != nil {
			return nil, err
		}
		entries, err := p.entryBody(`\System block`)
		if err != nil {
			return nil, err
		}
		return &ast.System{SpanInfo: p.span(start), ID: id, Entries: entries}, nil

	case p.keyword(`\Type`):
		id, parent, entries, err := p.parentedEntryBlock(`\Type block`)
		if err != nil {
			return nil, err
		}
		return &ast.Type{SpanInfo: p.span(start), ID: id, Parent: parent, Entries: entries}, nil

	case p.keyword(`\Symbol`):
		id, parent, entries, err := p.parentedEntryBlock(`\Symbol block`)
		if err != nil {
			return nil, err
		}
		return &ast.Symbol{SpanInfo: p.span(start), ID: id, Parent: parent, Entries: entries}, nil

	case p.keyword(`\Definition`):
		id, parent, entries, err := p.parentedEntryBlock(`\Definition block`)
		if err != nil {
			return nil, err
		}
		return &ast.Definition{SpanInfo: p.span(start), ID: id, Parent: parent, Entries: entries}, nil

	case p.keyword(`\Axiom`):
		id, parent, entries, err := p.parentedEntryBlock(`\Axiom block`)
		if err != nil {
			return nil, err
		}
		return &ast.Axiom{SpanInfo: p.span(start), ID: id, Parent: parent, Entries: entries}, nil

	case p.keyword(`\Theorem`):
		return p.theorem(start, ast.KindTheorem, `\Theorem block`)

	case p.keyword(`\Lemma`):
		return p.theorem(start, ast.KindLemma, `\Lemma block`)

	case p.keyword(`\Example`):
		return p.theorem(start, ast.KindExample, `\Example block`)

	case p.keyword(`\Proof`):
		id, parent, err := p.blockHeader(true)
		if err != nil {
			return nil, err
		}
		elements, err := p.proofBody(`\Proof block`)
		if err != nil {
			return nil, err
		}
		return &ast.Proof{SpanInfo: p.span(start), ID: id, Parent: parent, Elements: elements}, nil

	case p.keyword(`\Table`):
		return p.table(start)

	case p.keyword(`\Quote`):
		return p.quote(start)

	case p.keyword(`\Todo`):
		return p.todo(start)
	}

	if h, err := p.heading(); err == nil {
		return h, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}
	if ul, err := p.unorderedList(); err == nil {
		return ul, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}
	if ol, err := p.orderedList(); err == nil {
		return ol, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}

	tb, err := p.textBlock()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("block")
		}
		return nil, err
	}
	return &ast.ProseBlock{
		SpanInfo: p.spanBetween(tb.Pos().Offset, tb.End().Offset),
		Block:    tb,
	}, nil
}

// parentedEntryBlock parses the shared ident ":" parent "{" entry* "}"
// body of the parented declaration blocks.
func (p *parser) parentedEntryBlock(construct string) (id, parent string, entries []ast.Entry, err error) {
	id, parent, err = p.blockHeader(true)
	if err != nil {
		return "", "", nil, err
	}
	entries, err = p.entryBody(construct)
	if err != nil {
		return "", "", nil, err
	}
	return id, parent, entries, nil
}

// theorem parses the shared body of \Theorem, \Lemma, and \Example.
func (p *parser) theorem(start int, kind ast.TheoremKind, construct string) (ast.Block, error) {
	id, parent, entries, err := p.parentedEntryBlock(construct)
	if err != nil {
		return nil, err
	}
	return &ast.Theorem{
		SpanInfo: p.span(start),
		Kind:     kind,
		ID:       id,
		Parent:   parent,
		Entries:  entries,
	}, nil
}
