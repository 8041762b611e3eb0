package parser

import (
	"errors"

	"github.com/FocuswithJustin/chalk/core/ast"
)

// ParseBibliography parses a bibliography file: a sequence of
// key { field* } entries. An empty file yields an empty slice.
func ParseBibliography(src string) ([]*ast.BibEntry, error) {
	p := newParser(src)
	var entries []*ast.BibEntry
	for {
		p.skipSpace()
		if p.eof() {
			break
		}
		start := p.pos
		key, err := p.ident()
		if err != nil {
			return nil, p.unexpected("bibliography entry")
		}
		if err := p.need("{"); err != nil {
			return nil, err
		}
		fields, err := p.bibFields("bibliography entry")
		if err != nil {
			return nil, err
		}
		if err := p.need("}"); err != nil {
			return nil, err
		}
		entries = append(entries, &ast.BibEntry{
			SpanInfo: p.span(start),
			Key:      key,
			Fields:   fields,
		})
	}
	return entries, nil
}

// bibFields parses authors, title, and container fields until the
// closing brace, which the caller consumes. The same record grammar
// backs bibliography entries and inline \Citation blocks. Fields may
// appear in any order; a repeated scalar field overwrites the earlier
// value and containers accumulate.
func (p *parser) bibFields(construct string) (*ast.BibFields, error) {
	p.skipSpace()
	start := p.pos
	fields := &ast.BibFields{}
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.unterminated(construct)
		}
		if p.src[p.pos] == '}' {
			fields.SpanInfo = p.span(start)
			return fields, nil
		}
		switch {
		case p.keyword("authors"):
			u, err := p.bibValue()
			if err != nil {
				return nil, err
			}
			fields.Authors = u
		case p.keyword("title"):
			u, err := p.bibValue()
			if err != nil {
				return nil, err
			}
			fields.Title = u
		case p.keyword("container"):
			c, err := p.bibContainer()
			if err != nil {
				return nil, err
			}
			fields.Containers = append(fields.Containers, c)
		default:
			return nil, p.unexpected("bibliography field")
		}
	}
}

// bibValue parses "=" unformatted ";".
func (p *parser) bibValue() (*ast.Unformatted, error) {
	if err := p.need("="); err != nil {
		return nil, err
	}
	u, err := p.unformatted()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("text")
		}
		return nil, err
	}
	if err := p.need(";"); err != nil {
		return nil, err
	}
	return u, nil
}

// bibContainer parses the braced field group describing the container
// of a cited work.
func (p *parser) bibContainer() (*ast.BibContainer, error) {
	start := p.pos
	if err := p.need("{"); err != nil {
		return nil, err
	}
	c := &ast.BibContainer{}
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.unterminated("container field group")
		}
		if p.lit("}") {
			c.SpanInfo = p.span(start)
			return c, nil
		}
		var slot **ast.Unformatted
		switch {
		case p.keyword("title"):
			slot = &c.Title
		case p.keyword("contributors"):
			slot = &c.Contributors
		case p.keyword("version"):
			slot = &c.Version
		case p.keyword("number"):
			slot = &c.Number
		case p.keyword("publisher"):
			slot = &c.Publisher
		case p.keyword("date"):
			slot = &c.Date
		case p.keyword("location"):
			slot = &c.Location
		default:
			return nil, p.unexpected("container field")
		}
		u, err := p.bibValue()
		if err != nil {
			return nil, err
		}
		*slot = u
	}
}
