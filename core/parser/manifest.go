package parser

import (
	"errors"

	"github.com/FocuswithJustin/chalk/core/ast"
)

// ParseManifest parses a library manifest: one or more books, each
// holding chapters, each holding page references.
func ParseManifest(src string) (*ast.Manifest, error) {
	p := newParser(src)
	var books []*ast.Book
	for {
		p.skipSpace()
		if p.eof() {
			break
		}
		b, err := p.book()
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if len(books) == 0 {
		return nil, p.unexpected("book")
	}
	return &ast.Manifest{SpanInfo: p.span(0), Books: books}, nil
}

// book parses ident ":" string "{" oneline "[" chapter* "]" "}".
func (p *parser) book() (*ast.Book, error) {
	p.skipSpace()
	start := p.pos
	id, err := p.ident()
	if err != nil {
		return nil, p.unexpected("book")
	}
	name, err := p.manifestName()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	tagline, err := p.oneline()
	if err != nil {
		return nil, err
	}
	if err := p.need("["); err != nil {
		return nil, err
	}
	var chapters []*ast.Chapter
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.unterminated("book")
		}
		if p.src[p.pos] == ']' {
			break
		}
		ch, err := p.chapter()
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, ch)
	}
	if err := p.need("]"); err != nil {
		return nil, err
	}
	if err := p.need("}"); err != nil {
		return nil, err
	}
	return &ast.Book{
		SpanInfo: p.span(start),
		ID:       id,
		Name:     name,
		Tagline:  tagline,
		Chapters: chapters,
	}, nil
}

// chapter parses ident ":" string "{" oneline "[" page* "]" "}".
func (p *parser) chapter() (*ast.Chapter, error) {
	p.skipSpace()
	start := p.pos
	id, err := p.ident()
	if err != nil {
		return nil, p.unexpected("chapter")
	}
	name, err := p.manifestName()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	tagline, err := p.oneline()
	if err != nil {
		return nil, err
	}
	if err := p.need("["); err != nil {
		return nil, err
	}
	var pages []*ast.Page
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.unterminated("chapter")
		}
		if p.src[p.pos] == ']' {
			break
		}
		pg, err := p.page()
		if err != nil {
			return nil, err
		}
		pages = append(pages, pg)
	}
	if err := p.need("]"); err != nil {
		return nil, err
	}
	if err := p.need("}"); err != nil {
		return nil, err
	}
	return &ast.Chapter{
		SpanInfo: p.span(start),
		ID:       id,
		Name:     name,
		Tagline:  tagline,
		Pages:    pages,
	}, nil
}

// page parses ident ":" string ",".
func (p *parser) page() (*ast.Page, error) {
	p.skipSpace()
	start := p.pos
	id, err := p.ident()
	if err != nil {
		return nil, p.unexpected("page")
	}
	if err := p.need(":"); err != nil {
		return nil, err
	}
	p.skipSpace()
	name, err := p.str()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("string")
		}
		return nil, err
	}
	if err := p.need(","); err != nil {
		return nil, err
	}
	return &ast.Page{SpanInfo: p.span(start), ID: id, Name: name}, nil
}

// manifestName parses the ":" string "{" run shared by books and
// chapters, returning the unescaped display name.
func (p *parser) manifestName() (string, error) {
	if err := p.need(":"); err != nil {
		return "", err
	}
	p.skipSpace()
	name, err := p.str()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return "", p.unexpected("string")
		}
		return "", err
	}
	if err := p.need("{"); err != nil {
		return "", err
	}
	return name, nil
}
