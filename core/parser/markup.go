package parser

import (
	"errors"

	"github.com/FocuswithJustin/chalk/core/ast"
)

// skipHSpace consumes spaces and tabs but stops at a newline. Oneline
// text uses it so the line the text sits on is not crossed.
func (p *parser) skipHSpace() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c != ' ' && c != '\t' {
			break
		}
		p.pos++
	}
}

// spanBetween builds span info for an already-consumed region.
func (p *parser) spanBetween(start, end int) ast.SpanInfo {
	return ast.At(ast.Span{Start: p.at(start), End: p.at(end)})
}

// glyph parses one unformatted text atom: an escape, a smart quote,
// an ellipsis, or a bare word. Escapes exist for every reserved byte
// that plain prose needs to show literally.
func (p *parser) glyph() (*ast.Glyph, error) {
	start := p.pos
	kind := ast.GlyphKind("")
	switch {
	case p.lit(`\[`):
		kind = ast.GlyphOpenBracket
	case p.lit(`\]`):
		kind = ast.GlyphCloseBracket
	case p.lit(`\&`):
		kind = ast.GlyphAmpersand
	case p.lit(`\'`):
		kind = ast.GlyphApostrophe
	case p.lit("``"):
		kind = ast.GlyphLeftDoubleQuote
	case p.lit("''"):
		kind = ast.GlyphRightDoubleQuote
	case p.lit("`"):
		kind = ast.GlyphLeftSingleQuote
	case p.lit("'"):
		kind = ast.GlyphRightSingleQuote
	case p.lit("..."):
		kind = ast.GlyphEllipsis
	default:
		text, err := p.word()
		if err != nil {
			return nil, p.miss("text")
		}
		return &ast.Glyph{SpanInfo: p.span(start), Kind: ast.GlyphWord, Text: text}, nil
	}
	return &ast.Glyph{SpanInfo: p.span(start), Kind: kind}, nil
}

// spaceGlyph records an inter-element whitespace run.
func spaceGlyph(info ast.SpanInfo) *ast.Glyph {
	return &ast.Glyph{SpanInfo: info, Kind: ast.GlyphSpace}
}

// bareText parses glyphs with no markup at all. Hyperlink bodies and
// full-form reference bodies use it; the body is kept verbatim.
func (p *parser) bareText() (*ast.BareText, error) {
	p.skipSpace()
	start := p.pos
	first, err := p.glyph()
	if err != nil {
		return nil, err
	}
	glyphs := []*ast.Glyph{first}
	for {
		m := p.pos
		p.spaceRun()
		spaceEnd := p.pos
		g, err := p.glyph()
		if err != nil {
			p.pos = m
			break
		}
		if spaceEnd > m {
			glyphs = append(glyphs, spaceGlyph(p.spanBetween(m, spaceEnd)))
		}
		glyphs = append(glyphs, g)
	}
	return &ast.BareText{SpanInfo: p.span(start), Glyphs: glyphs}, nil
}

// hyperlink parses <a url>body</a>.
func (p *parser) hyperlink() (*ast.Hyperlink, error) {
	start := p.pos
	if !p.lit("<a") || p.eof() || !isSpace(p.src[p.pos]) {
		p.pos = start
		return nil, p.miss("hyperlink")
	}
	p.skipSpace()
	target, err := p.url()
	if err != nil {
		return nil, p.unexpected("url")
	}
	if err := p.need(">"); err != nil {
		return nil, err
	}
	body, err := p.bareText()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("text")
		}
		return nil, err
	}
	p.skipSpace()
	if !p.lit("</a>") {
		if p.eof() {
			return nil, p.unterminated("hyperlink")
		}
		return nil, p.unexpected(`"</a>"`)
	}
	return &ast.Hyperlink{SpanInfo: p.span(start), URL: target, Text: body}, nil
}

// refTarget parses a reference target: #tag, system.child, or a bare
// identifier, tried in that order.
func (p *parser) refTarget() (*ast.RefTarget, error) {
	p.skipSpace()
	start := p.pos
	if name, err := p.tag(); err == nil {
		return &ast.RefTarget{SpanInfo: p.span(start), Kind: ast.RefTag, Name: name}, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}
	if parent, name, err := p.fqid(); err == nil {
		return &ast.RefTarget{SpanInfo: p.span(start), Kind: ast.RefQualified, Parent: parent, Name: name}, nil
	}
	if name, err := p.ident(); err == nil {
		return &ast.RefTarget{SpanInfo: p.span(start), Kind: ast.RefIdent, Name: name}, nil
	}
	return nil, p.miss("reference target")
}

// reference parses <ref target/> or <ref target>body</ref>. The body
// of the full form is literal text, never re-derived from the target.
func (p *parser) reference() (*ast.Reference, error) {
	start := p.pos
	if !p.lit("<ref") || p.eof() || !isSpace(p.src[p.pos]) {
		p.pos = start
		return nil, p.miss("reference")
	}
	target, err := p.refTarget()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("reference target")
		}
		return nil, err
	}
	p.skipSpace()
	if p.lit("/>") {
		return &ast.Reference{SpanInfo: p.span(start), Target: target}, nil
	}
	if !p.lit(">") {
		return nil, p.unexpected(`"/>"`, `">"`)
	}
	body, err := p.bareText()
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("text")
		}
		return nil, err
	}
	p.skipSpace()
	if !p.lit("</ref>") {
		if p.eof() {
			return nil, p.unterminated("reference")
		}
		return nil, p.unexpected(`"</ref>"`)
	}
	return &ast.Reference{SpanInfo: p.span(start), Target: target, Body: body}, nil
}

// citeRef parses ~key. A twiddle in prose always starts a citation,
// so a missing key is fatal.
func (p *parser) citeRef() (*ast.CiteRef, error) {
	start := p.pos
	if p.eof() || p.src[p.pos] != '~' {
		return nil, p.miss("citation")
	}
	p.pos++
	if p.eof() || !isIdentStart(p.src[p.pos]) {
		return nil, p.malformed("citation")
	}
	key, err := p.ident()
	if err != nil {
		return nil, err
	}
	return &ast.CiteRef{SpanInfo: p.span(start), Key: key}, nil
}

// textElement parses one inline element of a paragraph.
func (p *parser) textElement() (ast.TextElement, error) {
	start := p.pos
	if el, err := p.reference(); err == nil {
		return el, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}
	if el, err := p.inlineMath(); err == nil {
		return el, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}
	if el, err := p.citeRef(); err == nil {
		return el, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}
	switch {
	case p.lit("<unicorn>"):
		return &ast.Highlight{SpanInfo: p.span(start), Open: true}, nil
	case p.lit("</unicorn>"):
		return &ast.Highlight{SpanInfo: p.span(start), Open: false}, nil
	case p.lit("<em>"):
		return &ast.Emphasis{SpanInfo: p.span(start), Open: true}, nil
	case p.lit("</em>"):
		return &ast.Emphasis{SpanInfo: p.span(start), Open: false}, nil
	}
	if el, err := p.hyperlink(); err == nil {
		return el, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}
	return p.glyph()
}

// paragraphRun parses a run of inline elements. In oneline mode any
// newline ends the run; otherwise a whitespace run with two or more
// newlines ends it and a run with at most one newline is ordinary
// spacing. Leading whitespace in oneline mode is horizontal only, so
// the run never starts on a later line than the caller expects.
func (p *parser) paragraphRun(oneline bool) (*ast.Paragraph, error) {
	if oneline {
		p.skipHSpace()
	} else {
		p.skipSpace()
	}
	start := p.pos
	first, err := p.textElement()
	if err != nil {
		return nil, err
	}
	elements := []ast.TextElement{first}
	for {
		m := p.pos
		newlines := p.spaceRun()
		if (oneline && newlines > 0) || newlines >= 2 {
			p.pos = m
			break
		}
		spaceEnd := p.pos
		el, err := p.textElement()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				p.pos = m
				break
			}
			return nil, err
		}
		if spaceEnd > m {
			elements = append(elements, spaceGlyph(p.spanBetween(m, spaceEnd)))
		}
		elements = append(elements, el)
	}
	return &ast.Paragraph{SpanInfo: p.span(start), Elements: elements}, nil
}

// unformatted parses a run of glyphs and hyperlinks with no other
// markup. Bibliography fields, quote bodies, and heading text use it.
func (p *parser) unformatted() (*ast.Unformatted, error) {
	p.skipSpace()
	start := p.pos
	first, err := p.unformattedElement()
	if err != nil {
		return nil, err
	}
	elements := []ast.TextElement{first}
	for {
		m := p.pos
		p.spaceRun()
		spaceEnd := p.pos
		el, err := p.unformattedElement()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				p.pos = m
				break
			}
			return nil, err
		}
		if spaceEnd > m {
			elements = append(elements, spaceGlyph(p.spanBetween(m, spaceEnd)))
		}
		elements = append(elements, el)
	}
	return &ast.Unformatted{SpanInfo: p.span(start), Elements: elements}, nil
}

func (p *parser) unformattedElement() (ast.TextElement, error) {
	if el, err := p.hyperlink(); err == nil {
		return el, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}
	return p.glyph()
}

// sublistItem parses 'x >>> math_row ;. A malformed variable is a
// plain no-match here: a bare apostrophe in prose is a right single
// quote, not a substitution.
func (p *parser) sublistItem() (*ast.SublistItem, error) {
	p.skipSpace()
	start := p.pos
	name, err := p.variable()
	if err != nil {
		var se *SyntaxError
		if errors.As(err, &se) && se.Kind == MalformedToken {
			p.pos = start
			return nil, p.miss("substitution")
		}
		return nil, err
	}
	if err := p.token(">>>"); err != nil {
		p.pos = start
		return nil, err
	}
	row, err := p.mathRow(true)
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("math item")
		}
		return nil, err
	}
	if err := p.need(";"); err != nil {
		return nil, err
	}
	return &ast.SublistItem{SpanInfo: p.span(start), Var: name, Replacement: row}, nil
}

// sublist parses one or more substitution items.
func (p *parser) sublist() (*ast.Sublist, error) {
	p.skipSpace()
	start := p.pos
	first, err := p.sublistItem()
	if err != nil {
		return nil, err
	}
	items := []*ast.SublistItem{first}
	for {
		m := p.pos
		item, err := p.sublistItem()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				p.pos = m
				break
			}
			return nil, err
		}
		items = append(items, item)
	}
	return &ast.Sublist{SpanInfo: p.span(start), Items: items}, nil
}

// textBlock parses one prose unit: a raw citation, a sublist, display
// math, or a paragraph, tried in that order.
func (p *parser) textBlock() (ast.TextBlock, error) {
	p.skipSpace()
	start := p.pos
	if p.keyword(`\Citation`) {
		if err := p.need("{"); err != nil {
			return nil, err
		}
		fields, err := p.bibFields("citation")
		if err != nil {
			return nil, err
		}
		if err := p.need("}"); err != nil {
			return nil, err
		}
		return &ast.Citation{SpanInfo: p.span(start), Fields: fields}, nil
	}
	if sl, err := p.sublist(); err == nil {
		return sl, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}
	p.pos = start
	p.skipSpace()
	if dm, err := p.displayMath(); err == nil {
		return dm, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}
	p.pos = start
	return p.paragraphRun(false)
}

// textBlocks parses prose units until the stop byte, which the caller
// consumes. construct names the surrounding block for unterminated
// input.
func (p *parser) textBlocks(stop byte, construct string) ([]ast.TextBlock, error) {
	var blocks []ast.TextBlock
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.unterminated(construct)
		}
		if p.src[p.pos] == stop {
			return blocks, nil
		}
		b, err := p.textBlock()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.unexpected("text")
			}
			return nil, err
		}
		blocks = append(blocks, b)
	}
}
