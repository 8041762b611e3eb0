// Package parser implements recursive-descent parsers for the three
// chalk source dialects: document pages, library manifests, and
// bibliographies.
//
// Alternatives are tried in a fixed order and a failed alternative
// rewinds the input to exactly where it started, so earlier
// alternatives shadow later ones. The scanner tracks the furthest
// offset any alternative failed at, together with the token names
// expected there; a fatal error reports that furthest point rather
// than the position of the last backtrack.
package parser

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/chalk/core/ast"
)

type parser struct {
	src string
	pos int

	// lineStarts holds the byte offset of the first byte of each
	// line, for offset to line:column conversion.
	lineStarts []int

	// furthest and expected form the longest-fail diagnostic: the
	// largest offset any primitive failed at and the token names
	// that were expected there.
	furthest int
	expected []string
}

func newParser(src string) *parser {
	lineStarts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &parser{src: src, lineStarts: lineStarts, furthest: -1}
}

// at converts a byte offset into a line:column position.
func (p *parser) at(off int) ast.Pos {
	i := sort.SearchInts(p.lineStarts, off+1) - 1
	return ast.Pos{Offset: off, Line: i + 1, Column: off - p.lineStarts[i] + 1}
}

// span builds the span info from a start offset to the current
// position.
func (p *parser) span(start int) ast.SpanInfo {
	return ast.At(ast.Span{Start: p.at(start), End: p.at(p.pos)})
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// reservedWordChar reports bytes a bare word glyph may not contain.
func reservedWordChar(c byte) bool {
	switch c {
	case '\\', '{', '}', '[', ']', '<', '>', '$', '#', '&', '~', '`', '\'', '"', '|', ';':
		return true
	}
	return false
}

// skipSpace consumes whitespace. There is no comment syntax.
func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// spaceRun consumes whitespace and returns the number of newlines in
// the run. Paragraph parsing uses the count to distinguish
// inter-element spacing (at most one newline) from a paragraph break.
func (p *parser) spaceRun() int {
	newlines := 0
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		if p.src[p.pos] == '\n' {
			newlines++
		}
		p.pos++
	}
	return newlines
}

// lit consumes the exact string s at the current position, with no
// whitespace skipping.
func (p *parser) lit(s string) bool {
	if strings.HasPrefix(p.src[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

// keyword consumes s only when it is not immediately followed by an
// identifier character, so a keyword never matches a prefix of a
// longer name.
func (p *parser) keyword(s string) bool {
	if !strings.HasPrefix(p.src[p.pos:], s) {
		return false
	}
	end := p.pos + len(s)
	if end < len(p.src) && isIdentChar(p.src[end]) {
		return false
	}
	p.pos = end
	return true
}

// miss records a match failure at the current position under the given
// expected-token names and returns errNoMatch.
func (p *parser) miss(names ...string) error {
	if p.pos > p.furthest {
		p.furthest = p.pos
		p.expected = append(p.expected[:0], names...)
	} else if p.pos == p.furthest {
		for _, n := range names {
			if !slices.Contains(p.expected, n) {
				p.expected = append(p.expected, n)
			}
		}
	}
	return errNoMatch
}

// token skips whitespace and consumes the literal s, recording s as
// expected on failure.
func (p *parser) token(s string) error {
	p.skipSpace()
	if p.lit(s) {
		return nil
	}
	return p.miss(strconv.Quote(s))
}

// unexpected converts the furthest recorded failure into a fatal
// error. Extra names are recorded at the current position first, so a
// commit point can name what it wanted.
func (p *parser) unexpected(names ...string) error {
	if len(names) > 0 {
		_ = p.miss(names...)
	}
	off := p.furthest
	if off < 0 {
		off = p.pos
	}
	return &SyntaxError{
		Kind:     UnexpectedToken,
		Pos:      p.at(off),
		Expected: slices.Clone(p.expected),
	}
}

// need is the committed form of token: failure is fatal.
func (p *parser) need(s string) error {
	if err := p.token(s); err != nil {
		return p.unexpected()
	}
	return nil
}

// unterminated reports end of input inside the named construct.
func (p *parser) unterminated(construct string) error {
	return &SyntaxError{
		Kind:      UnterminatedConstruct,
		Pos:       p.at(p.pos),
		Construct: construct,
	}
}

// malformed reports a token that started but was not completed.
func (p *parser) malformed(construct string) error {
	return &SyntaxError{
		Kind:      MalformedToken,
		Pos:       p.at(p.pos),
		Construct: construct,
	}
}

// Atomic primitives. None of these skip leading whitespace: the caller
// decides the whitespace discipline.

// ident consumes [A-Za-z][A-Za-z0-9_]*.
func (p *parser) ident() (string, error) {
	if p.eof() || !isIdentStart(p.src[p.pos]) {
		return "", p.miss("identifier")
	}
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

// integer consumes [0-9]+.
func (p *parser) integer() (string, error) {
	if p.eof() || !isDigit(p.src[p.pos]) {
		return "", p.miss("integer")
	}
	start := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

// word consumes a run of printable bytes excluding whitespace and the
// reserved punctuation set.
func (p *parser) word() (string, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if isSpace(c) || reservedWordChar(c) {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", p.miss("word")
	}
	return p.src[start:p.pos], nil
}

// url consumes a run of non-whitespace bytes excluding '>', which
// closes the surrounding hyperlink tag.
func (p *parser) url() (string, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if isSpace(c) || c == '>' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", p.miss("url")
	}
	return p.src[start:p.pos], nil
}

// str consumes a double-quoted string and returns its unescaped
// contents. Only \" and \\ escapes are recognized; a newline or end of
// input before the closing quote is fatal.
func (p *parser) str() (string, error) {
	if p.eof() || p.src[p.pos] != '"' {
		return "", p.miss("string")
	}
	p.pos++
	var b strings.Builder
	for {
		if p.eof() || p.src[p.pos] == '\n' {
			return "", p.unterminated("string")
		}
		c := p.src[p.pos]
		switch c {
		case '"':
			p.pos++
			return b.String(), nil
		case '\\':
			p.pos++
			if p.eof() {
				return "", p.unterminated("string")
			}
			switch p.src[p.pos] {
			case '"', '\\':
				b.WriteByte(p.src[p.pos])
				p.pos++
			default:
				return "", p.malformed("string escape")
			}
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
}

// variable consumes 'ident. Once the apostrophe has matched a missing
// identifier is fatal.
func (p *parser) variable() (string, error) {
	if p.eof() || p.src[p.pos] != '\'' {
		return "", p.miss("variable")
	}
	p.pos++
	if p.eof() || !isIdentStart(p.src[p.pos]) {
		return "", p.malformed("variable")
	}
	return p.ident()
}

// tag consumes #ident. Once the hash has matched a missing identifier
// is fatal.
func (p *parser) tag() (string, error) {
	if p.eof() || p.src[p.pos] != '#' {
		return "", p.miss("tag")
	}
	p.pos++
	if p.eof() || !isIdentStart(p.src[p.pos]) {
		return "", p.malformed("tag")
	}
	return p.ident()
}

// fqid consumes ident.ident with no internal whitespace.
func (p *parser) fqid() (parent, name string, err error) {
	m := p.pos
	parent, err = p.ident()
	if err != nil {
		return "", "", err
	}
	if !p.lit(".") {
		err = p.miss(`"."`)
		p.pos = m
		return "", "", err
	}
	name, err = p.ident()
	if err != nil {
		p.pos = m
		return "", "", err
	}
	return parent, name, nil
}
