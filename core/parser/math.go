package parser

import (
	"errors"

	"github.com/FocuswithJustin/chalk/core/ast"
)

// mathPunct reports bytes captured verbatim after a display math
// terminator or a proof step terminator.
func mathPunct(c byte) bool {
	return c == '.' || c == ',' || c == '!' || c == '?'
}

// punctRun consumes the trailing punctuation after a terminator.
func (p *parser) punctRun() string {
	start := p.pos
	for p.pos < len(p.src) && mathPunct(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// mathRow parses one or more math items. With sep false a bare comma
// is not an item: directly inside big-operator braces commas split
// argument rows instead.
func (p *parser) mathRow(sep bool) (*ast.MathRow, error) {
	p.skipSpace()
	start := p.pos
	first, err := p.mathItem(sep)
	if err != nil {
		return nil, err
	}
	items := []ast.MathItem{first}
	for {
		m := p.pos
		item, err := p.mathItem(sep)
		if err != nil {
			if errors.Is(err, errNoMatch) {
				p.pos = m
				break
			}
			return nil, err
		}
		items = append(items, item)
	}
	return &ast.MathRow{SpanInfo: p.span(start), Items: items}, nil
}

// mathItem parses one math row item.
func (p *parser) mathItem(sep bool) (ast.MathItem, error) {
	p.skipSpace()
	start := p.pos
	if op, ok := p.bigOpKeyword(); ok {
		return p.bigOp(start, op)
	}
	if name, err := p.variable(); err == nil {
		return &ast.MathVar{SpanInfo: p.span(start), Name: name}, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}
	if name, err := p.ident(); err == nil {
		return &ast.MathIdent{SpanInfo: p.span(start), Name: name}, nil
	}
	if digits, err := p.integer(); err == nil {
		return &ast.MathNumber{SpanInfo: p.span(start), Digits: digits}, nil
	}
	if p.lit("(") {
		// Commas are plain separators again inside parentheses.
		row, err := p.mathRow(true)
		if err != nil {
			if errors.Is(err, errNoMatch) {
				p.pos = start
			}
			return nil, err
		}
		if err := p.token(")"); err != nil {
			p.pos = start
			return nil, err
		}
		return &ast.MathParen{SpanInfo: p.span(start), Row: row}, nil
	}
	if p.lit("...") {
		return &ast.MathEllipsis{SpanInfo: p.span(start)}, nil
	}
	if op, err := p.operator(); err == nil {
		return &ast.MathOp{SpanInfo: p.span(start), Op: op}, nil
	}
	if sep && p.lit(",") {
		return &ast.MathSeparator{SpanInfo: p.span(start)}, nil
	}
	return nil, p.miss("math item")
}

// bigOpKeyword consumes \sqrt or \pow.
func (p *parser) bigOpKeyword() (ast.BigOpKind, bool) {
	if p.keyword(`\sqrt`) {
		return ast.BigOpSqrt, true
	}
	if p.keyword(`\pow`) {
		return ast.BigOpPow, true
	}
	return "", false
}

// bigOp parses the braced argument list of a big operator. The keyword
// has already been consumed, so failures are fatal.
func (p *parser) bigOp(start int, kind ast.BigOpKind) (ast.MathItem, error) {
	if err := p.need("{"); err != nil {
		return nil, err
	}
	first, err := p.mathRow(false)
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("math item")
		}
		return nil, err
	}
	args := []*ast.MathRow{first}
	for {
		if err := p.token(","); err != nil {
			break
		}
		arg, err := p.mathRow(false)
		if err != nil {
			if errors.Is(err, errNoMatch) {
				// Trailing comma before the closing brace.
				break
			}
			return nil, err
		}
		args = append(args, arg)
	}
	if err := p.need("}"); err != nil {
		return nil, err
	}
	return &ast.MathBigOp{SpanInfo: p.span(start), Kind: kind, Args: args}, nil
}

// inlineMath parses $[ math_row ]$.
func (p *parser) inlineMath() (*ast.InlineMath, error) {
	start := p.pos
	if !p.lit("$[") {
		return nil, p.miss("inline math")
	}
	row, err := p.mathRow(true)
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("math item")
		}
		return nil, err
	}
	p.skipSpace()
	if !p.lit("]$") {
		if p.eof() {
			return nil, p.unterminated("inline math")
		}
		return nil, p.unexpected(`"]$"`)
	}
	return &ast.InlineMath{SpanInfo: p.span(start), Row: row}, nil
}

// displayMath parses $$ math_row $$ punct*.
func (p *parser) displayMath() (*ast.DisplayMath, error) {
	start := p.pos
	if !p.lit("$$") {
		return nil, p.miss("display math")
	}
	row, err := p.mathRow(true)
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, p.unexpected("math item")
		}
		return nil, err
	}
	p.skipSpace()
	if !p.lit("$$") {
		if p.eof() {
			return nil, p.unterminated("display math")
		}
		return nil, p.unexpected(`"$$"`)
	}
	trailing := p.punctRun()
	return &ast.DisplayMath{SpanInfo: p.span(start), Row: row, Trailing: trailing}, nil
}
