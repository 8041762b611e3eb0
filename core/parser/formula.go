package parser

import (
	"errors"

	"github.com/FocuswithJustin/chalk/core/ast"
)

// operator consumes the first formula operator whose spelling matches
// at the current position. ast.Operators is ordered so multi-character
// spellings are tried before the single-character spellings that
// prefix them.
func (p *parser) operator() (ast.Operator, error) {
	for _, op := range ast.Operators {
		if p.lit(string(op)) {
			return op, nil
		}
	}
	return "", p.miss("operator")
}

// formula parses prefix* primary (operator prefix* primary)*. The
// result is either a lone primary or a flat OperatorChain; precedence
// is not resolved here.
func (p *parser) formula() (ast.Formula, error) {
	p.skipSpace()
	start := p.pos
	first, err := p.chainOperand()
	if err != nil {
		return nil, err
	}
	operands := []*ast.ChainOperand{first}
	var ops []ast.Operator
	for {
		m := p.pos
		p.skipSpace()
		op, err := p.operator()
		if err != nil {
			p.pos = m
			break
		}
		operand, err := p.chainOperand()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				// The operator belongs to the surrounding
				// construct, not this chain.
				p.pos = m
				break
			}
			return nil, err
		}
		ops = append(ops, op)
		operands = append(operands, operand)
	}
	if len(ops) == 0 && len(first.Prefixes) == 0 {
		return first.Primary, nil
	}
	return &ast.OperatorChain{
		SpanInfo:  p.span(start),
		Operands:  operands,
		Operators: ops,
	}, nil
}

// chainOperand parses prefix* primary.
func (p *parser) chainOperand() (*ast.ChainOperand, error) {
	p.skipSpace()
	start := p.pos
	var prefixes []ast.Operator
	for {
		m := p.pos
		p.skipSpace()
		op, err := p.operator()
		if err != nil {
			p.pos = m
			break
		}
		prefixes = append(prefixes, op)
	}
	primary, err := p.formulaPrimary()
	if err != nil {
		return nil, err
	}
	return &ast.ChainOperand{
		SpanInfo: p.span(start),
		Prefixes: prefixes,
		Primary:  primary,
	}, nil
}

// formulaPrimary parses ident, 'var, or a parenthesized formula.
func (p *parser) formulaPrimary() (ast.Formula, error) {
	p.skipSpace()
	start := p.pos
	if p.lit("(") {
		inner, err := p.formula()
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
		return &ast.ParenFormula{SpanInfo: p.span(start), Inner: inner}, nil
	}
	if name, err := p.variable(); err == nil {
		return &ast.FormulaVar{SpanInfo: p.span(start), Name: name}, nil
	} else if !errors.Is(err, errNoMatch) {
		return nil, err
	}
	if name, err := p.ident(); err == nil {
		return &ast.FormulaIdent{SpanInfo: p.span(start), Name: name}, nil
	}
	return nil, p.miss("formula")
}
