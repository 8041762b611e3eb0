package parser

import (
	"testing"

	"github.com/FocuswithJustin/chalk/core/ast"
)

// parseTestFormula runs the formula engine against a standalone
// buffer, requiring the whole input to be consumed.
func parseTestFormula(t *testing.T, src string) ast.Formula {
	t.Helper()
	p := newParser(src)
	f, err := p.formula()
	if err != nil {
		t.Fatalf("formula(%q) error: %v", src, err)
	}
	p.skipSpace()
	if !p.eof() {
		t.Fatalf("formula(%q) stopped at offset %d", src, p.pos)
	}
	return f
}

func TestFormulaSinglePrimary(t *testing.T) {
	tests := []struct {
		src  string
		want string // "ident" or "var"
		name string
	}{
		{src: "x", want: "ident", name: "x"},
		{src: "implies", want: "ident", name: "implies"},
		{src: "'phi", want: "var", name: "phi"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			f := parseTestFormula(t, tt.src)
			switch tt.want {
			case "ident":
				id, ok := f.(*ast.FormulaIdent)
				if !ok {
					t.Fatalf("formula(%q) = %T, want *ast.FormulaIdent", tt.src, f)
				}
				if id.Name != tt.name {
					t.Errorf("Name = %q, want %q", id.Name, tt.name)
				}
			case "var":
				v, ok := f.(*ast.FormulaVar)
				if !ok {
					t.Fatalf("formula(%q) = %T, want *ast.FormulaVar", tt.src, f)
				}
				if v.Name != tt.name {
					t.Errorf("Name = %q, want %q", v.Name, tt.name)
				}
			}
		})
	}
}

func TestFormulaOperatorOrdering(t *testing.T) {
	// Multi-character operators must win over the single-character
	// operators that prefix them.
	tests := []struct {
		src  string
		want ast.Operator
	}{
		{src: "'a <-> 'b", want: ast.OpEquivalence},
		{src: "'a -> 'b", want: ast.OpImplies},
		{src: "'a < 'b", want: ast.OpLessThan},
		{src: "'a - 'b", want: ast.OpMinus},
		{src: "'a > 'b", want: ast.OpGreaterThan},
		{src: "'a & 'b", want: ast.OpAnd},
		{src: "'a | 'b", want: ast.OpOr},
		{src: "'a + 'b", want: ast.OpPlus},
		{src: "'a * 'b", want: ast.OpAsterisk},
		{src: "'a / 'b", want: ast.OpSlash},
		{src: "'a = 'b", want: ast.OpEqual},
		{src: "'a ~ 'b", want: ast.OpTwiddle},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			f := parseTestFormula(t, tt.src)
			chain, ok := f.(*ast.OperatorChain)
			if !ok {
				t.Fatalf("formula(%q) = %T, want *ast.OperatorChain", tt.src, f)
			}
			if len(chain.Operators) != 1 {
				t.Fatalf("len(Operators) = %d, want 1", len(chain.Operators))
			}
			if chain.Operators[0] != tt.want {
				t.Errorf("Operators[0] = %q, want %q", chain.Operators[0], tt.want)
			}
			if len(chain.Operands) != 2 {
				t.Errorf("len(Operands) = %d, want 2", len(chain.Operands))
			}
		})
	}
}

func TestFormulaFlatChain(t *testing.T) {
	// No precedence at this layer: a mixed chain stays flat in
	// source order.
	f := parseTestFormula(t, "'a & 'b | 'c -> 'd")
	chain, ok := f.(*ast.OperatorChain)
	if !ok {
		t.Fatalf("formula = %T, want *ast.OperatorChain", f)
	}
	wantOps := []ast.Operator{ast.OpAnd, ast.OpOr, ast.OpImplies}
	if len(chain.Operators) != len(wantOps) {
		t.Fatalf("len(Operators) = %d, want %d", len(chain.Operators), len(wantOps))
	}
	for i, op := range wantOps {
		if chain.Operators[i] != op {
			t.Errorf("Operators[%d] = %q, want %q", i, chain.Operators[i], op)
		}
	}
	if len(chain.Operands) != len(wantOps)+1 {
		t.Errorf("len(Operands) = %d, want %d", len(chain.Operands), len(wantOps)+1)
	}
}

func TestFormulaPrefixes(t *testing.T) {
	f := parseTestFormula(t, "!'a -> !!'b")
	chain, ok := f.(*ast.OperatorChain)
	if !ok {
		t.Fatalf("formula = %T, want *ast.OperatorChain", f)
	}
	if len(chain.Operands) != 2 {
		t.Fatalf("len(Operands) = %d, want 2", len(chain.Operands))
	}
	if got := chain.Operands[0].Prefixes; len(got) != 1 || got[0] != ast.OpNegation {
		t.Errorf("Operands[0].Prefixes = %v, want [!]", got)
	}
	if got := chain.Operands[1].Prefixes; len(got) != 2 {
		t.Errorf("Operands[1].Prefixes = %v, want [! !]", got)
	}
}

func TestFormulaLonePrefix(t *testing.T) {
	// A prefixed primary with no infix operator is still a chain,
	// with a single operand.
	f := parseTestFormula(t, "!'a")
	chain, ok := f.(*ast.OperatorChain)
	if !ok {
		t.Fatalf("formula = %T, want *ast.OperatorChain", f)
	}
	if len(chain.Operands) != 1 || len(chain.Operators) != 0 {
		t.Errorf("chain = %d operands, %d operators, want 1, 0",
			len(chain.Operands), len(chain.Operators))
	}
}

func TestFormulaParentheses(t *testing.T) {
	f := parseTestFormula(t, "('a -> 'b) -> 'c")
	chain, ok := f.(*ast.OperatorChain)
	if !ok {
		t.Fatalf("formula = %T, want *ast.OperatorChain", f)
	}
	paren, ok := chain.Operands[0].Primary.(*ast.ParenFormula)
	if !ok {
		t.Fatalf("Operands[0].Primary = %T, want *ast.ParenFormula", chain.Operands[0].Primary)
	}
	inner, ok := paren.Inner.(*ast.OperatorChain)
	if !ok {
		t.Fatalf("Inner = %T, want *ast.OperatorChain", paren.Inner)
	}
	if inner.Operators[0] != ast.OpImplies {
		t.Errorf("inner operator = %q, want %q", inner.Operators[0], ast.OpImplies)
	}
}

func TestFormulaTrailingOperatorRewind(t *testing.T) {
	// An infix operator with no operand after it belongs to the
	// surrounding construct: the chain ends before it.
	p := newParser("'a -> ;")
	f, err := p.formula()
	if err != nil {
		t.Fatalf("formula error: %v", err)
	}
	if _, ok := f.(*ast.FormulaVar); !ok {
		t.Fatalf("formula = %T, want *ast.FormulaVar", f)
	}
	p.skipSpace()
	if !p.lit("->") {
		t.Errorf("input not rewound to the dangling operator")
	}
}

func TestFormulaMalformedVariable(t *testing.T) {
	p := newParser("' ")
	_, err := p.formula()
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("formula error = %T, want *SyntaxError", err)
	}
	if se.Kind != MalformedToken {
		t.Errorf("Kind = %q, want %q", se.Kind, MalformedToken)
	}
}

func TestFormulaSpans(t *testing.T) {
	f := parseTestFormula(t, "'a -> 'b")
	chain := f.(*ast.OperatorChain)
	if got := chain.Pos(); got.Offset != 0 || got.Line != 1 || got.Column != 1 {
		t.Errorf("Pos() = %+v, want offset 0 at 1:1", got)
	}
	if got := chain.End(); got.Offset != 8 {
		t.Errorf("End().Offset = %d, want 8", got.Offset)
	}
}
