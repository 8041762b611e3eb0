package ast

// Operator is a formula operator, identified by its source spelling.
type Operator string

// Formula operators in the order the parser tries them. The order is
// load-bearing: multi-character spellings must come before the
// single-character spellings they would otherwise be shadowed by
// (Equivalence before Implies before Minus and LessThan).
const (
	// OpNegation is logical negation "!".
	OpNegation Operator = "!"

	// OpEquivalence is logical equivalence "<->".
	OpEquivalence Operator = "<->"

	// OpImplies is implication "->".
	OpImplies Operator = "->"

	// OpAnd is conjunction "&".
	OpAnd Operator = "&"

	// OpOr is disjunction "|".
	OpOr Operator = "|"

	// OpPlus is addition "+".
	OpPlus Operator = "+"

	// OpMinus is subtraction "-".
	OpMinus Operator = "-"

	// OpAsterisk is multiplication "*".
	OpAsterisk Operator = "*"

	// OpSlash is division "/".
	OpSlash Operator = "/"

	// OpLessThan is the relation "<".
	OpLessThan Operator = "<"

	// OpEqual is the relation "=".
	OpEqual Operator = "="

	// OpGreaterThan is the relation ">".
	OpGreaterThan Operator = ">"

	// OpTwiddle is the relation "~".
	OpTwiddle Operator = "~"
)

// Operators lists every formula operator in parse priority order.
var Operators = []Operator{
	OpNegation,
	OpEquivalence,
	OpImplies,
	OpAnd,
	OpOr,
	OpPlus,
	OpMinus,
	OpAsterisk,
	OpSlash,
	OpLessThan,
	OpEqual,
	OpGreaterThan,
	OpTwiddle,
}

// Formula is a parsed formula. Operator precedence and associativity
// are undefined at this layer: a formula is either a single primary or
// a flat left-to-right OperatorChain that a later semantic pass
// resolves. Parentheses are the only grouping recognized by the
// parser.
type Formula interface {
	Node
	formulaNode()
}

// FormulaIdent is a bare identifier operand (a symbol reference).
type FormulaIdent struct {
	SpanInfo

	// Name is the identifier as written.
	Name string `json:"name"`
}

func (*FormulaIdent) formulaNode() {}

// FormulaVar is a variable operand, written 'name.
type FormulaVar struct {
	SpanInfo

	// Name is the variable identifier without the leading apostrophe.
	Name string `json:"name"`
}

func (*FormulaVar) formulaNode() {}

// ParenFormula is a parenthesized sub-formula.
type ParenFormula struct {
	SpanInfo

	// Inner is the formula between the parentheses.
	Inner Formula `json:"inner"`
}

func (*ParenFormula) formulaNode() {}

// ChainOperand is one operand of an OperatorChain: a primary preceded
// by zero or more prefix operators, preserved in source order.
type ChainOperand struct {
	SpanInfo

	// Prefixes are the prefix operators applied to the primary,
	// outermost first.
	Prefixes []Operator `json:"prefixes,omitempty"`

	// Primary is the operand itself.
	Primary Formula `json:"primary"`
}

// OperatorChain is a flat operand/operator sequence. Operands has one
// more element than Operators; Operators[i] sits between Operands[i]
// and Operands[i+1] in the source.
type OperatorChain struct {
	SpanInfo

	// Operands are the chain operands in source order.
	Operands []*ChainOperand `json:"operands"`

	// Operators are the infix operators in source order.
	Operators []Operator `json:"operators"`
}

func (*OperatorChain) formulaNode() {}
