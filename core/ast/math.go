package ast

// MathRow is a run of typeset math items, used by inline and display
// math spans and by sublist replacements. Unlike Formula it carries no
// operator-chain structure: operators appear as plain items.
type MathRow struct {
	SpanInfo

	// Items are the row items in source order.
	Items []MathItem `json:"items"`
}

// MathItem is one item of a MathRow.
type MathItem interface {
	Node
	mathItemNode()
}

// MathVar is a variable item, written 'name.
type MathVar struct {
	SpanInfo

	// Name is the variable identifier without the leading apostrophe.
	Name string `json:"name"`
}

func (*MathVar) mathItemNode() {}

// MathIdent is a symbol identifier item.
type MathIdent struct {
	SpanInfo

	// Name is the identifier as written.
	Name string `json:"name"`
}

func (*MathIdent) mathItemNode() {}

// MathNumber is an integer literal item. The digits are kept verbatim
// so leading zeros survive re-serialization.
type MathNumber struct {
	SpanInfo

	// Digits is the literal as written.
	Digits string `json:"digits"`
}

func (*MathNumber) mathItemNode() {}

// MathParen is a parenthesized sub-row.
type MathParen struct {
	SpanInfo

	// Row is the row between the parentheses.
	Row *MathRow `json:"row"`
}

func (*MathParen) mathItemNode() {}

// MathOp is an operator rendered inside a math row. It has no
// operand structure; typesetting decides its display form.
type MathOp struct {
	SpanInfo

	// Op is the operator spelling.
	Op Operator `json:"op"`
}

func (*MathOp) mathItemNode() {}

// BigOpKind identifies a big-operator form.
type BigOpKind string

// Big-operator kinds.
const (
	// BigOpSqrt is the \sqrt{...} form.
	BigOpSqrt BigOpKind = "sqrt"

	// BigOpPow is the \pow{...} form.
	BigOpPow BigOpKind = "pow"
)

// MathBigOp is a big-operator application with one or more
// comma-separated argument rows.
type MathBigOp struct {
	SpanInfo

	// Kind selects the operator.
	Kind BigOpKind `json:"kind"`

	// Args are the argument rows in source order, at least one.
	Args []*MathRow `json:"args"`
}

func (*MathBigOp) mathItemNode() {}

// MathEllipsis is the row punctuation "...".
type MathEllipsis struct {
	SpanInfo
}

func (*MathEllipsis) mathItemNode() {}

// MathSeparator is the row punctuation ",".
type MathSeparator struct {
	SpanInfo
}

func (*MathSeparator) mathItemNode() {}
