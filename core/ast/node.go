package ast

import "fmt"

// Pos is a position in a source buffer.
type Pos struct {
	// Offset is the byte offset, starting at 0.
	Offset int `json:"offset"`

	// Line is the line number, starting at 1.
	Line int `json:"line"`

	// Column is the byte column within the line, starting at 1.
	Column int `json:"column"`
}

// String formats the position as "line:column".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open source range [Start, End).
type Span struct {
	// Start is the position of the first byte of the node.
	Start Pos `json:"start"`

	// End is the position one past the last byte of the node.
	End Pos `json:"end"`
}

// Node is implemented by every parse-tree node.
type Node interface {
	// Pos returns the position of the first byte of the node.
	Pos() Pos

	// End returns the position one past the last byte of the node.
	End() Pos
}

// SpanInfo carries the source span of a node. It is embedded by every
// concrete node type and satisfies the positional half of Node.
type SpanInfo struct {
	// Span is the source range covered by the node.
	Span Span `json:"span"`
}

// Pos returns the position of the first byte of the node.
func (s SpanInfo) Pos() Pos { return s.Span.Start }

// End returns the position one past the last byte of the node.
func (s SpanInfo) End() Pos { return s.Span.End }

// At wraps a raw span for embedding into a node literal.
func At(sp Span) SpanInfo { return SpanInfo{Span: sp} }
