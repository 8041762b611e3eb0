package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/FocuswithJustin/chalk/core/ast"
	cerrors "github.com/FocuswithJustin/chalk/core/errors"
)

// errNoMatch reports that an alternative did not match at the current
// position. It is internal to the package: callers of the exported
// entry points only ever see *SyntaxError. A no-match failure is
// recoverable (the parser rewinds and tries the next alternative); a
// *SyntaxError aborts the parse.
var errNoMatch = errors.New("no match")

// ErrorKind classifies a syntax error.
type ErrorKind string

// Syntax error kinds.
const (
	// UnexpectedToken reports input that fits no alternative at the
	// furthest point the parse reached.
	UnexpectedToken ErrorKind = "unexpected token"

	// UnterminatedConstruct reports a delimited construct that ran
	// into end of input before its closing delimiter.
	UnterminatedConstruct ErrorKind = "unterminated construct"

	// MalformedToken reports a token that started unambiguously but
	// was not completed, such as an apostrophe with no identifier.
	MalformedToken ErrorKind = "malformed token"
)

// SyntaxError is the single error type produced by the parsers. For
// UnexpectedToken the position and expected set describe the furthest
// failure; for the other kinds Construct names what was being parsed.
type SyntaxError struct {
	// Kind classifies the failure.
	Kind ErrorKind `json:"kind"`

	// Pos is the source position of the failure.
	Pos ast.Pos `json:"pos"`

	// Expected lists the token names that would have allowed the
	// parse to continue. Only set for UnexpectedToken.
	Expected []string `json:"expected,omitempty"`

	// Construct names the construct for UnterminatedConstruct and
	// MalformedToken.
	Construct string `json:"construct,omitempty"`
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnterminatedConstruct:
		return fmt.Sprintf("%s: unterminated %s", e.Pos, e.Construct)
	case MalformedToken:
		return fmt.Sprintf("%s: malformed %s", e.Pos, e.Construct)
	default:
		if len(e.Expected) > 0 {
			return fmt.Sprintf("%s: unexpected token, expected %s", e.Pos, strings.Join(e.Expected, " or "))
		}
		return fmt.Sprintf("%s: unexpected token", e.Pos)
	}
}

func (e *SyntaxError) Unwrap() error {
	return cerrors.ErrSyntax
}
