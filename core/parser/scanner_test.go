package parser

import (
	"errors"
	"testing"
)

func TestIdent(t *testing.T) {
	tests := []struct {
		src  string
		want string
		rest int
	}{
		{src: "prop", want: "prop", rest: 4},
		{src: "prop_intro rest", want: "prop_intro", rest: 10},
		{src: "A1_b2", want: "A1_b2", rest: 5},
		{src: "x.y", want: "x", rest: 1},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p := newParser(tt.src)
			got, err := p.ident()
			if err != nil {
				t.Fatalf("ident(%q) error: %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("ident = %q, want %q", got, tt.want)
			}
			if p.pos != tt.rest {
				t.Errorf("pos = %d, want %d", p.pos, tt.rest)
			}
		})
	}
}

func TestIdentNoMatch(t *testing.T) {
	for _, src := range []string{"", "1abc", "_x", " lead"} {
		p := newParser(src)
		if _, err := p.ident(); !errors.Is(err, errNoMatch) {
			t.Errorf("ident(%q) error = %v, want no match", src, err)
		}
		if p.pos != 0 {
			t.Errorf("ident(%q) moved pos to %d", src, p.pos)
		}
	}
}

func TestWordStopsAtReservedBytes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "plain", want: "plain"},
		{src: "with-dash next", want: "with-dash"},
		{src: "it's", want: "it"},
		{src: "end.", want: "end."},
		{src: "a[b", want: "a"},
		{src: "x{y", want: "x"},
		{src: "p|q", want: "p"},
		{src: "stop;here", want: "stop"},
		{src: "tail$", want: "tail"},
		{src: "→", want: "→"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p := newParser(tt.src)
			got, err := p.word()
			if err != nil {
				t.Fatalf("word(%q) error: %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("word = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestURLStopsAtTagClose(t *testing.T) {
	p := newParser("https://example.org/a?q=1>rest")
	got, err := p.url()
	if err != nil {
		t.Fatalf("url error: %v", err)
	}
	if got != "https://example.org/a?q=1" {
		t.Errorf("url = %q", got)
	}
}

func TestStr(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: `"plain"`, want: "plain"},
		{src: `""`, want: ""},
		{src: `"a \"b\" c"`, want: `a "b" c`},
		{src: `"back\\slash"`, want: `back\slash`},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p := newParser(tt.src)
			got, err := p.str()
			if err != nil {
				t.Fatalf("str(%s) error: %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("str = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStrErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ErrorKind
	}{
		{name: "eof", src: `"open`, kind: UnterminatedConstruct},
		{name: "newline", src: "\"open\nclose\"", kind: UnterminatedConstruct},
		{name: "eof after backslash", src: `"open\`, kind: UnterminatedConstruct},
		{name: "bad escape", src: `"a\n"`, kind: MalformedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParser(tt.src)
			_, err := p.str()
			se, ok := err.(*SyntaxError)
			if !ok {
				t.Fatalf("str(%s) error = %T, want *SyntaxError", tt.src, err)
			}
			if se.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", se.Kind, tt.kind)
			}
		})
	}
}

func TestVariableAndTag(t *testing.T) {
	p := newParser("'x")
	if got, err := p.variable(); err != nil || got != "x" {
		t.Errorf("variable = %q, %v, want x", got, err)
	}

	p = newParser("#step_one")
	if got, err := p.tag(); err != nil || got != "step_one" {
		t.Errorf("tag = %q, %v, want step_one", got, err)
	}

	// Sigil matched without a following identifier.
	for _, src := range []string{"' x", "'1", "#", "# t"} {
		p = newParser(src)
		var err error
		if src[0] == '\'' {
			_, err = p.variable()
		} else {
			_, err = p.tag()
		}
		se, ok := err.(*SyntaxError)
		if !ok || se.Kind != MalformedToken {
			t.Errorf("(%q) error = %v, want malformed token", src, err)
		}
	}
}

func TestFqid(t *testing.T) {
	p := newParser("prop.and rest")
	parent, name, err := p.fqid()
	if err != nil {
		t.Fatalf("fqid error: %v", err)
	}
	if parent != "prop" || name != "and" {
		t.Errorf("fqid = %q.%q, want prop.and", parent, name)
	}

	// Whitespace around the dot and a missing second part both rewind
	// to the start.
	for _, src := range []string{"prop .and", "prop. and", "prop", "prop."} {
		p = newParser(src)
		if _, _, err := p.fqid(); !errors.Is(err, errNoMatch) {
			t.Errorf("fqid(%q) error = %v, want no match", src, err)
		}
		if p.pos != 0 {
			t.Errorf("fqid(%q) left pos at %d", src, p.pos)
		}
	}
}

func TestKeywordBoundary(t *testing.T) {
	p := newParser("name_extra")
	if p.keyword("name") {
		t.Error("keyword matched a prefix of a longer identifier")
	}
	if p.pos != 0 {
		t.Errorf("pos = %d after failed keyword", p.pos)
	}

	p = newParser("name =")
	if !p.keyword("name") {
		t.Error("keyword did not match at a word boundary")
	}
}

func TestPosLineColumn(t *testing.T) {
	p := newParser("ab\ncde\n\nf")
	tests := []struct {
		off    int
		line   int
		column int
	}{
		{off: 0, line: 1, column: 1},
		{off: 1, line: 1, column: 2},
		{off: 3, line: 2, column: 1},
		{off: 5, line: 2, column: 3},
		{off: 7, line: 3, column: 1},
		{off: 8, line: 4, column: 1},
	}

	for _, tt := range tests {
		pos := p.at(tt.off)
		if pos.Line != tt.line || pos.Column != tt.column {
			t.Errorf("at(%d) = %d:%d, want %d:%d",
				tt.off, pos.Line, pos.Column, tt.line, tt.column)
		}
	}
}

func TestFurthestFailureWins(t *testing.T) {
	// The reported failure is the furthest offset reached by any
	// alternative, not where the winning backtrack started.
	p := newParser("abc def")
	if _, _, err := p.fqid(); !errors.Is(err, errNoMatch) {
		t.Fatalf("fqid error = %v, want no match", err)
	}
	if p.pos != 0 {
		t.Fatalf("pos = %d after rewind, want 0", p.pos)
	}
	if p.furthest != 3 {
		t.Errorf("furthest = %d, want 3", p.furthest)
	}

	err := p.unexpected()
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("unexpected() = %T, want *SyntaxError", err)
	}
	if se.Pos.Offset != 3 {
		t.Errorf("Pos.Offset = %d, want 3", se.Pos.Offset)
	}
	if len(se.Expected) == 0 {
		t.Error("Expected is empty")
	}
}
