package parser

import (
	"testing"

	"github.com/FocuswithJustin/chalk/core/ast"
)

func parseTestParagraph(t *testing.T, src string) *ast.Paragraph {
	t.Helper()
	p := newParser(src)
	para, err := p.paragraphRun(false)
	if err != nil {
		t.Fatalf("paragraphRun(%q) error: %v", src, err)
	}
	return para
}

func words(elements []ast.TextElement) []string {
	var out []string
	for _, el := range elements {
		if g, ok := el.(*ast.Glyph); ok && g.Kind == ast.GlyphWord {
			out = append(out, g.Text)
		}
	}
	return out
}

func TestParagraphNewlineClassification(t *testing.T) {
	// One newline is ordinary spacing; two newlines end the
	// paragraph.
	tests := []struct {
		name      string
		src       string
		wantWords []string
	}{
		{
			name:      "single newline joins",
			src:       "first line\nsecond line",
			wantWords: []string{"first", "line", "second", "line"},
		},
		{
			name:      "blank line breaks",
			src:       "first paragraph\n\nsecond paragraph",
			wantWords: []string{"first", "paragraph"},
		},
		{
			name:      "newline with trailing spaces still joins",
			src:       "one  \n  two",
			wantWords: []string{"one", "two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			para := parseTestParagraph(t, tt.src)
			got := words(para.Elements)
			if len(got) != len(tt.wantWords) {
				t.Fatalf("words = %v, want %v", got, tt.wantWords)
			}
			for i := range got {
				if got[i] != tt.wantWords[i] {
					t.Errorf("words[%d] = %q, want %q", i, got[i], tt.wantWords[i])
				}
			}
		})
	}
}

func TestParagraphSpaceGlyphs(t *testing.T) {
	para := parseTestParagraph(t, "a b")
	if len(para.Elements) != 3 {
		t.Fatalf("len(Elements) = %d, want 3", len(para.Elements))
	}
	g, ok := para.Elements[1].(*ast.Glyph)
	if !ok || g.Kind != ast.GlyphSpace {
		t.Errorf("Elements[1] = %#v, want space glyph", para.Elements[1])
	}
}

func TestOnelineStopsAtNewline(t *testing.T) {
	p := newParser("only this line\nnot this one")
	para, err := p.paragraphRun(true)
	if err != nil {
		t.Fatalf("paragraphRun error: %v", err)
	}
	got := words(para.Elements)
	want := []string{"only", "this", "line"}
	if len(got) != len(want) {
		t.Fatalf("words = %v, want %v", got, want)
	}
}

func TestGlyphKinds(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.GlyphKind
	}{
		{src: `\[`, kind: ast.GlyphOpenBracket},
		{src: `\]`, kind: ast.GlyphCloseBracket},
		{src: `\&`, kind: ast.GlyphAmpersand},
		{src: `\'`, kind: ast.GlyphApostrophe},
		{src: "``", kind: ast.GlyphLeftDoubleQuote},
		{src: "''", kind: ast.GlyphRightDoubleQuote},
		{src: "`", kind: ast.GlyphLeftSingleQuote},
		{src: "'", kind: ast.GlyphRightSingleQuote},
		{src: "...", kind: ast.GlyphEllipsis},
		{src: "word", kind: ast.GlyphWord},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p := newParser(tt.src)
			g, err := p.glyph()
			if err != nil {
				t.Fatalf("glyph(%q) error: %v", tt.src, err)
			}
			if g.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", g.Kind, tt.kind)
			}
		})
	}
}

func TestReferenceVoidForm(t *testing.T) {
	tests := []struct {
		src    string
		kind   ast.RefTargetKind
		parent string
		name   string
	}{
		{src: "<ref #step_one/>", kind: ast.RefTag, name: "step_one"},
		{src: "<ref prop.and/>", kind: ast.RefQualified, parent: "prop", name: "and"},
		{src: "<ref prop/>", kind: ast.RefIdent, name: "prop"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p := newParser(tt.src)
			ref, err := p.reference()
			if err != nil {
				t.Fatalf("reference(%q) error: %v", tt.src, err)
			}
			if ref.Target.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", ref.Target.Kind, tt.kind)
			}
			if ref.Target.Parent != tt.parent {
				t.Errorf("Parent = %q, want %q", ref.Target.Parent, tt.parent)
			}
			if ref.Target.Name != tt.name {
				t.Errorf("Name = %q, want %q", ref.Target.Name, tt.name)
			}
			if ref.Body != nil {
				t.Errorf("Body = %v, want nil for void form", ref.Body)
			}
		})
	}
}

func TestReferenceFullFormBodyVerbatim(t *testing.T) {
	p := newParser("<ref prop.and>logical conjunction</ref>")
	ref, err := p.reference()
	if err != nil {
		t.Fatalf("reference error: %v", err)
	}
	if ref.Body == nil {
		t.Fatal("Body = nil, want bare text")
	}
	var got []string
	for _, g := range ref.Body.Glyphs {
		if g.Kind == ast.GlyphWord {
			got = append(got, g.Text)
		}
	}
	want := []string{"logical", "conjunction"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("body words = %v, want %v", got, want)
	}
}

func TestReferenceUnterminated(t *testing.T) {
	p := newParser("<ref prop.and>dangling body")
	_, err := p.reference()
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("error = %T, want *SyntaxError", err)
	}
	if se.Kind != UnterminatedConstruct {
		t.Errorf("Kind = %q, want %q", se.Kind, UnterminatedConstruct)
	}
}

func TestHyperlink(t *testing.T) {
	p := newParser("<a https://example.org/page>the example page</a>")
	link, err := p.hyperlink()
	if err != nil {
		t.Fatalf("hyperlink error: %v", err)
	}
	if link.URL != "https://example.org/page" {
		t.Errorf("URL = %q, want %q", link.URL, "https://example.org/page")
	}
	if len(link.Text.Glyphs) == 0 {
		t.Error("Text is empty")
	}
}

func TestCiteRef(t *testing.T) {
	p := newParser("~quine1951")
	c, err := p.citeRef()
	if err != nil {
		t.Fatalf("citeRef error: %v", err)
	}
	if c.Key != "quine1951" {
		t.Errorf("Key = %q, want %q", c.Key, "quine1951")
	}
}

func TestEmphasisAndHighlightMarkers(t *testing.T) {
	para := parseTestParagraph(t, "<em>stressed</em> and <unicorn>marked</unicorn>")
	var opens, closes int
	for _, el := range para.Elements {
		switch m := el.(type) {
		case *ast.Emphasis:
			if m.Open {
				opens++
			} else {
				closes++
			}
		case *ast.Highlight:
			if m.Open {
				opens++
			} else {
				closes++
			}
		}
	}
	if opens != 2 || closes != 2 {
		t.Errorf("markers = %d open, %d close, want 2, 2", opens, closes)
	}
}

func TestInlineMathInParagraph(t *testing.T) {
	para := parseTestParagraph(t, "consider $['x + 'y]$ here")
	var found bool
	for _, el := range para.Elements {
		if _, ok := el.(*ast.InlineMath); ok {
			found = true
		}
	}
	if !found {
		t.Error("no InlineMath element in paragraph")
	}
}

func TestSublist(t *testing.T) {
	p := newParser("'x >>> 'a + 'b;\n'y >>> 'c;")
	sl, err := p.sublist()
	if err != nil {
		t.Fatalf("sublist error: %v", err)
	}
	if len(sl.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(sl.Items))
	}
	if sl.Items[0].Var != "x" {
		t.Errorf("Items[0].Var = %q, want %q", sl.Items[0].Var, "x")
	}
	if len(sl.Items[0].Replacement.Items) != 3 {
		t.Errorf("len(Replacement.Items) = %d, want 3", len(sl.Items[0].Replacement.Items))
	}
	if sl.Items[1].Var != "y" {
		t.Errorf("Items[1].Var = %q, want %q", sl.Items[1].Var, "y")
	}
}

func TestTextBlockChoice(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "citation", src: `\Citation { title = On Denoting; }`, want: "citation"},
		{name: "sublist", src: "'x >>> 'a;", want: "sublist"},
		{name: "display math", src: "$$'x$$", want: "display"},
		{name: "paragraph", src: "plain prose here", want: "paragraph"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParser(tt.src)
			b, err := p.textBlock()
			if err != nil {
				t.Fatalf("textBlock(%q) error: %v", tt.src, err)
			}
			var got string
			switch b.(type) {
			case *ast.Citation:
				got = "citation"
			case *ast.Sublist:
				got = "sublist"
			case *ast.DisplayMath:
				got = "display"
			case *ast.Paragraph:
				got = "paragraph"
			}
			if got != tt.want {
				t.Errorf("textBlock(%q) = %T, want %s", tt.src, b, tt.want)
			}
		})
	}
}

func TestApostropheIsQuoteInProse(t *testing.T) {
	// A bare apostrophe in prose is a right single quote, not the
	// start of a substitution.
	para := parseTestParagraph(t, "it 's fine")
	var quote bool
	for _, el := range para.Elements {
		if g, ok := el.(*ast.Glyph); ok && g.Kind == ast.GlyphRightSingleQuote {
			quote = true
		}
	}
	if !quote {
		t.Error("no right single quote glyph in paragraph")
	}
}

func TestUnformattedRejectsMarkup(t *testing.T) {
	// Unformatted runs take glyphs and hyperlinks only; a reference
	// tag stops the run.
	p := newParser("words then <ref x/>")
	u, err := p.unformatted()
	if err != nil {
		t.Fatalf("unformatted error: %v", err)
	}
	for _, el := range u.Elements {
		if _, ok := el.(*ast.Reference); ok {
			t.Error("reference element in unformatted run")
		}
	}
	p.skipSpace()
	if !p.lit("<ref") {
		t.Error("unformatted did not stop before the reference")
	}
}
