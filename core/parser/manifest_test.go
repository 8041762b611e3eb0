package parser

import (
	"errors"
	"testing"
)

const testManifest = `logic: "Logic" {
    An introduction to formal logic.
    [
        prop: "Propositional Logic" {
            The propositional calculus.
            [
                prop_intro: "Introduction",
                prop_axioms: "Axioms",
            ]
        }
        pred: "Predicate Logic" {
            Quantifiers and predicates.
            [
                pred_intro: "Introduction",
            ]
        }
    ]
}`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest(testManifest)
	if err != nil {
		t.Fatalf("ParseManifest error: %v", err)
	}
	if len(m.Books) != 1 {
		t.Fatalf("len(Books) = %d, want 1", len(m.Books))
	}

	book := m.Books[0]
	if book.ID != "logic" {
		t.Errorf("ID = %q, want %q", book.ID, "logic")
	}
	if book.Name != "Logic" {
		t.Errorf("Name = %q, want %q", book.Name, "Logic")
	}
	if book.Tagline == nil || len(book.Tagline.Elements) == 0 {
		t.Fatal("book tagline is empty")
	}
	if len(book.Chapters) != 2 {
		t.Fatalf("len(Chapters) = %d, want 2", len(book.Chapters))
	}

	prop := book.Chapters[0]
	if prop.ID != "prop" || prop.Name != "Propositional Logic" {
		t.Errorf("chapter = %q %q, want prop, Propositional Logic", prop.ID, prop.Name)
	}
	if len(prop.Pages) != 2 {
		t.Fatalf("len(Pages) = %d, want 2", len(prop.Pages))
	}
	if prop.Pages[0].ID != "prop_intro" || prop.Pages[0].Name != "Introduction" {
		t.Errorf("page = %q %q, want prop_intro, Introduction", prop.Pages[0].ID, prop.Pages[0].Name)
	}

	pred := book.Chapters[1]
	if len(pred.Pages) != 1 {
		t.Errorf("len(pred.Pages) = %d, want 1", len(pred.Pages))
	}
}

func TestParseManifestMultipleBooks(t *testing.T) {
	src := `one: "First" {
    The first book.
    [
    ]
}
two: "Second" {
    The second book.
    [
    ]
}`
	m, err := ParseManifest(src)
	if err != nil {
		t.Fatalf("ParseManifest error: %v", err)
	}
	if len(m.Books) != 2 {
		t.Fatalf("len(Books) = %d, want 2", len(m.Books))
	}
	if m.Books[0].ID != "one" || m.Books[1].ID != "two" {
		t.Errorf("book ids = %q, %q, want one, two", m.Books[0].ID, m.Books[1].ID)
	}
}

func TestParseManifestTaglineStopsAtNewline(t *testing.T) {
	m, err := ParseManifest(testManifest)
	if err != nil {
		t.Fatalf("ParseManifest error: %v", err)
	}
	got := words(m.Books[0].Tagline.Elements)
	want := []string{"An", "introduction", "to", "formal", "logic."}
	if len(got) != len(want) {
		t.Fatalf("tagline words = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tagline words[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// A tagline is a single line; text on the next line is not part of
	// it, so the chapter list bracket is missing where expected.
	src := `b: "B" {
    First line
    second line
    [
    ]
}`
	_, err = ParseManifest(src)
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error = %T, want *SyntaxError", err)
	}
	if se.Kind != UnexpectedToken {
		t.Errorf("Kind = %q, want %q", se.Kind, UnexpectedToken)
	}
}

func TestParseManifestStringEscapes(t *testing.T) {
	src := `b: "A \"quoted\" name" {
    Tagline text.
    [
    ]
}`
	m, err := ParseManifest(src)
	if err != nil {
		t.Fatalf("ParseManifest error: %v", err)
	}
	want := `A "quoted" name`
	if m.Books[0].Name != want {
		t.Errorf("Name = %q, want %q", m.Books[0].Name, want)
	}
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ErrorKind
	}{
		{name: "empty", src: "", kind: UnexpectedToken},
		{name: "missing comma after page", src: `b: "B" {
    Tag.
    [
        c: "C" {
            Tag.
            [
                p: "P"
            ]
        }
    ]
}`, kind: UnexpectedToken},
		{name: "unterminated book", src: `b: "B" {
    Tag.
    [`, kind: UnterminatedConstruct},
		{name: "unterminated string", src: `b: "B`, kind: UnterminatedConstruct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest(tt.src)
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error = %T, want *SyntaxError", err)
			}
			if se.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", se.Kind, tt.kind)
			}
		})
	}
}
