package ast

import "testing"

func TestPosString(t *testing.T) {
	pos := Pos{Offset: 17, Line: 3, Column: 5}
	if got := pos.String(); got != "3:5" {
		t.Errorf("String() = %q, want %q", got, "3:5")
	}
}

func TestWalkOrder(t *testing.T) {
	doc := &Document{
		Blocks: []Block{
			&System{ID: "a", Entries: []Entry{
				&NameEntry{Value: "A"},
			}},
			&ProseBlock{Block: &Paragraph{Elements: []TextElement{
				&Glyph{Kind: GlyphWord, Text: "hi"},
			}}},
		},
	}

	var visited []string
	Walk(doc, func(n Node) bool {
		switch t := n.(type) {
		case *Document:
			visited = append(visited, "document")
		case *System:
			visited = append(visited, "system:"+t.ID)
		case *NameEntry:
			visited = append(visited, "name")
		case *ProseBlock:
			visited = append(visited, "prose")
		case *Paragraph:
			visited = append(visited, "paragraph")
		case *Glyph:
			visited = append(visited, "glyph:"+t.Text)
		}
		return true
	})

	want := []string{"document", "system:a", "name", "prose", "paragraph", "glyph:hi"}
	if len(visited) != len(want) {
		t.Fatalf("visited = %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}

func TestWalkPrunesSubtree(t *testing.T) {
	doc := &Document{
		Blocks: []Block{
			&System{ID: "skipped", Entries: []Entry{
				&NameEntry{Value: "A"},
			}},
			&System{ID: "kept", Entries: []Entry{
				&NameEntry{Value: "B"},
			}},
		},
	}

	var names int
	Walk(doc, func(n Node) bool {
		switch t := n.(type) {
		case *System:
			// Pruning one subtree must not skip its siblings.
			return t.ID != "skipped"
		case *NameEntry:
			names++
		}
		return true
	})

	if names != 1 {
		t.Errorf("visited %d name entries, want 1", names)
	}
}

func TestWalkNilOptionalFields(t *testing.T) {
	// Optional pointer fields are nil for the short forms; Walk must
	// not treat them as visitable nodes.
	doc := &Document{
		Blocks: []Block{
			&Table{Body: &TableSection{Rows: []*TableRow{
				{Cells: []*Paragraph{{}}},
			}}},
			&Quote{Value: &Unformatted{}},
			&ProseBlock{Block: &Paragraph{Elements: []TextElement{
				&Reference{Target: &RefTarget{Kind: RefIdent, Name: "x"}},
			}}},
		},
	}

	Walk(doc, func(n Node) bool {
		if n == nil {
			t.Fatal("visitor called with nil node")
		}
		return true
	})
}
