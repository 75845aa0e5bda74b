package docedit

import (
	"testing"

	"github.com/inkwell/mathcore/internal/doctree"
)

func TestInsertAtPosition(t *testing.T) {
	tree := newTreeWithRow(sym("a"), sym("b"))
	pos := doctree.NewPosition(nil, 1)
	edits, after := InsertAtPosition(pos, []doctree.Node{sym("x"), sym("y")})

	if !edits.Apply(tree) {
		t.Fatal("apply failed")
	}
	row, _ := tree.RowAt(nil)
	if got, want := row.Print(), `(row "a" "x" "y" "b")`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if want := doctree.NewPosition(nil, 3); !after.Equal(want) {
		t.Fatalf("resulting position = %+v, want %+v", after, want)
	}
}

func TestRemoveRange(t *testing.T) {
	row := doctree.NewRow(sym("a"), sym("x"), sym("y"), sym("b"))
	tree := doctree.NewTree()
	tree.ReplaceRow(nil, row)

	r := doctree.NewRange(nil, 1, 3)
	edits, collapsed := RemoveRange(row, r)
	if !edits.Apply(tree) {
		t.Fatal("apply failed")
	}
	got, _ := tree.RowAt(nil)
	if want := `(row "a" "b")`; got.Print() != want {
		t.Fatalf("got %q, want %q", got.Print(), want)
	}
	if want := doctree.NewPosition(nil, 1); !collapsed.Equal(want) {
		t.Fatalf("collapsed position = %+v, want %+v", collapsed, want)
	}
}

func TestRemoveRange_EmptyIsNoOp(t *testing.T) {
	row := doctree.NewRow(sym("a"), sym("b"))
	tree := doctree.NewTree()
	tree.ReplaceRow(nil, row)

	r := doctree.NewRange(nil, 1, 1)
	edits, collapsed := RemoveRange(row, r)
	if !edits.Apply(tree) {
		t.Fatal("apply failed")
	}
	got, _ := tree.RowAt(nil)
	if want := `(row "a" "b")`; got.Print() != want {
		t.Fatalf("empty range mutated row: got %q, want %q", got.Print(), want)
	}
	if want := doctree.NewPosition(nil, 1); !collapsed.Equal(want) {
		t.Fatalf("collapsed position = %+v, want %+v", collapsed, want)
	}
}

func TestReplaceRange(t *testing.T) {
	row := doctree.NewRow(sym("a"), sym("x"), sym("y"), sym("b"))
	tree := doctree.NewTree()
	tree.ReplaceRow(nil, row)

	r := doctree.NewRange(nil, 1, 3)
	edits, after := ReplaceRange(row, r, []doctree.Node{sym("z")})
	if !edits.Apply(tree) {
		t.Fatal("apply failed")
	}
	got, _ := tree.RowAt(nil)
	if want := `(row "a" "z" "b")`; got.Print() != want {
		t.Fatalf("got %q, want %q", got.Print(), want)
	}
	if want := doctree.NewPosition(nil, 2); !after.Equal(want) {
		t.Fatalf("resulting position = %+v, want %+v", after, want)
	}

	if !edits.Inverse().Apply(tree) {
		t.Fatal("inverse apply failed")
	}
	got, _ = tree.RowAt(nil)
	if want := `(row "a" "x" "y" "b")`; got.Print() != want {
		t.Fatalf("after undo: got %q, want %q", got.Print(), want)
	}
}
