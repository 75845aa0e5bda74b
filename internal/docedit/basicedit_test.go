package docedit

import (
	"testing"

	"github.com/inkwell/mathcore/internal/doctree"
	"github.com/inkwell/mathcore/internal/grid"
)

func sym(s string) doctree.Node { return doctree.NewSymbol(s) }

func newTreeWithRow(nodes ...doctree.Node) *doctree.Tree {
	t := doctree.NewTree()
	t.ReplaceRow(nil, doctree.NewRow(nodes...))
	return t
}

func TestRowInsertApplyAndInverse(t *testing.T) {
	tree := newTreeWithRow(sym("a"), sym("b"))
	edit := RowInsert{
		Position: doctree.NewPosition(nil, 1),
		Values:   []doctree.Node{sym("x"), sym("y")},
	}
	if !edit.Apply(tree) {
		t.Fatal("apply failed")
	}
	row, _ := tree.RowAt(nil)
	if got, want := row.Print(), `(row "a" "x" "y" "b")`; got != want {
		t.Fatalf("after insert: got %q, want %q", got, want)
	}

	inverse := edit.Inverse()
	if !inverse.Apply(tree) {
		t.Fatal("inverse apply failed")
	}
	row, _ = tree.RowAt(nil)
	if got, want := row.Print(), `(row "a" "b")`; got != want {
		t.Fatalf("after inverse: got %q, want %q", got, want)
	}
}

func TestRowDeleteApplyAndInverse(t *testing.T) {
	tree := newTreeWithRow(sym("a"), sym("x"), sym("y"), sym("b"))
	edit := RowDelete{
		Position: doctree.NewPosition(nil, 1),
		Values:   []doctree.Node{sym("x"), sym("y")},
	}
	if !edit.Apply(tree) {
		t.Fatal("apply failed")
	}
	row, _ := tree.RowAt(nil)
	if got, want := row.Print(), `(row "a" "b")`; got != want {
		t.Fatalf("after delete: got %q, want %q", got, want)
	}

	inverse := edit.Inverse()
	if !inverse.Apply(tree) {
		t.Fatal("inverse apply failed")
	}
	row, _ = tree.RowAt(nil)
	if got, want := row.Print(), `(row "a" "x" "y" "b")`; got != want {
		t.Fatalf("after inverse: got %q, want %q", got, want)
	}
}

func oneByTwoTableTree() *doctree.Tree {
	row0 := doctree.NewRow(sym("1"))
	row1 := doctree.NewRow(sym("2"))
	g := doctree.NewGrid(1, 2, []doctree.Row{row0, row1})
	table := doctree.NewContainer(doctree.VariantTable, g)
	return newTreeWithRow(table)
}

func TestGridInsertRowApplyAndInverse(t *testing.T) {
	tree := oneByTwoTableTree()
	newRow := doctree.NewRow(sym("3"))
	edit := GridInsert{
		Position: GridPosition{
			ContainerIndex: 0,
			Direction:      grid.Row,
			At:             1,
			Width:          1,
			Height:         2,
		},
		Values: []doctree.Row{newRow},
	}
	if !edit.Apply(tree) {
		t.Fatal("apply failed")
	}
	row, _ := tree.RowAt(nil)
	want := `(row (table 1x3 (row "1") (row "3") (row "2")))`
	if got := row.Print(); got != want {
		t.Fatalf("after insert: got %q, want %q", got, want)
	}

	inverse := edit.Inverse()
	if !inverse.Apply(tree) {
		t.Fatal("inverse apply failed")
	}
	row, _ = tree.RowAt(nil)
	want = `(row (table 1x2 (row "1") (row "2")))`
	if got := row.Print(); got != want {
		t.Fatalf("after inverse: got %q, want %q", got, want)
	}
}

func TestGridDeleteColumnApplyAndInverse(t *testing.T) {
	g := doctree.NewGrid(2, 1, []doctree.Row{doctree.NewRow(sym("1")), doctree.NewRow(sym("2"))})
	table := doctree.NewContainer(doctree.VariantTable, g)
	tree := newTreeWithRow(table)

	edit := GridDelete{
		Position: GridPosition{
			ContainerIndex: 0,
			Direction:      grid.Column,
			At:             1,
			Width:          2,
			Height:         1,
		},
		Values: []doctree.Row{doctree.NewRow(sym("2"))},
	}
	if !edit.Apply(tree) {
		t.Fatal("apply failed")
	}
	row, _ := tree.RowAt(nil)
	want := `(row (table 1x1 (row "1")))`
	if got := row.Print(); got != want {
		t.Fatalf("after delete: got %q, want %q", got, want)
	}

	inverse := edit.Inverse()
	if !inverse.Apply(tree) {
		t.Fatal("inverse apply failed")
	}
	row, _ = tree.RowAt(nil)
	want = `(row (table 2x1 (row "1") (row "2")))`
	if got := row.Print(); got != want {
		t.Fatalf("after inverse: got %q, want %q", got, want)
	}
}

func TestEditsInverseUndoesSequence(t *testing.T) {
	tree := newTreeWithRow(sym("a"))
	es := Edits{
		RowInsert{Position: doctree.NewPosition(nil, 1), Values: []doctree.Node{sym("b")}},
		RowInsert{Position: doctree.NewPosition(nil, 2), Values: []doctree.Node{sym("c")}},
	}
	if !es.Apply(tree) {
		t.Fatal("apply failed")
	}
	row, _ := tree.RowAt(nil)
	if got, want := row.Print(), `(row "a" "b" "c")`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if !es.Inverse().Apply(tree) {
		t.Fatal("inverse apply failed")
	}
	row, _ = tree.RowAt(nil)
	if got, want := row.Print(), `(row "a")`; got != want {
		t.Fatalf("after undo: got %q, want %q", got, want)
	}
}
