package editcore

import (
	"testing"

	"github.com/inkwell/mathcore/internal/caret"
	"github.com/inkwell/mathcore/internal/docedit"
	"github.com/inkwell/mathcore/internal/doctree"
)

func sym(s string) doctree.Node { return doctree.NewSymbol(s) }

func TestRemoveAtCaret_DeletesAdjacentSymbol(t *testing.T) {
	tree := doctree.NewTree()
	tree.ReplaceRow(nil, doctree.NewRow(sym("a"), sym("b")))
	c := caret.NewCollapsed(doctree.NewPosition(nil, 2))

	edits, after, ok := RemoveAtCaret(tree, c, RemoveLeft)
	if !ok {
		t.Fatal("expected a removal")
	}
	edits.Apply(tree)
	row, _ := tree.RowAt(nil)
	if want := `(row "a")`; row.Print() != want {
		t.Fatalf("got %q, want %q", row.Print(), want)
	}
	if after.End.Offset != 1 {
		t.Errorf("caret after = %+v, want offset 1", after)
	}
}

func TestRemoveAtCaret_RangeModeAlwaysDeletes(t *testing.T) {
	tree := doctree.NewTree()
	tree.ReplaceRow(nil, doctree.NewRow(sym("a"), sym("b"), sym("c")))
	c := caret.Caret{Start: doctree.NewPosition(nil, 0), End: doctree.NewPosition(nil, 2)}

	edits, _, ok := RemoveAtCaret(tree, c, RemoveRangeMode)
	if !ok {
		t.Fatal("expected the selected range to be removed")
	}
	edits.Apply(tree)
	row, _ := tree.RowAt(nil)
	if want := `(row "c")`; row.Print() != want {
		t.Fatalf("got %q, want %q", row.Print(), want)
	}
}

func TestRemoveAtCaret_EmptyRangeIsNoOp(t *testing.T) {
	tree := doctree.NewTree()
	tree.ReplaceRow(nil, doctree.NewRow(sym("a")))
	c := caret.NewCollapsed(doctree.NewPosition(nil, 0))

	_, _, ok := RemoveAtCaret(tree, c, RemoveRangeMode)
	if ok {
		t.Fatal("expected an empty range to be a no-op")
	}
}

func TestRemoveAtCaret_FlattensSup(t *testing.T) {
	body := doctree.NewRow(sym("x"), sym("y"))
	g := doctree.NewGrid(1, 1, []doctree.Row{body})
	sup := doctree.NewContainer(doctree.VariantSup, g)
	tree := doctree.NewTree()
	tree.ReplaceRow(nil, doctree.NewRow(sym("a"), sup))

	// Caret right after "a", backspacing Right (deleting forward) into
	// the sup container flattens it.
	c := caret.NewCollapsed(doctree.NewPosition(nil, 1))
	edits, after, ok := RemoveAtCaret(tree, c, RemoveRight)
	if !ok {
		t.Fatal("expected a flatten")
	}
	edits.Apply(tree)
	row, _ := tree.RowAt(nil)
	if want := `(row "a" "x" "y")`; row.Print() != want {
		t.Fatalf("got %q, want %q", row.Print(), want)
	}
	if after.End.Offset != 1 || len(after.End.Path) != 0 {
		t.Errorf("caret after = %+v, want offset 1 at root", after)
	}
}

func TestRemoveAtCaret_PureMovementIntoOtherContainer(t *testing.T) {
	num := doctree.NewRow(sym("x"))
	den := doctree.NewRow(sym("y"))
	g := doctree.NewGrid(1, 2, []doctree.Row{num, den})
	fraction := doctree.NewContainer(doctree.VariantFraction, g)
	tree := doctree.NewTree()
	tree.ReplaceRow(nil, doctree.NewRow(fraction))

	c := caret.NewCollapsed(doctree.NewPosition(nil, 0))
	edits, after, ok := RemoveAtCaret(tree, c, RemoveRight)
	if !ok {
		t.Fatal("expected a pure caret movement into the fraction")
	}
	if len(edits) != 0 {
		t.Errorf("expected no edits for a pure movement, got %d", len(edits))
	}
	want := doctree.NewPosition(doctree.RowIndices{{NodeIndex: 0, SubRowIndex: 0}}, 0)
	if !after.End.Equal(want) {
		t.Errorf("got %+v, want %+v", after.End, want)
	}
}

func TestUndoManager_PushUndoRedo(t *testing.T) {
	m := NewUndoManager()
	if _, ok := m.Undo(); ok {
		t.Fatal("undo on empty stack should fail")
	}

	tree := doctree.NewTree()
	tree.ReplaceRow(nil, doctree.NewRow(sym("a")))
	builder := NewEditBuilder(caret.NewCollapsed(doctree.NewPosition(nil, 1)))
	edit := docedit.RowInsert{Position: doctree.NewPosition(nil, 1), Values: []doctree.Node{sym("b")}}
	builder.Append(edit)
	edit.Apply(tree)
	after := caret.NewCollapsed(doctree.NewPosition(nil, 2))
	committed, ok := builder.Finish(after)
	if !ok {
		t.Fatal("expected builder to commit")
	}
	m.Push(committed)

	row, _ := tree.RowAt(nil)
	if want := `(row "a" "b")`; row.Print() != want {
		t.Fatalf("got %q, want %q", row.Print(), want)
	}

	undone, ok := m.Undo()
	if !ok {
		t.Fatal("expected undo to succeed")
	}
	undone.Apply(tree)
	row, _ = tree.RowAt(nil)
	if want := `(row "a")`; row.Print() != want {
		t.Fatalf("after undo: got %q, want %q", row.Print(), want)
	}

	redone, ok := m.Redo()
	if !ok {
		t.Fatal("expected redo to succeed")
	}
	redone.Apply(tree)
	row, _ = tree.RowAt(nil)
	if want := `(row "a" "b")`; row.Print() != want {
		t.Fatalf("after redo: got %q, want %q", row.Print(), want)
	}
	if _, ok := m.Redo(); ok {
		t.Fatal("redo after exhausting the redo stack should fail")
	}
}
