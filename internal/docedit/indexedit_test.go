package docedit

import (
	"testing"

	"github.com/inkwell/mathcore/internal/doctree"
	"github.com/inkwell/mathcore/internal/grid"
)

func TestRowIndexEdit_ShiftsPositionsAfterInsert(t *testing.T) {
	e := RowIndexEdit{Path: nil, OldOffset: 1, NewOffset: 3}

	before := doctree.NewPosition(nil, 0)
	if got := e.ApplyPosition(before); got.Offset != 0 {
		t.Errorf("offset before insert point: got %d, want 0", got.Offset)
	}

	after := doctree.NewPosition(nil, 2)
	if got := e.ApplyPosition(after); got.Offset != 4 {
		t.Errorf("offset after insert point: got %d, want 4", got.Offset)
	}
}

func TestRowIndexEdit_ClampsPositionsInsideDeletedRange(t *testing.T) {
	// Deleting offsets [1,3): OldOffset=3, NewOffset=1.
	e := RowIndexEdit{Path: nil, OldOffset: 3, NewOffset: 1}

	inside := doctree.NewPosition(nil, 2)
	got := e.ApplyPosition(inside)
	if got.Offset != 1 {
		t.Errorf("position inside deleted range: got offset %d, want 1", got.Offset)
	}

	// A descent into a node deleted by the edit clamps to the edit's left
	// edge within the parent row.
	descending := doctree.NewPosition(doctree.RowIndices{{NodeIndex: 2, SubRowIndex: 0}}, 0)
	got = e.ApplyPosition(descending)
	if len(got.Path) != 0 || got.Offset != 1 {
		t.Errorf("descent into deleted node: got %+v, want offset 1 at root", got)
	}
}

func TestRowIndexEdit_ShiftsDescentIntoNodeAfterInsert(t *testing.T) {
	// Inserting 1 node at offset 1 pushes the existing node that used to
	// sit at index 1 to index 2; a path already descended into it must
	// follow, not get clamped to the insertion point.
	e := RowIndexEdit{Path: nil, OldOffset: 1, NewOffset: 2}
	p := doctree.NewPosition(doctree.RowIndices{{NodeIndex: 1, SubRowIndex: 0}}, 0)
	got := e.ApplyPosition(p)
	if len(got.Path) != 1 || got.Path[0].NodeIndex != 2 {
		t.Errorf("descent into shifted node: got %+v, want NodeIndex 2", got)
	}
}

func TestRowIndexEdit_PreservesUnrelatedAncestorPath(t *testing.T) {
	e := RowIndexEdit{Path: doctree.RowIndices{{NodeIndex: 5, SubRowIndex: 0}}, OldOffset: 0, NewOffset: 1}
	p := doctree.NewPosition(nil, 5)
	got := e.ApplyPosition(p)
	if !got.Equal(p) {
		t.Errorf("position whose row is an ancestor of the edit should be untouched: got %+v, want %+v", got, p)
	}
}

func TestRowIndexEdit_ApplyRangeShiftsBothEnds(t *testing.T) {
	e := RowIndexEdit{Path: nil, OldOffset: 0, NewOffset: 2}
	r := doctree.NewRange(nil, 1, 3)
	got := e.ApplyRange(r)
	if got.Start != 3 || got.End != 5 {
		t.Errorf("got range [%d,%d), want [3,5)", got.Start, got.End)
	}
}

func TestGridIndexEdit_RowInsertKeepsEarlierRowAndShiftsLater(t *testing.T) {
	// A 2x2 grid gains a row at y=1 (a Row-direction insert).
	e := GridIndexEdit{
		ContainerIndex: 0,
		Direction:      grid.Row,
		OldWidth:       2, OldHeight: 2,
		OldOffset: 1, NewOffset: 2,
	}
	// Descend into (x=0, y=0) -> flat index 0; unaffected, should stay (0,0).
	p := doctree.NewPosition(doctree.RowIndices{{NodeIndex: 0, SubRowIndex: 0}}, 0)
	got := e.ApplyPosition(p)
	if got.Path[0].SubRowIndex != 0 {
		t.Errorf("untouched cell should keep flat index 0, got %d", got.Path[0].SubRowIndex)
	}

	// Descend into (x=1, y=1) -> flat index 3 (old width 2); after the
	// insert at y=1, the former row 1 shifts to row 2: new flat index at
	// new width 2 is y=2,x=1 -> 5.
	p2 := doctree.NewPosition(doctree.RowIndices{{NodeIndex: 0, SubRowIndex: 3}}, 0)
	got2 := e.ApplyPosition(p2)
	if got2.Path[0].SubRowIndex != 5 {
		t.Errorf("shifted cell: got flat index %d, want 5", got2.Path[0].SubRowIndex)
	}
}

func TestGridIndexEdit_IgnoresOtherContainers(t *testing.T) {
	e := GridIndexEdit{
		ContainerIndex: 0,
		Direction:      grid.Row,
		OldWidth:       1, OldHeight: 1,
		OldOffset: 0, NewOffset: 1,
	}
	p := doctree.NewPosition(doctree.RowIndices{{NodeIndex: 1, SubRowIndex: 0}}, 0)
	got := e.ApplyPosition(p)
	if !got.Equal(p) {
		t.Errorf("position descending into a different container index should be untouched: got %+v, want %+v", got, p)
	}
}
