package doctree

import "testing"

func TestPositionCompare_SameRow(t *testing.T) {
	p0 := NewPosition(nil, 0)
	p2 := NewPosition(nil, 2)
	if p0.Compare(p2) >= 0 {
		t.Error("expected offset 0 to sort before offset 2")
	}
}

func TestPositionCompare_DescentBetweenOffsets(t *testing.T) {
	// A descent into child index k sorts strictly between offsets k and
	// k+1 of the parent row, per spec.md section 3's invariant.
	atOffsetK := NewPosition(nil, 1)
	descendIntoK := NewPosition(RowIndices{{NodeIndex: 1, SubRowIndex: 0}}, 0)
	atOffsetKPlus1 := NewPosition(nil, 2)

	if atOffsetK.Compare(descendIntoK) >= 0 {
		t.Error("expected offset 1 to sort before descent into child 1")
	}
	if descendIntoK.Compare(atOffsetKPlus1) >= 0 {
		t.Error("expected descent into child 1 to sort before offset 2")
	}
}

func TestPositionCompare_TotalOrderIsAntisymmetric(t *testing.T) {
	a := NewPosition(RowIndices{{NodeIndex: 0, SubRowIndex: 0}}, 3)
	b := NewPosition(RowIndices{{NodeIndex: 1, SubRowIndex: 0}}, 0)
	if a.Compare(b) != -b.Compare(a) {
		t.Errorf("Compare not antisymmetric: a.Compare(b)=%d b.Compare(a)=%d", a.Compare(b), b.Compare(a))
	}
}

func TestRangeOrderedAndCollapsed(t *testing.T) {
	r := NewRange(nil, 3, 1)
	lo, hi := r.Ordered()
	if lo != 1 || hi != 3 {
		t.Errorf("Ordered() = (%d,%d), want (1,3)", lo, hi)
	}
	if r.Collapsed() {
		t.Error("range with distinct offsets should not be collapsed")
	}
	if NewRange(nil, 2, 2).Collapsed() != true {
		t.Error("range with equal offsets should be collapsed")
	}
}
