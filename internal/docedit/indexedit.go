// Package docedit implements the primitive edits over doctree.Tree
// (spec.md section 4.B): invertible BasicEdits, the row-indices-edit
// descriptors that describe their effect on outstanding positions, and the
// composite operations built on top of them.
package docedit

import (
	"github.com/inkwell/mathcore/internal/doctree"
	"github.com/inkwell/mathcore/internal/grid"
)

// IndexEdit is a row-indices-edit descriptor: a pure function from a
// position or range to its post-edit counterpart. Every BasicEdit exposes
// one via RowIndicesEdit, so that position and range updates are plain
// data transforms rather than callbacks attached to positions (spec.md
// section 9, "Position-update algebra").
type IndexEdit interface {
	ApplyPosition(p doctree.Position) doctree.Position
	ApplyRange(r doctree.Range) doctree.Range
}

// RowIndexEdit describes an insert or delete of nodes within the row at
// Path: offsets >= max(OldOffset, NewOffset) shift by
// (NewOffset - OldOffset); offsets strictly between the two are clamped to
// the lower of the two.
type RowIndexEdit struct {
	Path                 doctree.RowIndices
	OldOffset, NewOffset int
}

// shiftIndex updates an offset (a gap between nodes, not a node itself):
// per spec.md section 4.B, offsets >= max(old,new) shift by the edit's
// delta, and offsets strictly between the two are clamped to the lower of
// the two (a gap sitting exactly at an insertion point stays before the
// inserted content, rather than being carried past it).
func shiftIndex(value, oldOffset, newOffset int) int {
	lo, hi := minMax(oldOffset, newOffset)
	switch {
	case value >= hi:
		return value + (newOffset - oldOffset)
	case value >= lo:
		return lo
	default:
		return value
	}
}

// shiftChildIndex updates the index of an existing child (a node index, or
// a grid coordinate along the resized axis) that a path descends into.
// Unlike shiftIndex, an insert never clamps: every surviving child at or
// past the insertion edge simply shifts by delta, since no old child ever
// occupied the newly created slots. A delete still clamps children whose
// index falls inside the removed span, reporting removed=true so the
// caller can collapse the descent.
func shiftChildIndex(value, oldOffset, newOffset int) (newValue int, removed bool) {
	delta := newOffset - oldOffset
	lo, hi := minMax(oldOffset, newOffset)
	if delta >= 0 {
		if value >= lo {
			return value + delta, false
		}
		return value, false
	}
	if value >= hi {
		return value + delta, false
	}
	if value >= lo {
		return lo, true
	}
	return value, false
}

func minMax(a, b int) (lo, hi int) {
	if a <= b {
		return a, b
	}
	return b, a
}

// ApplyPosition implements IndexEdit.
func (e RowIndexEdit) ApplyPosition(p doctree.Position) doctree.Position {
	n := doctree.CommonPrefixLen(p.Path, e.Path)
	if n < len(e.Path) {
		return p
	}
	if len(p.Path) == len(e.Path) {
		return doctree.NewPosition(p.Path, shiftIndex(p.Offset, e.OldOffset, e.NewOffset))
	}
	step := p.Path[n]
	newIndex, removed := shiftChildIndex(step.NodeIndex, e.OldOffset, e.NewOffset)
	if removed {
		return doctree.NewPosition(e.Path, newIndex)
	}
	newPath := p.Path.Clone()
	newPath[n] = doctree.RowIndex{
		NodeIndex:   newIndex,
		SubRowIndex: step.SubRowIndex,
	}
	return doctree.Position{Path: newPath, Offset: p.Offset}
}

// ApplyRange implements IndexEdit.
func (e RowIndexEdit) ApplyRange(r doctree.Range) doctree.Range {
	return applyRangeViaPositions(e, r)
}

func applyRangeViaPositions(e IndexEdit, r doctree.Range) doctree.Range {
	start := e.ApplyPosition(r.StartPosition())
	end := e.ApplyPosition(r.EndPosition())
	if start.Path.Equal(end.Path) {
		return doctree.NewRange(start.Path, start.Offset, end.Offset)
	}
	// The edit pulled the two endpoints onto different rows (e.g. one
	// endpoint sat inside a now-deleted region while the other did not):
	// collapse to whichever endpoint kept the shallower, still-valid
	// path.
	if len(start.Path) <= len(end.Path) {
		return doctree.NewRange(start.Path, start.Offset, start.Offset)
	}
	return doctree.NewRange(end.Path, end.Offset, end.Offset)
}

// GridIndexEdit describes an insert or delete of a whole row or column at
// an edge of the resizable grid carried by the container node at
// ContainerIndex within the row at Path. OldWidth/OldHeight are the grid's
// dimensions before the edit; OldOffset/NewOffset address the edge
// coordinate along the resized axis (the y coordinate for a Row edit, the
// x coordinate for a Column edit) the same way RowIndexEdit's offsets do.
type GridIndexEdit struct {
	Path                 doctree.RowIndices
	ContainerIndex       int
	Direction            grid.Direction
	OldWidth, OldHeight  int
	OldOffset, NewOffset int
}

// ApplyPosition implements IndexEdit.
func (e GridIndexEdit) ApplyPosition(p doctree.Position) doctree.Position {
	n := doctree.CommonPrefixLen(p.Path, e.Path)
	if n < len(e.Path) || len(p.Path) == len(e.Path) {
		return p
	}
	step := p.Path[n]
	if step.NodeIndex != e.ContainerIndex {
		return p
	}
	x := step.SubRowIndex % e.OldWidth
	y := step.SubRowIndex / e.OldWidth

	var coord, other int
	if e.Direction == grid.Row {
		coord, other = y, x
	} else {
		coord, other = x, y
	}

	newCoord, removed := shiftChildIndex(coord, e.OldOffset, e.NewOffset)
	if removed {
		// The row/column this position descended into was deleted:
		// clamp to just before the container node in its row.
		return doctree.NewPosition(e.Path, e.ContainerIndex)
	}

	newWidth := e.OldWidth
	delta := e.NewOffset - e.OldOffset
	if e.Direction == grid.Column {
		newWidth += delta
	}

	var newX, newY int
	if e.Direction == grid.Row {
		newX, newY = other, newCoord
	} else {
		newX, newY = newCoord, other
	}

	newPath := p.Path.Clone()
	newPath[n] = doctree.RowIndex{
		NodeIndex:   e.ContainerIndex,
		SubRowIndex: newY*newWidth + newX,
	}
	return doctree.Position{Path: newPath, Offset: p.Offset}
}

// ApplyRange implements IndexEdit.
func (e GridIndexEdit) ApplyRange(r doctree.Range) doctree.Range {
	return applyRangeViaPositions(e, r)
}
