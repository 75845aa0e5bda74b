package editcore

import (
	"github.com/inkwell/mathcore/internal/caret"
	"github.com/inkwell/mathcore/internal/docedit"
	"github.com/inkwell/mathcore/internal/doctree"
)

// RemoveMode selects which side of a collapsed caret remove_at_caret
// deletes, or Range to always delete the caret's selection.
type RemoveMode uint8

const (
	RemoveLeft RemoveMode = iota
	RemoveRight
	RemoveRangeMode
)

// RemoveAtCaret computes the edits for a remove-at-caret action
// (spec.md section 4.D). ok is false for a NoEffect result (an empty
// range in Range mode, or a collapsed caret at a position with nothing to
// remove and nowhere to flatten).
func RemoveAtCaret(t *doctree.Tree, c caret.Caret, mode RemoveMode) (docedit.Edits, caret.Caret, bool) {
	if !c.Collapsed() || mode == RemoveRangeMode {
		return removeRange(t, c)
	}
	dir := -1
	if mode == RemoveRight {
		dir = 1
	}
	return removeAtCollapsedCaret(t, c.Start, dir)
}

func removeRange(t *doctree.Tree, c caret.Caret) (docedit.Edits, caret.Caret, bool) {
	sel := caret.FromCaret(t, c)
	if sel.Row == nil {
		// Grid-rectangle removal is outside the primitives this policy
		// composes (spec.md section 9's grid-editing open question).
		return nil, c, false
	}
	lo, hi := sel.Row.Ordered()
	if lo == hi {
		return nil, c, false
	}
	row, ok := t.RowAt(sel.Row.Path)
	if !ok {
		return nil, c, false
	}
	edits, pos := docedit.RemoveRange(row, doctree.NewRange(sel.Row.Path, lo, hi))
	return edits, caret.NewCollapsed(pos), true
}

func removeAtCollapsedCaret(t *doctree.Tree, pos doctree.Position, dir int) (docedit.Edits, caret.Caret, bool) {
	focus := doctree.NewFocus(t).WalkDown(pos.Path)

	if idx, ok := focus.AdjacentIndex(pos.Offset, dir); ok {
		nodeFocus, _ := focus.DescendNode(idx)
		node := nodeFocus.Node()
		switch {
		case node.IsSymbol():
			edits := docedit.Edits{docedit.RowDelete{
				Position: doctree.NewPosition(pos.Path, idx),
				Values:   []doctree.Node{node},
			}}
			return edits, caret.NewCollapsed(doctree.NewPosition(pos.Path, idx)), true
		case node.Variant() == doctree.VariantSub || node.Variant() == doctree.VariantSup:
			edits := flattenEdits(pos.Path, idx, node)
			return edits, caret.NewCollapsed(doctree.NewPosition(pos.Path, idx)), true
		default:
			return moveIntoAdjacent(t, pos, dir)
		}
	}

	// At the row's edge in the direction of travel: check for a parent
	// boundary that flattens, else fall back to pure caret movement.
	nodeFocus, subRowIndex, ok := focus.AscendStep()
	if !ok {
		return moveIntoAdjacent(t, pos, dir)
	}
	parentNode := nodeFocus.Node()
	parentPath := nodeFocus.ParentPath()
	parentIndex := nodeFocus.Index()

	switch parentNode.Variant() {
	case doctree.VariantSub, doctree.VariantSup:
		edits := flattenEdits(parentPath, parentIndex, parentNode)
		return edits, caret.NewCollapsed(doctree.NewPosition(parentPath, parentIndex)), true
	case doctree.VariantFraction, doctree.VariantRoot:
		if (dir < 0 && subRowIndex == 1) || (dir > 0 && subRowIndex == 0) {
			edits := flattenEdits(parentPath, parentIndex, parentNode)
			return edits, caret.NewCollapsed(doctree.NewPosition(parentPath, parentIndex)), true
		}
	case doctree.VariantTable:
		g := parentNode.Grid()
		xy := g.Coord(subRowIndex)
		atOuterEdge := (dir < 0 && xy.X == 0) || (dir > 0 && xy.X == g.Width()-1)
		if atOuterEdge && allCellsEmpty(g) {
			edits := flattenEdits(parentPath, parentIndex, parentNode)
			return edits, caret.NewCollapsed(doctree.NewPosition(parentPath, parentIndex)), true
		}
	}

	return moveIntoAdjacent(t, pos, dir)
}

func allCellsEmpty(g doctree.Grid) bool {
	for i := 0; i < g.Width()*g.Height(); i++ {
		if g.AtIndex(i).Len() != 0 {
			return false
		}
	}
	return true
}

// flattenEdits replaces the container node at idx in the row at path with
// the concatenation of its child rows' nodes, in row-major order.
func flattenEdits(path doctree.RowIndices, idx int, container doctree.Node) docedit.Edits {
	g := container.Grid()
	var nodes []doctree.Node
	for i := 0; i < g.Width()*g.Height(); i++ {
		nodes = append(nodes, g.AtIndex(i).Nodes()...)
	}
	at := doctree.NewPosition(path, idx)
	return docedit.Edits{
		docedit.RowDelete{Position: at, Values: []doctree.Node{container}},
		docedit.RowInsert{Position: at, Values: nodes},
	}
}

func moveIntoAdjacent(t *doctree.Tree, pos doctree.Position, dir int) (docedit.Edits, caret.Caret, bool) {
	direction := caret.Left
	if dir > 0 {
		direction = caret.Right
	}
	moved, ok := caret.Move(t, caret.NewCollapsed(pos), direction, caret.Char)
	if !ok {
		return nil, caret.NewCollapsed(pos), false
	}
	return nil, moved, true
}
