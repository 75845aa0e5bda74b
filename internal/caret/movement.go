package caret

import (
	"github.com/inkwell/mathcore/internal/doctree"
)

// Move resolves a single caret movement against t, grounded on
// aftermath-core's CaretMover (original_source/aftermath-core/caret/src/moving/movement.rs):
// prefer diving into an adjacent nested container, else cross one symbol,
// else pop past the row's edge. ok is false only when the caret truly
// cannot move (already collapsed at the document's outer edge).
//
// mode is accepted for API completeness; Word and Line are reserved
// (spec.md section 9) and currently move exactly as Char.
func Move(t *doctree.Tree, c Caret, dir Direction, mode MoveMode) (Caret, bool) {
	wasCollapsed := c.Collapsed()
	var start doctree.Position
	if dir == Left || dir == Up {
		start = lowerPosition(c)
	} else {
		start = higherPosition(c)
	}

	var moved doctree.Position
	var ok bool
	switch dir {
	case Left:
		moved, ok = moveHorizontal(t, start, -1)
	case Right:
		moved, ok = moveHorizontal(t, start, +1)
	case Up:
		moved, ok = moveVertical(t, start, -1)
	case Down:
		moved, ok = moveVertical(t, start, +1)
	}

	if ok {
		return NewCollapsed(moved), true
	}
	if !wasCollapsed {
		// Collapsing a non-collapsed selection counts as a move.
		return NewCollapsed(start), true
	}
	return c, false
}

func lowerPosition(c Caret) doctree.Position {
	if c.Start.Compare(c.End) <= 0 {
		return c.Start
	}
	return c.End
}

func higherPosition(c Caret) doctree.Position {
	if c.Start.Compare(c.End) >= 0 {
		return c.Start
	}
	return c.End
}

// moveHorizontal implements move_horizontal_into, falling back to
// move_horizontal_beyond_edge. dir is +1 rightward, -1 leftward.
func moveHorizontal(t *doctree.Tree, pos doctree.Position, dir int) (doctree.Position, bool) {
	focus := doctree.NewFocus(t).WalkDown(pos.Path)
	if moved, ok := moveHorizontalInto(focus, pos.Offset, dir); ok {
		return moved, true
	}
	return moveHorizontalBeyondEdge(focus, dir)
}

func moveHorizontalInto(focus doctree.Focus, offset, dir int) (doctree.Position, bool) {
	idx, ok := focus.AdjacentIndex(offset, dir)
	if !ok {
		return doctree.Position{}, false
	}
	nodeFocus, ok := focus.DescendNode(idx)
	if !ok {
		return doctree.Position{}, false
	}
	node := nodeFocus.Node()
	if node.IsContainer() {
		g := node.Grid()
		subRow := 0
		if dir < 0 {
			subRow = g.Width()*g.Height() - 1
		}
		childFocus, ok := nodeFocus.DescendRow(subRow)
		if !ok {
			return doctree.Position{}, false
		}
		childRow := childFocus.Row()
		newOffset := 0
		if dir < 0 {
			newOffset = childRow.Len()
		}
		return doctree.NewPosition(childFocus.Path(), newOffset), true
	}
	newOffset := offset + dir
	return doctree.NewPosition(focus.Path(), newOffset), true
}

func moveHorizontalBeyondEdge(focus doctree.Focus, dir int) (doctree.Position, bool) {
	nodeFocus, subRowIndex, ok := focus.AscendStep()
	if !ok {
		return doctree.Position{}, false
	}
	node := nodeFocus.Node()
	g := node.Grid()
	adjacentSubRow := subRowIndex + dir
	if adjacentSubRow >= 0 && adjacentSubRow < g.Width()*g.Height() {
		adjacentFocus, ok := nodeFocus.DescendRow(adjacentSubRow)
		if ok {
			adjacentRow := adjacentFocus.Row()
			newOffset := 0
			if dir < 0 {
				newOffset = adjacentRow.Len()
			}
			return doctree.NewPosition(adjacentFocus.Path(), newOffset), true
		}
	}
	parentFocus := nodeFocus.Parent()
	containerIndex := nodeFocus.Index()
	newOffset := containerIndex
	if dir > 0 {
		newOffset = containerIndex + 1
	}
	return doctree.NewPosition(parentFocus.Path(), newOffset), true
}

// moveVertical implements move_vertical: popping out of sub/sup in the
// direction that leaves them, otherwise moving to the cell above/below in
// the parent grid, recursing into the grandparent at the grid's edge.
func moveVertical(t *doctree.Tree, pos doctree.Position, dir int) (doctree.Position, bool) {
	focus := doctree.NewFocus(t).WalkDown(pos.Path)
	for {
		nodeFocus, subRowIndex, ok := focus.AscendStep()
		if !ok {
			return doctree.Position{}, false
		}
		parentNode := nodeFocus.Node()
		if (parentNode.Variant() == doctree.VariantSub && dir > 0) ||
			(parentNode.Variant() == doctree.VariantSup && dir < 0) {
			parentRow := nodeFocus.Parent()
			return doctree.NewPosition(parentRow.Path(), nodeFocus.Index()), true
		}

		g := parentNode.Grid()
		xy := g.Coord(subRowIndex)
		newXY := xy
		if dir < 0 {
			newXY.Y = xy.Y - 1
		} else {
			newXY.Y = xy.Y + 1
		}
		if newXY.Y >= 0 && newXY.Y < g.Height() {
			newFocus, ok := nodeFocus.DescendRow(g.Index(newXY))
			if ok {
				newRow := newFocus.Row()
				newOffset := 0
				if dir < 0 {
					newOffset = newRow.Len()
				}
				return doctree.NewPosition(newFocus.Path(), newOffset), true
			}
		}
		// Reached the grid's top/bottom edge: retry one level up, from
		// the row that holds this container.
		focus = nodeFocus.Parent()
	}
}
