// Package caret implements the caret and selection model over a
// doctree.Tree: a Caret as an ordered pair of positions, its resolution
// into a row or grid Selection, and horizontal/vertical movement.
package caret

import (
	"github.com/inkwell/mathcore/internal/doctree"
)

// Direction is one of the four movement directions a caret can move in.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// MoveMode selects how far a single movement travels. Only Char is
// required; Word and Line are reserved (spec.md section 9's open
// questions) and currently behave exactly like Char.
type MoveMode uint8

const (
	Char MoveMode = iota
	Word
	Line
)

// Caret is an ordered pair of positions: Start is the anchor, End is the
// active end that movement and selection extension move.
type Caret struct {
	Start, End doctree.Position
}

// NewCollapsed builds a caret with both ends at p.
func NewCollapsed(p doctree.Position) Caret {
	return Caret{Start: p, End: p}
}

// Collapsed reports whether the caret has no width.
func (c Caret) Collapsed() bool {
	return c.Start.Equal(c.End)
}

// Forward reports whether the caret's end is at or after its start in the
// total position order.
func (c Caret) Forward() bool {
	return c.Start.Compare(c.End) <= 0
}

// CollapseToStart returns a collapsed caret at Start.
func (c Caret) CollapseToStart() Caret {
	return NewCollapsed(c.Start)
}

// CollapseToEnd returns a collapsed caret at End.
func (c Caret) CollapseToEnd() Caret {
	return NewCollapsed(c.End)
}

// CollapseToSide returns a collapsed caret at whichever end sorts first
// (Left) or last (Right) in the total position order: the same caret Move
// returns when its only effect on a non-collapsed selection is to collapse
// it.
func (c Caret) CollapseToSide(dir Direction) Caret {
	lo, hi := c.Start, c.End
	if lo.Compare(hi) > 0 {
		lo, hi = hi, lo
	}
	if dir == Left || dir == Up {
		return NewCollapsed(lo)
	}
	return NewCollapsed(hi)
}
