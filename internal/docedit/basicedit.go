package docedit

import (
	"github.com/inkwell/mathcore/internal/doctree"
	"github.com/inkwell/mathcore/internal/grid"
)

// BasicEdit is one primitive, invertible mutation of a doctree.Tree. A
// []BasicEdit together with concatenation forms a group: Inverse reverses
// the slice and inverts each element, and applying an edit then its
// inverse is the identity on the tree (spec.md section 4.B).
type BasicEdit interface {
	// Apply mutates t in place, returns false if the edit no longer
	// addresses a valid location (an internal invariant violation in
	// practice: edits are only ever applied immediately after they are
	// built, against the tree they were built against).
	Apply(t *doctree.Tree) bool
	// Inverse returns the edit that undoes this one.
	Inverse() BasicEdit
	// RowIndicesEdit returns this edit's effect on outstanding positions
	// and ranges.
	RowIndicesEdit() IndexEdit
}

// RowInsert inserts values at position.Offset in the row at
// position.Path.
type RowInsert struct {
	Position doctree.Position
	Values   []doctree.Node
}

// Apply implements BasicEdit.
func (e RowInsert) Apply(t *doctree.Tree) bool {
	row, ok := t.RowAt(e.Position.Path)
	if !ok {
		return false
	}
	return t.ReplaceRow(e.Position.Path, row.WithInserted(e.Position.Offset, e.Values))
}

// Inverse implements BasicEdit.
func (e RowInsert) Inverse() BasicEdit {
	return RowDelete{Position: e.Position, Values: e.Values}
}

// RowIndicesEdit implements BasicEdit.
func (e RowInsert) RowIndicesEdit() IndexEdit {
	return RowIndexEdit{
		Path:      e.Position.Path,
		OldOffset: e.Position.Offset,
		NewOffset: e.Position.Offset + len(e.Values),
	}
}

// RowDelete deletes len(Values) nodes starting at position.Offset in the
// row at position.Path. Values holds the removed nodes verbatim, making
// the edit invertible without a tree lookup.
type RowDelete struct {
	Position doctree.Position
	Values   []doctree.Node
}

// Apply implements BasicEdit.
func (e RowDelete) Apply(t *doctree.Tree) bool {
	row, ok := t.RowAt(e.Position.Path)
	if !ok {
		return false
	}
	newRow, _ := row.WithDeleted(e.Position.Offset, len(e.Values))
	return t.ReplaceRow(e.Position.Path, newRow)
}

// Inverse implements BasicEdit.
func (e RowDelete) Inverse() BasicEdit {
	return RowInsert{Position: e.Position, Values: e.Values}
}

// RowIndicesEdit implements BasicEdit.
func (e RowDelete) RowIndicesEdit() IndexEdit {
	return RowIndexEdit{
		Path:      e.Position.Path,
		OldOffset: e.Position.Offset + len(e.Values),
		NewOffset: e.Position.Offset,
	}
}

// GridPosition addresses an edge of a resizable grid: the row/column
// strip at index At (0..=current size along Direction's axis) of the
// container node at ContainerIndex within the row at Path. Width and
// Height are the grid's dimensions at the time the edit was built (the
// "old" dimensions for both GridInsert and GridDelete), carried explicitly
// so RowIndicesEdit never needs to re-consult the tree.
type GridPosition struct {
	Path           doctree.RowIndices
	ContainerIndex int
	Direction      grid.Direction
	At             int
	Width, Height  int
}

// GridInsert inserts a whole row or column of Values at a grid edge.
type GridInsert struct {
	Position GridPosition
	Values   []doctree.Row
}

func containerNode(t *doctree.Tree, path doctree.RowIndices, containerIndex int) (doctree.Row, doctree.Node, bool) {
	row, ok := t.RowAt(path)
	if !ok || containerIndex < 0 || containerIndex >= row.Len() {
		return doctree.Row{}, doctree.Node{}, false
	}
	node := row.At(containerIndex)
	if !node.IsContainer() || !node.Variant().Resizable() {
		return doctree.Row{}, doctree.Node{}, false
	}
	return row, node, true
}

// Apply implements BasicEdit.
func (e GridInsert) Apply(t *doctree.Tree) bool {
	row, node, ok := containerNode(t, e.Position.Path, e.Position.ContainerIndex)
	if !ok {
		return false
	}
	g := node.Grid()
	newGrid := grid.InsertStrip(g, e.Position.Direction, e.Position.At, e.Values)
	newNode := doctree.NewContainer(node.Variant(), newGrid)
	return t.ReplaceRow(e.Position.Path, row.WithNodeReplaced(e.Position.ContainerIndex, newNode))
}

// Inverse implements BasicEdit.
func (e GridInsert) Inverse() BasicEdit {
	return GridDelete{Position: e.Position, Values: e.Values}
}

// RowIndicesEdit implements BasicEdit.
func (e GridInsert) RowIndicesEdit() IndexEdit {
	return GridIndexEdit{
		Path:           e.Position.Path,
		ContainerIndex: e.Position.ContainerIndex,
		Direction:      e.Position.Direction,
		OldWidth:       e.Position.Width,
		OldHeight:      e.Position.Height,
		OldOffset:      e.Position.At,
		NewOffset:      e.Position.At + 1,
	}
}

// GridDelete removes the whole row or column anchored at a grid edge.
// Values is the removed strip, kept verbatim for invertibility. Position's
// At addresses the strip being removed (0 for the first, Width-1/Height-1
// for the last) using the grid's dimensions before the delete.
type GridDelete struct {
	Position GridPosition
	Values   []doctree.Row
}

// Apply implements BasicEdit.
func (e GridDelete) Apply(t *doctree.Tree) bool {
	row, node, ok := containerNode(t, e.Position.Path, e.Position.ContainerIndex)
	if !ok {
		return false
	}
	g := node.Grid()
	newGrid, _ := grid.DeleteStrip(g, e.Position.Direction, e.Position.At)
	newNode := doctree.NewContainer(node.Variant(), newGrid)
	return t.ReplaceRow(e.Position.Path, row.WithNodeReplaced(e.Position.ContainerIndex, newNode))
}

// Inverse implements BasicEdit.
func (e GridDelete) Inverse() BasicEdit {
	return GridInsert{Position: e.Position, Values: e.Values}
}

// RowIndicesEdit implements BasicEdit.
func (e GridDelete) RowIndicesEdit() IndexEdit {
	return GridIndexEdit{
		Path:           e.Position.Path,
		ContainerIndex: e.Position.ContainerIndex,
		Direction:      e.Position.Direction,
		OldWidth:       e.Position.Width,
		OldHeight:      e.Position.Height,
		OldOffset:      e.Position.At + 1,
		NewOffset:      e.Position.At,
	}
}

// Edits is a sequence of BasicEdits. Together with concatenation it forms
// a group: Inverse reverses the sequence and inverts each element.
type Edits []BasicEdit

// Apply runs every edit against t in order, stopping (and reporting false)
// at the first edit that fails to apply.
func (es Edits) Apply(t *doctree.Tree) bool {
	for _, e := range es {
		if !e.Apply(t) {
			return false
		}
	}
	return true
}

// Inverse returns the edits that undo es, applied in reverse order.
func (es Edits) Inverse() Edits {
	out := make(Edits, len(es))
	for i, e := range es {
		out[len(es)-1-i] = e.Inverse()
	}
	return out
}
