package docedit

import (
	"github.com/inkwell/mathcore/internal/doctree"
)

// InsertAtPosition builds the edits that insert values at pos, returning
// them alongside the resulting position just after the inserted values.
func InsertAtPosition(pos doctree.Position, values []doctree.Node) (Edits, doctree.Position) {
	edit := RowInsert{Position: pos, Values: values}
	after := doctree.NewPosition(pos.Path, pos.Offset+len(values))
	return Edits{edit}, after
}

// RemoveRange builds the edits that delete the nodes covered by r from its
// row, returning them alongside the collapsed position at the range's left
// end.
func RemoveRange(row doctree.Row, r doctree.Range) (Edits, doctree.Position) {
	lo, hi := r.Ordered()
	removed := row.Nodes()[lo:hi]
	edit := RowDelete{
		Position: doctree.NewPosition(r.Path, lo),
		Values:   append([]doctree.Node(nil), removed...),
	}
	return Edits{edit}, doctree.NewPosition(r.Path, lo)
}

// ReplaceRange removes the nodes covered by r, then inserts values at the
// resulting collapsed position: remove_range followed by
// insert_at_position.
func ReplaceRange(row doctree.Row, r doctree.Range, values []doctree.Node) (Edits, doctree.Position) {
	removeEdits, collapsed := RemoveRange(row, r)
	insertEdits, after := InsertAtPosition(collapsed, values)
	return append(removeEdits, insertEdits...), after
}
