// Package editcore implements the editing engine layered over docedit and
// caret: compound CaretEdits, the EditBuilder that assembles them, the
// undo/redo manager, and the remove-at-caret policy (spec.md section 4.D).
package editcore

import (
	"github.com/inkwell/mathcore/internal/caret"
	"github.com/inkwell/mathcore/internal/docedit"
	"github.com/inkwell/mathcore/internal/doctree"
)

// CaretEdit bundles a forward-form sequence of BasicEdits with the carets
// bracketing them. Its inverse swaps the carets and reverses/inverts the
// edits.
type CaretEdit struct {
	CaretBefore, CaretAfter caret.Caret
	Edits                   docedit.Edits
}

// Inverse returns the CaretEdit that undoes e.
func (e CaretEdit) Inverse() CaretEdit {
	return CaretEdit{
		CaretBefore: e.CaretAfter,
		CaretAfter:  e.CaretBefore,
		Edits:       e.Edits.Inverse(),
	}
}

// Apply replays e (a forward-form action) against t, returning the caret
// it leaves behind.
func (e CaretEdit) Apply(t *doctree.Tree) caret.Caret {
	e.Edits.Apply(t)
	return e.CaretAfter
}

// EditBuilder collects BasicEdits while the caller performs a higher-level
// action (insert/remove at caret, paste, splice, perfect-match
// autocomplete).
type EditBuilder struct {
	caretBefore caret.Caret
	edits       docedit.Edits
}

// NewEditBuilder starts a builder anchored at the caret before the action.
func NewEditBuilder(caretBefore caret.Caret) *EditBuilder {
	return &EditBuilder{caretBefore: caretBefore}
}

// Append records one more BasicEdit.
func (b *EditBuilder) Append(e docedit.BasicEdit) {
	b.edits = append(b.edits, e)
}

// AppendAll records a sequence of BasicEdits.
func (b *EditBuilder) AppendAll(es docedit.Edits) {
	b.edits = append(b.edits, es...)
}

// Finish commits the collected edits into a CaretEdit ending at caretAfter.
// ok is false (an empty no-op) if nothing was ever appended.
func (b *EditBuilder) Finish(caretAfter caret.Caret) (CaretEdit, bool) {
	if len(b.edits) == 0 {
		return CaretEdit{}, false
	}
	return CaretEdit{CaretBefore: b.caretBefore, CaretAfter: caretAfter, Edits: b.edits}, true
}
