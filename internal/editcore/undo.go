package editcore

// UndoManager holds two stacks of forward-form CaretEdits (spec.md
// section 4.D).
type UndoManager struct {
	undoStack []CaretEdit
	redoStack []CaretEdit
}

// NewUndoManager builds an empty undo/redo manager.
func NewUndoManager() *UndoManager {
	return &UndoManager{}
}

// Push appends edit to the undo stack and clears the redo stack: a fresh
// edit invalidates any previously undone history.
func (m *UndoManager) Push(edit CaretEdit) {
	m.undoStack = append(m.undoStack, edit)
	m.redoStack = nil
}

// Undo pops the most recent undo entry and returns its inverse, pushing
// the original entry onto the redo stack. ok is false on an empty stack
// (a NoEffect condition, not an error).
func (m *UndoManager) Undo() (CaretEdit, bool) {
	n := len(m.undoStack)
	if n == 0 {
		return CaretEdit{}, false
	}
	edit := m.undoStack[n-1]
	m.undoStack = m.undoStack[:n-1]
	m.redoStack = append(m.redoStack, edit)
	return edit.Inverse(), true
}

// Redo pops the most recent redo entry and returns it in forward form,
// pushing it back onto the undo stack.
func (m *UndoManager) Redo() (CaretEdit, bool) {
	n := len(m.redoStack)
	if n == 0 {
		return CaretEdit{}, false
	}
	edit := m.redoStack[n-1]
	m.redoStack = m.redoStack[:n-1]
	m.undoStack = append(m.undoStack, edit)
	return edit, true
}

// CanUndo reports whether Undo would succeed.
func (m *UndoManager) CanUndo() bool { return len(m.undoStack) > 0 }

// CanRedo reports whether Redo would succeed.
func (m *UndoManager) CanRedo() bool { return len(m.redoStack) > 0 }
