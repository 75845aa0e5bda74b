// Package mathcore implements the editor façade (spec.md section 4.G):
// the single session-state object a host drives synchronously, wiring
// together the input tree, the parser, the caret, autocomplete, and the
// undo manager.
package mathcore

import (
	"io"

	"github.com/inkwell/mathcore/internal/autocomplete"
	"github.com/inkwell/mathcore/internal/caret"
	"github.com/inkwell/mathcore/internal/clipboardbridge"
	"github.com/inkwell/mathcore/internal/docedit"
	"github.com/inkwell/mathcore/internal/doctree"
	"github.com/inkwell/mathcore/internal/editcore"
	"github.com/inkwell/mathcore/internal/parser"
	"github.com/inkwell/mathcore/internal/parser/collections"
	"github.com/inkwell/mathcore/internal/wireformat"
)

// Editor holds the complete session state for one document: the input
// tree, the parser (immutable, shared by reference), an on-demand syntax
// tree cache, the caret, an in-progress selection drag (if any),
// autocomplete state, and the undo manager.
type Editor struct {
	tree   *doctree.Tree
	parser *parser.Parser

	syntaxCache  *parser.SyntaxNode
	syntaxStale  bool
	caret        caret.Caret
	dragMode     *caret.MoveMode
	dragAnchor   doctree.Position
	autocomplete autocomplete.State
	acRules      []autocomplete.Rule
	undo         *editcore.UndoManager
}

// New builds an editor over an empty document, using the default rule
// collections (spec.md section 4.E's registration order).
func New() *Editor {
	return NewWithParser(parser.NewParser(collections.Default()), collections.DefaultAutocompleteRules())
}

// NewWithParser builds an editor over an empty document using an
// explicitly supplied parser and autocomplete rule set, so a host can
// swap in a narrower or extended rule registry without touching this
// package (spec.md section 5: "parsers and rule collections are immutable
// after construction and may be shared by reference across editor
// instances").
func NewWithParser(p *parser.Parser, acRules []autocomplete.Rule) *Editor {
	return &Editor{
		tree:        doctree.NewTree(),
		parser:      p,
		acRules:     acRules,
		syntaxStale: true,
		undo:        editcore.NewUndoManager(),
	}
}

func (e *Editor) invalidate() {
	e.syntaxStale = true
	e.syntaxCache = nil
}

// GetSyntaxTree parses the document on demand and caches the result,
// invalidating only when the tree has changed since the last parse
// (spec.md section 4.G's "get_syntax_tree → parse on demand, cache").
func (e *Editor) GetSyntaxTree() *parser.SyntaxNode {
	if e.syntaxStale {
		e.syntaxCache = e.parser.ParseRow(e.tree.Root)
		e.syntaxStale = false
	}
	return e.syntaxCache
}

// GetCaret returns the current selection (row or grid) in minimal form.
func (e *Editor) GetCaret() caret.Selection {
	return caret.FromCaret(e.tree, e.caret)
}

// apply commits edit against the tree, updates the caret, records edit on
// the undo stack, and invalidates the syntax cache. It is the single
// choke point every mutating operation funnels through, matching spec.md
// section 4.G's "every mutating operation updates the caret after edits
// by delegating to position-apply-edit".
func (e *Editor) apply(edit editcore.CaretEdit) {
	e.caret = edit.Apply(e.tree)
	e.undo.Push(edit)
	e.invalidate()
}

// MoveCaret moves the caret one step in dir, ending any selection drag.
// ok is false only when the movement is a true no-op (the caret is
// already collapsed at the document's edge).
func (e *Editor) MoveCaret(dir caret.Direction, mode caret.MoveMode) bool {
	before := e.perfectMatchBefore()
	e.dragMode = nil
	moved, ok := caret.Move(e.tree, e.caret, dir, mode)
	if !ok {
		return false
	}
	e.caret = moved
	e.applyPerfectMatchAgainst(before)
	return true
}

// SelectWithCaret extends the caret's end-position one step in dir,
// leaving Start fixed (spec.md section 4.G): a shift-arrow-key style
// selection extension, as opposed to MoveCaret's plain collapse-and-move.
func (e *Editor) SelectWithCaret(dir caret.Direction, mode caret.MoveMode) bool {
	before := e.perfectMatchBefore()
	endOnly := caret.NewCollapsed(e.caret.End)
	moved, ok := caret.Move(e.tree, endOnly, dir, mode)
	if !ok {
		return false
	}
	e.caret = caret.Caret{Start: e.caret.Start, End: moved.End}
	e.applyPerfectMatchAgainst(before)
	return true
}

// RemoveAtCaret deletes the selection, or the node adjacent to a
// collapsed caret per removeMode, moving the caret afterward per the
// remove-at-caret policy (editcore.RemoveAtCaret). moveMode is not read:
// the pure-movement fallback always moves by Char.
func (e *Editor) RemoveAtCaret(removeMode editcore.RemoveMode, moveMode caret.MoveMode) bool {
	edits, after, ok := editcore.RemoveAtCaret(e.tree, e.caret, removeMode)
	if !ok {
		return false
	}
	if len(edits) == 0 {
		// A pure-movement fallback: editcore.RemoveAtCaret already
		// resolved the new caret, nothing to push onto the undo stack.
		e.caret = after
		return true
	}
	builder := editcore.NewEditBuilder(e.caret)
	builder.AppendAll(edits)
	edit, ok := builder.Finish(after)
	if !ok {
		return false
	}
	e.apply(edit)
	return true
}

// InsertAtCaret splices one Symbol node per grapheme of each input string
// at the caret (spec.md section 4.G), replacing any existing selection
// first.
func (e *Editor) InsertAtCaret(values []string) bool {
	var nodes []doctree.Node
	for _, s := range values {
		nodes = append(nodes, doctree.SplitGraphemes(s)...)
	}
	return e.spliceAtCaret(nodes)
}

// spliceAtCaret replaces the caret's current row selection with values,
// collapsing the caret afterward; a collapsed caret degenerates to a pure
// insert.
func (e *Editor) spliceAtCaret(values []doctree.Node) bool {
	sel := caret.FromCaret(e.tree, e.caret)
	if sel.Row == nil {
		// Grid-rectangle carets cannot be spliced into directly (spec.md
		// section 9's grid-editing open question); a host must resolve
		// to a row position first.
		return false
	}
	return e.SpliceAtRange(*sel.Row, values)
}

// SpliceAtRange replaces the nodes covered by r with values: the
// low-level primitive used internally by insert/paste and by the
// perfect-match auto-application (spec.md section 4.G).
func (e *Editor) SpliceAtRange(r doctree.Range, values []doctree.Node) bool {
	row, ok := e.tree.RowAt(r.Path)
	if !ok {
		return false
	}
	edits, after := docedit.ReplaceRange(row, r, values)
	builder := editcore.NewEditBuilder(e.caret)
	builder.AppendAll(edits)
	edit, ok := builder.Finish(caret.NewCollapsed(after))
	if !ok {
		return false
	}
	e.apply(edit)
	return true
}

// SelectAll sets the caret to span the entire root row.
func (e *Editor) SelectAll() {
	e.caret = caret.Caret{
		Start: doctree.NewPosition(nil, 0),
		End:   doctree.NewPosition(nil, e.tree.Root.Len()),
	}
}

// Undo pops and replays the most recent edit's inverse. ok is false on an
// empty undo stack (NoEffect, not an error).
func (e *Editor) Undo() bool {
	edit, ok := e.undo.Undo()
	if !ok {
		return false
	}
	e.caret = edit.Apply(e.tree)
	e.invalidate()
	return true
}

// Redo replays the most recently undone edit. ok is false on an empty
// redo stack.
func (e *Editor) Redo() bool {
	edit, ok := e.undo.Redo()
	if !ok {
		return false
	}
	e.caret = edit.Apply(e.tree)
	e.invalidate()
	return true
}

// StartSelection begins a selection drag at position, collapsing the
// caret there and recording mode for ExtendSelection to use.
func (e *Editor) StartSelection(position doctree.Position, mode caret.MoveMode) {
	e.caret = caret.NewCollapsed(position)
	e.dragAnchor = position
	m := mode
	e.dragMode = &m
}

// ExtendSelection moves the caret's end to position while a drag is in
// progress, leaving Start pinned at the drag's anchor. It is a no-op
// (false) if no drag is in progress.
func (e *Editor) ExtendSelection(position doctree.Position) bool {
	if e.dragMode == nil {
		return false
	}
	e.caret = caret.Caret{Start: e.dragAnchor, End: position}
	return true
}

// FinishSelection ends a selection drag started by StartSelection,
// leaving the caret as it last stood.
func (e *Editor) FinishSelection() {
	e.dragMode = nil
}

// Copy serialises the selected subtree into the wire envelope. ok is
// false when the current selection does not resolve to a row range (the
// grid-rectangle-copy open question, spec.md section 9).
func (e *Editor) Copy(format wireformat.FormatTag) ([]byte, bool) {
	if format != "" && format != wireformat.JSONInputTree {
		return nil, false
	}
	sel := caret.FromCaret(e.tree, e.caret)
	if sel.Row == nil {
		return nil, false
	}
	row, ok := e.tree.RowAt(sel.Row.Path)
	if !ok {
		return nil, false
	}
	lo, hi := sel.Row.Ordered()
	blob, err := wireformat.Encode(row.Nodes()[lo:hi])
	if err != nil {
		return nil, false
	}
	return blob, true
}

// Paste deserialises blob and inserts the resulting nodes at the caret,
// replacing any current selection. The returned error is a
// SerializationFailure (spec.md section 7); it is the only editor
// operation that can fail with a Go error rather than a no-op indicator.
func (e *Editor) Paste(blob []byte, formatHint wireformat.FormatTag) error {
	nodes, err := wireformat.Decode(blob, formatHint)
	if err != nil {
		return err
	}
	e.spliceAtCaret(nodes)
	return nil
}

// OpenAutocomplete computes the live match set against the caret's
// collapsed position and opens the popup over it. minLength is the
// caller-provided minimum match length (spec.md section 4.F).
func (e *Editor) OpenAutocomplete(minLength int) {
	e.autocomplete = autocomplete.Open(e.currentMatches(minLength))
}

// currentMatches recomputes the match set against the caret's active end.
func (e *Editor) currentMatches(minLength int) []autocomplete.Match {
	pos := e.caret.End
	row, ok := e.tree.RowAt(pos.Path)
	if !ok {
		return nil
	}
	return autocomplete.FindMatches(e.acRules, row, pos.Offset, minLength)
}

// GetAutocomplete returns the current autocomplete state.
func (e *Editor) GetAutocomplete() autocomplete.State {
	return e.autocomplete
}

// MoveInAutocomplete shifts the popup's highlight.
func (e *Editor) MoveInAutocomplete(dir autocomplete.Direction) {
	e.autocomplete = e.autocomplete.Move(dir)
}

// FinishAutocomplete closes the popup, splicing the selected rule's
// replacement over the matched trailing input when accept is true.
func (e *Editor) FinishAutocomplete(accept bool) bool {
	match, ok := e.autocomplete.Selected()
	e.autocomplete = autocomplete.State{}
	if !accept || !ok {
		return false
	}
	return e.spliceMatch(match)
}

// spliceMatch replaces the matched trailing input symbols at the caret
// with the rule's replacement.
func (e *Editor) spliceMatch(m autocomplete.Match) bool {
	pos := e.caret.End
	start := pos.Offset - m.InputMatchLength
	if start < 0 {
		start = 0
	}
	r := doctree.NewRange(pos.Path, start, pos.Offset)
	return e.SpliceAtRange(r, m.Rule.Replacement)
}

// GetRuleNames lists every registered rule identifier, in parse-priority
// order.
func (e *Editor) GetRuleNames() []string {
	return e.parser.RuleNames()
}

// SearchRuleNames fuzzy-filters GetRuleNames against query, for a host's
// rule-name search UI (spec.md section 4.G, a convenience over
// get_rule_names rather than a core operation).
func (e *Editor) SearchRuleNames(query string) []string {
	return autocomplete.FilterRuleNames(e.GetRuleNames(), query)
}

// CopyToClipboard encodes the current selection and writes it to the host
// system clipboard, falling back to an OSC 52 escape sequence written to
// out when no native clipboard is reachable (clipboardbridge.Copy). ok is
// false when the current selection does not resolve to a row range.
func (e *Editor) CopyToClipboard(out io.Writer) (ok bool, err error) {
	blob, ok := e.Copy(wireformat.JSONInputTree)
	if !ok {
		return false, nil
	}
	return true, clipboardbridge.Copy(string(blob), out)
}

// PasteFromClipboard reads the host system clipboard and splices its
// contents at the caret, same as Paste.
func (e *Editor) PasteFromClipboard() error {
	blob, err := clipboardbridge.Paste()
	if err != nil {
		return err
	}
	return e.Paste([]byte(blob), wireformat.JSONInputTree)
}
