package mathcore

import (
	"strings"

	"github.com/inkwell/mathcore/internal/autocomplete"
	"github.com/inkwell/mathcore/internal/doctree"
)

// perfectMatchCapture is the state spec.md section 4.F's perfect-match
// auto-application captures before a caret movement: the rule whose
// trigger is, right now, fully typed immediately before the caret, and
// the range it occupies.
type perfectMatchCapture struct {
	valid bool
	rule  autocomplete.Rule
	r     doctree.Range
}

// perfectMatchBefore captures the currently complete-matched rule (the
// longest one, if several triggers happen to share a suffix) at the
// caret's active end.
func (e *Editor) perfectMatchBefore() perfectMatchCapture {
	pos := e.caret.End
	matches := e.currentMatches(1)
	var best *autocomplete.Match
	for i := range matches {
		if !matches[i].Complete() {
			continue
		}
		if best == nil || matches[i].RuleMatchLength > best.RuleMatchLength {
			best = &matches[i]
		}
	}
	if best == nil {
		return perfectMatchCapture{}
	}
	start := pos.Offset - best.InputMatchLength
	if start < 0 {
		start = 0
	}
	return perfectMatchCapture{
		valid: true,
		rule:  best.Rule,
		r:     doctree.NewRange(pos.Path, start, pos.Offset),
	}
}

// applyPerfectMatchAgainst splices before's rule over its captured range
// if the caret has since left that range and the range still spells out
// the rule's trigger verbatim.
func (e *Editor) applyPerfectMatchAgainst(before perfectMatchCapture) {
	if !before.valid || stillAtCaptureEnd(before.r, e.caret.End) {
		return
	}
	if !e.rangeStillSpellsTrigger(before.r, before.rule.Trigger) {
		return
	}
	e.SpliceAtRange(before.r, before.rule.Replacement)
}

// stillAtCaptureEnd reports whether p is still the exact point the
// trigger was completed at (the capture's range end): the caret is
// collapsed, so there is no "inside the token" span to speak of beyond
// that single point, and any movement away from it, in either direction,
// counts as leaving.
func stillAtCaptureEnd(r doctree.Range, p doctree.Position) bool {
	return r.Path.Equal(p.Path) && p.Offset == r.End
}

// rangeStillSpellsTrigger reports whether the row at r.Path, read over
// r's span, is still exactly a run of Symbol nodes spelling trigger.
func (e *Editor) rangeStillSpellsTrigger(r doctree.Range, trigger string) bool {
	row, ok := e.tree.RowAt(r.Path)
	if !ok {
		return false
	}
	lo, hi := r.Ordered()
	if hi > row.Len() {
		return false
	}
	var b strings.Builder
	for i := lo; i < hi; i++ {
		n := row.At(i)
		if !n.IsSymbol() {
			return false
		}
		b.WriteString(n.Symbol())
	}
	return b.String() == trigger
}
