package collections

import (
	"unicode"
	"unicode/utf8"

	"github.com/inkwell/mathcore/internal/doctree"
	"github.com/inkwell/mathcore/internal/parser"
)

// Core contributes the variable atom and round-bracket grouping: the
// fallback rules almost every other collection's operators sit on top of.
func Core() []parser.Rule {
	return []parser.Rule{
		{
			ID:           parser.NewRuleID("Core", "Variable"),
			BindingPower: parser.None(),
			Scan:         scanSingleLetter,
		},
		{
			ID:           parser.NewRuleID("Core", "RoundBrackets"),
			BindingPower: parser.None(),
			Token:        "(",
			BracketClose: ")",
		},
	}
}

// scanSingleLetter matches one grapheme cluster that is a single letter
// rune: plain identifiers are one character (spec.md keeps multi-character
// names to named rule atoms like calculus's "lim").
func scanSingleLetter(row doctree.Row, pos int) (int, bool) {
	if pos >= row.Len() {
		return 0, false
	}
	n := row.At(pos)
	if !n.IsSymbol() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(n.Symbol())
	if size != len(n.Symbol()) || !unicode.IsLetter(r) {
		return 0, false
	}
	return 1, true
}
