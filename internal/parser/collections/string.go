package collections

import (
	"github.com/inkwell/mathcore/internal/doctree"
	"github.com/inkwell/mathcore/internal/parser"
)

// String contributes double-quoted string literals: `"` ... `"` with the
// quotes themselves included in the leaf's graphemes.
func String() []parser.Rule {
	return []parser.Rule{
		{ID: parser.NewRuleID("String", "Literal"), BindingPower: parser.None(), Scan: scanQuoted},
	}
}

func scanQuoted(row doctree.Row, pos int) (int, bool) {
	if pos >= row.Len() || !row.At(pos).IsSymbol() || row.At(pos).Symbol() != `"` {
		return 0, false
	}
	for i := pos + 1; i < row.Len(); i++ {
		if row.At(i).IsSymbol() && row.At(i).Symbol() == `"` {
			return i - pos + 1, true
		}
	}
	return 0, false
}
