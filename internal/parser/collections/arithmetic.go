package collections

import (
	"github.com/inkwell/mathcore/internal/doctree"
	"github.com/inkwell/mathcore/internal/parser"
)

// Arithmetic contributes number literals and the four basic operators plus
// factorial, with the usual school precedence: `*`/`/` bind tighter than
// `+`/`-`; `^` is right-associative and binds tighter still; `!` binds
// tighter than every infix operator. Unary minus binds tightest of all, so
// `-a^b` groups as `(-a)^b` and `-a!` as `(-a)!`.
func Arithmetic() []parser.Rule {
	return []parser.Rule{
		{ID: parser.NewRuleID("Arithmetic", "Number"), BindingPower: parser.None(), Scan: scanDigits},

		{ID: parser.NewRuleID("Arithmetic", "Subtract"), BindingPower: parser.Prefix(10), Token: "-"},

		{ID: parser.NewRuleID("Arithmetic", "Add"), BindingPower: parser.LeftInfix(2), Token: "+"},
		{ID: parser.NewRuleID("Arithmetic", "Subtract"), BindingPower: parser.LeftInfix(2), Token: "-"},
		{ID: parser.NewRuleID("Arithmetic", "Multiply"), BindingPower: parser.LeftInfix(3), Token: "*"},
		{ID: parser.NewRuleID("Arithmetic", "Divide"), BindingPower: parser.LeftInfix(3), Token: "/"},
		{ID: parser.NewRuleID("Arithmetic", "Power"), BindingPower: parser.RightInfix(5), Token: "^"},
		{ID: parser.NewRuleID("Arithmetic", "Factorial"), BindingPower: parser.Postfix(6), Token: "!"},
	}
}

func scanDigits(row doctree.Row, pos int) (int, bool) {
	i := pos
	for i < row.Len() {
		n := row.At(i)
		if !n.IsSymbol() || len(n.Symbol()) != 1 || n.Symbol()[0] < '0' || n.Symbol()[0] > '9' {
			break
		}
		i++
	}
	if i == pos {
		return 0, false
	}
	return i - pos, true
}
