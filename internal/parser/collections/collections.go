package collections

import "github.com/inkwell/mathcore/internal/parser"

// Collections contributes the comma tuple-builder: the loosest-binding
// infix operator, so `(a, b, c)` parses as nested left-associative tuples
// rather than splitting inside a looser enclosing operator.
func Collections() []parser.Rule {
	return []parser.Rule{
		{ID: parser.NewRuleID("Collection", "Tuple"), BindingPower: parser.LeftInfix(0), Token: ","},
	}
}
