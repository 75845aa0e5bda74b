package collections

import "github.com/inkwell/mathcore/internal/parser"

// Calculus contributes limit, summation, integral and the fixed constants
// they commonly bound against, as plain named atoms/prefixes. A sub/sup
// right after an atom such as lim attaches to it through the engine's
// generic sub/sup postfix step. The prefixes ∑, ∏ and ∫ get no such
// attachment: a sub/sup right after one of them parses as the start of its
// operand.
func Calculus() []parser.Rule {
	return []parser.Rule{
		{ID: parser.NewRuleID("Calculus", "Limit"), BindingPower: parser.None(), Token: "lim"},
		{ID: parser.NewRuleID("Calculus", "Infinity"), BindingPower: parser.None(), Token: "∞"},
		{ID: parser.NewRuleID("Calculus", "Sum"), BindingPower: parser.Prefix(3), Token: "∑"},
		{ID: parser.NewRuleID("Calculus", "Product"), BindingPower: parser.Prefix(3), Token: "∏"},
		{ID: parser.NewRuleID("Calculus", "Integral"), BindingPower: parser.Prefix(3), Token: "∫"},
		{ID: parser.NewRuleID("Calculus", "PartialDerivative"), BindingPower: parser.None(), Token: "∂"},
	}
}
