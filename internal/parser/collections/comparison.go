package collections

import "github.com/inkwell/mathcore/internal/parser"

// Comparison contributes the relational operators, all non-chaining
// left-infix at a strength below the arithmetic operators so `a + b = c`
// parses as `Equal(Add(a,b), c)` rather than `Add(a, Equal(b,c))`.
func Comparison() []parser.Rule {
	const strength = 1
	return []parser.Rule{
		{ID: parser.NewRuleID("Comparison", "Equal"), BindingPower: parser.LeftInfix(strength), Token: "="},
		{ID: parser.NewRuleID("Comparison", "NotEqual"), BindingPower: parser.LeftInfix(strength), Token: "≠"},
		{ID: parser.NewRuleID("Comparison", "Less"), BindingPower: parser.LeftInfix(strength), Token: "<"},
		{ID: parser.NewRuleID("Comparison", "Greater"), BindingPower: parser.LeftInfix(strength), Token: ">"},
		{ID: parser.NewRuleID("Comparison", "LessEqual"), BindingPower: parser.LeftInfix(strength), Token: "≤"},
		{ID: parser.NewRuleID("Comparison", "GreaterEqual"), BindingPower: parser.LeftInfix(strength), Token: "≥"},
	}
}
