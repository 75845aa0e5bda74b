package collections

import "github.com/inkwell/mathcore/internal/parser"

// Logic contributes propositional connectives and the two fixed truth
// constants. Precedence follows the usual convention: not binds tighter
// than and, which binds tighter than or, which binds tighter than the
// implication arrows.
func Logic() []parser.Rule {
	return []parser.Rule{
		{ID: parser.NewRuleID("Logic", "Top"), BindingPower: parser.None(), Token: "⊤"},
		{ID: parser.NewRuleID("Logic", "Bottom"), BindingPower: parser.None(), Token: "⊥"},
		{ID: parser.NewRuleID("Logic", "Not"), BindingPower: parser.Prefix(9), Token: "¬"},
		{ID: parser.NewRuleID("Logic", "And"), BindingPower: parser.LeftInfix(4), Token: "∧"},
		{ID: parser.NewRuleID("Logic", "Or"), BindingPower: parser.LeftInfix(3), Token: "∨"},
		{ID: parser.NewRuleID("Logic", "Implies"), BindingPower: parser.RightInfix(1), Token: "⟹"},
		{ID: parser.NewRuleID("Logic", "Iff"), BindingPower: parser.LeftInfix(1), Token: "⇔"},
	}
}
