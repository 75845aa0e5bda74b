package collections

import "github.com/inkwell/mathcore/internal/parser"

// Default returns every built-in collection's rules concatenated in
// spec.md's collection order: built_in, core, arithmetic, calculus,
// comparison, collections, function, logic, string. A rule registered
// later in this list wins when more than one collection's rule matches
// the same input (spec.md section 9).
func Default() []parser.Rule {
	var rules []parser.Rule
	rules = append(rules, BuiltIn()...)
	rules = append(rules, Core()...)
	rules = append(rules, Arithmetic()...)
	rules = append(rules, Calculus()...)
	rules = append(rules, Comparison()...)
	rules = append(rules, Collections()...)
	rules = append(rules, Function()...)
	rules = append(rules, Logic()...)
	rules = append(rules, String()...)
	return rules
}
