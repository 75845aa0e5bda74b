package collections

import (
	"github.com/inkwell/mathcore/internal/autocomplete"
	"github.com/inkwell/mathcore/internal/doctree"
)

func emptyRows(n int) []doctree.Row {
	rows := make([]doctree.Row, n)
	for i := range rows {
		rows[i] = doctree.NewRow()
	}
	return rows
}

// DefaultAutocompleteRules gathers every collection's autocomplete rules,
// in the same collection order Default() uses for parse rules (spec.md
// section 4.F, "the set of rules is gathered from all registered
// collections").
func DefaultAutocompleteRules() []autocomplete.Rule {
	var rules []autocomplete.Rule
	rules = append(rules, coreAutocomplete()...)
	rules = append(rules, arithmeticAutocomplete()...)
	return rules
}

// coreAutocomplete offers "sqrt" as a shorthand for a root container.
func coreAutocomplete() []autocomplete.Rule {
	root := doctree.NewContainer(doctree.VariantRoot, doctree.NewGrid(2, 1, emptyRows(2)))
	return []autocomplete.Rule{
		{Name: "Core::Sqrt", Trigger: "sqrt", Replacement: []doctree.Node{root}},
	}
}

// arithmeticAutocomplete offers "/" as a shorthand for a fraction
// container, per spec.md section 4.F's worked example.
func arithmeticAutocomplete() []autocomplete.Rule {
	fraction := doctree.NewContainer(doctree.VariantFraction, doctree.NewGrid(1, 2, emptyRows(2)))
	return []autocomplete.Rule{
		{Name: "Arithmetic::Fraction", Trigger: "/", Replacement: []doctree.Node{fraction}},
	}
}
