// Package collections implements the rule collections that populate a
// parser.Parser's rule table (spec.md section 4.E): one file per
// collection, registered in priority order by Default.
package collections

import "github.com/inkwell/mathcore/internal/parser"

// BuiltIn is empty: BuiltIn::Operator, BuiltIn::Row and the container
// atoms/postfixes (BuiltIn::Fraction, BuiltIn::Sub, ...) are synthesized
// directly by the engine as it walks doctree container nodes, not by
// data-driven Rule entries. The collection still exists so Default's
// registration order mirrors spec.md's collection list.
func BuiltIn() []parser.Rule {
	return nil
}
