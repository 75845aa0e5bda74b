package collections

import "github.com/inkwell/mathcore/internal/parser"

// Function is a marker collection: function application (`f(x, y)`) is
// recognised directly by the engine (an atom immediately followed by a
// round-bracket group attaches as Function::Apply, spec.md section 4.E's
// "trailing postfix" note), since it needs the bracket group's own
// recursive inner parse rather than the generic operator-leaf postfix
// shape every other collection uses. This collection exists only so
// Default's registration order matches spec.md's collection list.
func Function() []parser.Rule {
	return nil
}
