// Package autocomplete implements the input-prefix matcher and selection
// state behind live autocomplete suggestions and the perfect-match
// auto-transformation (spec.md section 4.F).
package autocomplete

import "github.com/inkwell/mathcore/internal/doctree"

// Rule is (trigger string, replacement node sequence): typing trigger's
// text verbatim and leaving the token splices replacement over it.
type Rule struct {
	Name        string
	Trigger     string
	Replacement []doctree.Node
}
