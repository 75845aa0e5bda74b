package doctree

import "github.com/rivo/uniseg"

// SplitGraphemes splits s into one Symbol Node per grapheme cluster, the
// unit insert_at_caret and paste insert as a single Node (spec.md section
// 4.G). Splitting is grapheme-aware so that, e.g., a combining accent or
// an emoji with modifiers lands in one Symbol rather than several.
func SplitGraphemes(s string) []Node {
	var out []Node
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, NewSymbol(g.Str()))
	}
	return out
}
