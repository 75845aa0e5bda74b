// Package parser implements the structural Pratt parser over doctree rows
// (spec.md section 4.E): rule collections contribute atom/prefix/infix/
// postfix token rules, and ParseRow produces a SyntaxNode tree that tiles
// the input row exactly.
package parser

import (
	"strings"

	"github.com/inkwell/mathcore/internal/grid"
)

// RuleID is a namespaced rule identifier, displayed with "::" separators
// (spec.md section 6), e.g. {"Arithmetic", "Add"} -> "Arithmetic::Add".
type RuleID []string

// NewRuleID builds a RuleID from its namespace segments.
func NewRuleID(segments ...string) RuleID {
	return append(RuleID(nil), segments...)
}

// String renders the identifier with "::" separators.
func (id RuleID) String() string {
	return strings.Join([]string(id), "::")
}

// LeafKind distinguishes a plain symbol leaf (a variable, a number's
// digits, a string's contents) from an operator leaf (punctuation
// consumed while building a prefix/infix/postfix/bracket node).
type LeafKind uint8

const (
	LeafSymbol LeafKind = iota
	LeafOperator
)

// Leaf is the payload of a leaf SyntaxNode: the grapheme clusters it
// consumed from the input row.
type Leaf struct {
	Kind      LeafKind
	Graphemes []string
}

// PayloadKind selects which of SyntaxNode's payload fields is meaningful.
type PayloadKind uint8

const (
	// PayloadChildren holds an ordered list of child syntax nodes.
	PayloadChildren PayloadKind = iota
	// PayloadLeaf holds a Leaf.
	PayloadLeaf
	// PayloadNewRows holds a grid of syntax nodes: the parse result of a
	// container input node's sub-rows.
	PayloadNewRows
)

// SyntaxGrid is the grid of syntax nodes carried by a NewRows payload.
type SyntaxGrid = grid.Grid[*SyntaxNode]

// SyntaxNode is one node of the parsed syntax tree. Every node carries a
// namespaced rule identifier, exactly one payload, and the half-open
// offset range ([Start,End)) it covers in its containing row. Children
// ranges are sorted, contiguous and non-overlapping; a parent's range
// covers them exactly; a "missing token" is a zero-range error node, never
// a Leaf with an empty Graphemes.
type SyntaxNode struct {
	Rule       RuleID
	Kind       PayloadKind
	Children   []*SyntaxNode
	LeafValue  Leaf
	Rows       SyntaxGrid
	Start, End int
}

// Print renders the canonical syntax-tree printed form (spec.md
// section 6): `(RuleName ARGS…)`, a NewRows payload as `WxH ROW…`, a leaf
// as a quoted grapheme sequence.
func (n *SyntaxNode) Print() string {
	var b strings.Builder
	n.print(&b)
	return b.String()
}

func (n *SyntaxNode) print(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Rule.String())
	switch n.Kind {
	case PayloadLeaf:
		b.WriteByte(' ')
		printQuotedGraphemes(b, n.LeafValue.Graphemes)
	case PayloadChildren:
		for _, c := range n.Children {
			b.WriteByte(' ')
			c.print(b)
		}
	case PayloadNewRows:
		b.WriteByte(' ')
		b.WriteString(itoa(n.Rows.Width()))
		b.WriteByte('x')
		b.WriteString(itoa(n.Rows.Height()))
		for i := 0; i < n.Rows.Width()*n.Rows.Height(); i++ {
			b.WriteByte(' ')
			n.Rows.AtIndex(i).print(b)
		}
	}
	b.WriteByte(')')
}

func printQuotedGraphemes(b *strings.Builder, graphemes []string) {
	b.WriteByte('"')
	for _, g := range graphemes {
		for _, r := range g {
			switch r {
			case '"':
				b.WriteString(`\"`)
			case '\\':
				b.WriteString(`\\`)
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var digits [20]byte
	i := len(digits)
	for v > 0 {
		i--
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		digits[i] = '-'
	}
	return string(digits[i:])
}
