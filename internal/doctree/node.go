// Package doctree implements the structural document model: a recursively
// nested row/container tree with positional addressing and a focus
// (zipper-like) view over it.
//
// A Row is an ordered sequence of Nodes. A Node is either a Symbol (a single
// NFD-normalised grapheme cluster) or a Container holding a fixed- or
// variable-size Grid of child Rows. The tree is mutated only through the
// primitive edits in package docedit; doctree itself only exposes
// construction, traversal and the canonical printed form.
package doctree

import (
	"golang.org/x/text/unicode/norm"

	"github.com/inkwell/mathcore/internal/grid"
)

// Kind classifies a Node as a leaf Symbol or a Container.
type Kind uint8

const (
	// KindSymbol marks a leaf node carrying one grapheme cluster.
	KindSymbol Kind = iota
	// KindContainer marks a node carrying a grid of child rows.
	KindContainer
)

// Variant enumerates the container shapes the editor understands.
// Each variant fixes the grid dimensions except Table, the only resizable
// variant.
type Variant uint8

const (
	// VariantFraction is a 1x2 grid: numerator, denominator.
	VariantFraction Variant = iota
	// VariantRoot is a 2x1 grid: the order of the radicand is fixed by
	// this variant (index, radicand).
	VariantRoot
	// VariantUnder is a 1x2 grid: base, under-script.
	VariantUnder
	// VariantOver is a 1x2 grid: base, over-script.
	VariantOver
	// VariantSup is a 1x1 grid: superscript body.
	VariantSup
	// VariantSub is a 1x1 grid: subscript body.
	VariantSub
	// VariantTable is a WxH grid, the only resizable variant.
	VariantTable
)

// String names the variant the way the canonical printed form expects.
func (v Variant) String() string {
	switch v {
	case VariantFraction:
		return "fraction"
	case VariantRoot:
		return "root"
	case VariantUnder:
		return "under"
	case VariantOver:
		return "over"
	case VariantSup:
		return "sup"
	case VariantSub:
		return "sub"
	case VariantTable:
		return "table"
	default:
		return "unknown"
	}
}

// FixedSize reports the grid dimensions a non-resizable variant is locked
// to. The Table variant is resizable and has no fixed size; ok is false.
func (v Variant) FixedSize() (width, height int, ok bool) {
	switch v {
	case VariantFraction, VariantUnder, VariantOver:
		return 1, 2, true
	case VariantRoot:
		return 2, 1, true
	case VariantSup, VariantSub:
		return 1, 1, true
	case VariantTable:
		return 0, 0, false
	default:
		return 0, 0, false
	}
}

// Resizable reports whether the variant admits whole row/column insert and
// delete at its edges. Only Table is resizable.
func (v Variant) Resizable() bool {
	return v == VariantTable
}

// Node is either a Symbol leaf or a Container carrying a Grid of Rows.
// Node is a plain value: copying a Node copies its Grid header, but the
// Grid's row slice is shared until one of the copies is mutated by a
// primitive edit, which always rebuilds the slice it touches.
type Node struct {
	kind    Kind
	symbol  string
	variant Variant
	grid    Grid
}

// NewSymbol builds a Symbol node from a single human-visible character.
// The input is NFD-normalised per spec.
func NewSymbol(grapheme string) Node {
	return Node{kind: KindSymbol, symbol: norm.NFD.String(grapheme)}
}

// NewContainer builds a Container node of the given variant around a grid.
// NewContainer panics if grid's size does not match a non-resizable
// variant's fixed size; this is an internal invariant violation, not a user
// error, and callers (docedit) are expected to never trigger it.
func NewContainer(variant Variant, grid Grid) Node {
	if w, h, ok := variant.FixedSize(); ok {
		if grid.Width() != w || grid.Height() != h {
			panic("doctree: container grid size does not match fixed variant size")
		}
	} else if grid.Width() <= 0 {
		panic("doctree: resizable container grid must have width > 0")
	}
	return Node{kind: KindContainer, variant: variant, grid: grid}
}

// IsSymbol reports whether n is a leaf Symbol node.
func (n Node) IsSymbol() bool { return n.kind == KindSymbol }

// IsContainer reports whether n is a Container node.
func (n Node) IsContainer() bool { return n.kind == KindContainer }

// Symbol returns the grapheme cluster of a Symbol node. It is the empty
// string for a Container.
func (n Node) Symbol() string { return n.symbol }

// Variant returns the container variant. It is meaningless for a Symbol.
func (n Node) Variant() Variant { return n.variant }

// Grid returns the child grid of a Container. It is the zero Grid for a
// Symbol.
func (n Node) Grid() Grid { return n.grid }

// Equal performs a deep structural comparison between two nodes.
func (n Node) Equal(other Node) bool {
	if n.kind != other.kind {
		return false
	}
	if n.kind == KindSymbol {
		return n.symbol == other.symbol
	}
	if n.variant != other.variant {
		return false
	}
	return grid.Equal(n.grid, other.grid, Row.Equal)
}

// Clone returns a deep, independent copy of n.
func (n Node) Clone() Node {
	if n.kind == KindSymbol {
		return n
	}
	return Node{kind: n.kind, variant: n.variant, grid: grid.Map(n.grid, Row.Clone)}
}
