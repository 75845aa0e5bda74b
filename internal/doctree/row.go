package doctree

import (
	"strings"

	"github.com/inkwell/mathcore/internal/grid"
)

// Row is an ordered sequence of Nodes. Offsets into a Row ("positions")
// take integer values 0..len(Row) inclusive, addressing the gap between
// nodes rather than a node itself.
type Row struct {
	nodes []Node
}

// NewRow builds a Row from a slice of nodes. The slice is copied.
func NewRow(nodes ...Node) Row {
	out := make([]Node, len(nodes))
	copy(out, nodes)
	return Row{nodes: out}
}

// Len returns the number of nodes in the row.
func (r Row) Len() int {
	return len(r.nodes)
}

// At returns the node at index i.
func (r Row) At(i int) Node {
	return r.nodes[i]
}

// Nodes returns a defensive copy of the row's node slice.
func (r Row) Nodes() []Node {
	out := make([]Node, len(r.nodes))
	copy(out, r.nodes)
	return out
}

// ClampOffset clamps an offset to the valid [0, Len()] range.
func (r Row) ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > r.Len() {
		return r.Len()
	}
	return offset
}

// WithInserted returns a new Row with values spliced in at offset.
func (r Row) WithInserted(offset int, values []Node) Row {
	offset = r.ClampOffset(offset)
	out := make([]Node, 0, len(r.nodes)+len(values))
	out = append(out, r.nodes[:offset]...)
	out = append(out, values...)
	out = append(out, r.nodes[offset:]...)
	return Row{nodes: out}
}

// WithDeleted returns a new Row with count nodes removed starting at
// offset, along with the removed nodes (for invertibility).
func (r Row) WithDeleted(offset, count int) (Row, []Node) {
	offset = r.ClampOffset(offset)
	end := offset + count
	if end > r.Len() {
		end = r.Len()
	}
	removed := append([]Node(nil), r.nodes[offset:end]...)
	out := make([]Node, 0, len(r.nodes)-len(removed))
	out = append(out, r.nodes[:offset]...)
	out = append(out, r.nodes[end:]...)
	return Row{nodes: out}, removed
}

// WithNodeReplaced returns a new Row with the node at index replaced.
func (r Row) WithNodeReplaced(index int, node Node) Row {
	out := make([]Node, len(r.nodes))
	copy(out, r.nodes)
	out[index] = node
	return Row{nodes: out}
}

// Equal performs a deep structural comparison between two rows.
func (r Row) Equal(other Row) bool {
	if len(r.nodes) != len(other.nodes) {
		return false
	}
	for i := range r.nodes {
		if !r.nodes[i].Equal(other.nodes[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep, independent copy of the row.
func (r Row) Clone() Row {
	out := make([]Node, len(r.nodes))
	for i, n := range r.nodes {
		out[i] = n.Clone()
	}
	return Row{nodes: out}
}

// Grid is a row-major grid of Rows: the payload of every Container node.
type Grid = grid.Grid[Row]

// NewGrid builds a Grid of Rows. len(rows) must equal width*height.
func NewGrid(width, height int, rows []Row) Grid {
	return grid.New[Row](width, height, rows)
}

// Print renders the canonical printed form of a Row: `(row NODE...)`.
func (r Row) Print() string {
	var b strings.Builder
	b.WriteString("(row")
	for _, n := range r.nodes {
		b.WriteByte(' ')
		printNode(&b, n)
	}
	b.WriteByte(')')
	return b.String()
}

func printNode(b *strings.Builder, n Node) {
	if n.IsSymbol() {
		printQuoted(b, n.Symbol())
		return
	}
	g := n.Grid()
	b.WriteByte('(')
	b.WriteString(n.Variant().String())
	b.WriteByte(' ')
	b.WriteString(itoa(g.Width()))
	b.WriteByte('x')
	b.WriteString(itoa(g.Height()))
	for i := 0; i < g.Width()*g.Height(); i++ {
		b.WriteByte(' ')
		b.WriteString(g.AtIndex(i).Print())
	}
	b.WriteByte(')')
}

func printQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
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
