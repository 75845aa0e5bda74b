package doctree

// Tree owns the root row of a document. It is the only owning structure in
// this package; everything else (Focus, Position, Range) borrows it.
type Tree struct {
	Root Row
}

// NewTree builds an empty tree (a single empty root row), per spec.md
// section 3's lifecycle: "The tree is created empty".
func NewTree() *Tree {
	return &Tree{Root: NewRow()}
}

// RowAt walks the tree from the root down the given path and returns the
// row it addresses. ok is false if the path is invalid (an index out of
// range, or descending into a Symbol, or into a Container at a sub-row
// index it does not have).
func (t *Tree) RowAt(path RowIndices) (Row, bool) {
	current := t.Root
	for _, step := range path {
		if step.NodeIndex < 0 || step.NodeIndex >= current.Len() {
			return Row{}, false
		}
		node := current.At(step.NodeIndex)
		if !node.IsContainer() {
			return Row{}, false
		}
		g := node.Grid()
		if step.SubRowIndex < 0 || step.SubRowIndex >= g.Width()*g.Height() {
			return Row{}, false
		}
		current = g.AtIndex(step.SubRowIndex)
	}
	return current, true
}

// Focus is a non-owning walker over a Tree, addressable by RowIndices. It
// is rebuilt on demand from a (path, tree) pair rather than held as a
// linked, owning structure: the path fully determines the focus.
type Focus struct {
	tree *Tree
	path RowIndices
}

// NewFocus builds a Focus at the root of the tree.
func NewFocus(t *Tree) Focus {
	return Focus{tree: t, path: nil}
}

// Path returns the RowIndices path from the root to this focus.
func (f Focus) Path() RowIndices {
	return f.path.Clone()
}

// Row returns the row this focus addresses. It panics if the focus's path
// is no longer valid against the tree (an internal invariant violation:
// the caller held a stale focus across a structural edit without
// re-deriving it).
func (f Focus) Row() Row {
	row, ok := f.tree.RowAt(f.path)
	if !ok {
		panic("doctree: focus path is no longer valid")
	}
	return row
}

// WalkDown chains descents through a path of (node index, sub-row index)
// steps, returning the resulting row focus.
func (f Focus) WalkDown(path RowIndices) Focus {
	return Focus{tree: f.tree, path: append(f.path.Clone(), path...)}
}

// NodeFocus addresses a single node within a row.
type NodeFocus struct {
	tree  *Tree
	path  RowIndices
	index int
}

// DescendNode focuses the node at index within this row.
func (f Focus) DescendNode(index int) (NodeFocus, bool) {
	row := f.Row()
	if index < 0 || index >= row.Len() {
		return NodeFocus{}, false
	}
	return NodeFocus{tree: f.tree, path: f.path, index: index}, true
}

// Node returns the node this NodeFocus addresses.
func (nf NodeFocus) Node() Node {
	row, ok := nf.tree.RowAt(nf.path)
	if !ok {
		panic("doctree: node focus path is no longer valid")
	}
	return row.At(nf.index)
}

// Index returns the node's index within its parent row.
func (nf NodeFocus) Index() int {
	return nf.index
}

// ParentPath returns the path to the row containing this node.
func (nf NodeFocus) ParentPath() RowIndices {
	return nf.path.Clone()
}

// DescendRow focuses the sub-row at subRowIndex within this container
// node. ok is false for a Symbol, or an out-of-range sub-row index.
func (nf NodeFocus) DescendRow(subRowIndex int) (Focus, bool) {
	node := nf.Node()
	if !node.IsContainer() {
		return Focus{}, false
	}
	g := node.Grid()
	if subRowIndex < 0 || subRowIndex >= g.Width()*g.Height() {
		return Focus{}, false
	}
	path := append(nf.path.Clone(), RowIndex{NodeIndex: nf.index, SubRowIndex: subRowIndex})
	return Focus{tree: nf.tree, path: path}, true
}

// Parent returns the Focus of the row containing this node - the inverse
// of DescendNode.
func (nf NodeFocus) Parent() Focus {
	return Focus{tree: nf.tree, path: nf.path}
}

// Ascend discards the last path segment, returning the node focus whose
// DescendRow produced this row focus, and whether one existed (false at
// the tree root).
func (f Focus) Ascend() (NodeFocus, bool) {
	nf, _, ok := f.AscendStep()
	return nf, ok
}

// AscendStep is Ascend, additionally returning the sub-row index this row
// occupied within its parent container's grid - its flat position among
// the container's sibling rows, needed to find horizontally-adjacent rows
// within the same grid.
func (f Focus) AscendStep() (nodeFocus NodeFocus, subRowIndex int, ok bool) {
	if len(f.path) == 0 {
		return NodeFocus{}, 0, false
	}
	last := f.path[len(f.path)-1]
	parentPath := f.path[:len(f.path)-1]
	return NodeFocus{tree: f.tree, path: parentPath.Clone(), index: last.NodeIndex}, last.SubRowIndex, true
}

// AdjacentIndex returns the node index that would be crossed by moving
// from offset in the given horizontal direction within this row, or ok
// false at the row's edge.
//
// dir is +1 for rightward motion, -1 for leftward motion.
func (f Focus) AdjacentIndex(offset, dir int) (index int, ok bool) {
	row := f.Row()
	if dir > 0 {
		if offset >= row.Len() {
			return 0, false
		}
		return offset, true
	}
	if offset <= 0 {
		return 0, false
	}
	return offset - 1, true
}
