package doctree

// ReplaceRow rebuilds the tree so that the row addressed by path becomes
// newRow, reconstructing every ancestor node along the way. It reports
// false if path does not address a valid row.
func (t *Tree) ReplaceRow(path RowIndices, newRow Row) bool {
	root, ok := rebuildRow(t.Root, path, newRow)
	if !ok {
		return false
	}
	t.Root = root
	return true
}

func rebuildRow(row Row, path RowIndices, newRow Row) (Row, bool) {
	if len(path) == 0 {
		return newRow, true
	}
	step := path[0]
	if step.NodeIndex < 0 || step.NodeIndex >= row.Len() {
		return Row{}, false
	}
	node := row.At(step.NodeIndex)
	if !node.IsContainer() {
		return Row{}, false
	}
	g := node.Grid()
	if step.SubRowIndex < 0 || step.SubRowIndex >= g.Width()*g.Height() {
		return Row{}, false
	}
	childRow := g.AtIndex(step.SubRowIndex)
	updatedChild, ok := rebuildRow(childRow, path[1:], newRow)
	if !ok {
		return Row{}, false
	}
	updatedGrid := g.WithAt(g.Coord(step.SubRowIndex), updatedChild)
	updatedNode := NewContainer(node.Variant(), updatedGrid)
	return row.WithNodeReplaced(step.NodeIndex, updatedNode), true
}
