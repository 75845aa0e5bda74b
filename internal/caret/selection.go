package caret

import (
	"github.com/inkwell/mathcore/internal/doctree"
)

// Selection is the resolved region implied by a Caret: exactly one of Row
// or Grid is set.
type Selection struct {
	Row  *doctree.Range
	Grid *doctree.GridRange
}

// IsGrid reports whether this selection resolved to a grid rectangle.
func (s Selection) IsGrid() bool {
	return s.Grid != nil
}

func projectBounds(path doctree.RowIndices, n, offset int) (low, high int) {
	if len(path) == n {
		return offset, offset
	}
	idx := path[n].NodeIndex
	return idx, idx + 1
}

// rowSelectionRange resolves a caret to the range in the deepest common
// row of its two positions (spec.md section 4.C): a position that
// descends further than the common row contributes the whole node it
// descends into (its node index as one edge, node index+1 as the other).
func rowSelectionRange(c Caret) doctree.Range {
	n := doctree.CommonPrefixLen(c.Start.Path, c.End.Path)
	commonPath := c.Start.Path[:n]
	sLow, sHigh := projectBounds(c.Start.Path, n, c.Start.Offset)
	eLow, eHigh := projectBounds(c.End.Path, n, c.End.Offset)
	if c.Forward() {
		return doctree.NewRange(commonPath, sLow, eHigh)
	}
	return doctree.NewRange(commonPath, sHigh, eLow)
}

func minMax(a, b int) (lo, hi int) {
	if a <= b {
		return a, b
	}
	return b, a
}

// FromCaret resolves a caret against t into a Row or Grid selection. A row
// selection is promoted to a grid selection when it covers exactly one
// resizable-grid container node and both caret ends descend into it.
func FromCaret(t *doctree.Tree, c Caret) Selection {
	rowRange := rowSelectionRange(c)
	n := doctree.CommonPrefixLen(c.Start.Path, c.End.Path)
	commonPath := c.Start.Path[:n]

	lo, hi := rowRange.Ordered()
	if hi-lo == 1 && len(c.Start.Path) > n && len(c.End.Path) > n {
		containerIndex := lo
		startStep, endStep := c.Start.Path[n], c.End.Path[n]
		if startStep.NodeIndex == containerIndex && endStep.NodeIndex == containerIndex {
			if row, ok := t.RowAt(commonPath); ok && containerIndex >= 0 && containerIndex < row.Len() {
				node := row.At(containerIndex)
				if node.IsContainer() && node.Variant().Resizable() {
					g := node.Grid()
					sCoord := g.Coord(startStep.SubRowIndex)
					eCoord := g.Coord(endStep.SubRowIndex)
					minX, maxX := minMax(sCoord.X, eCoord.X)
					minY, maxY := minMax(sCoord.Y, eCoord.Y)
					return Selection{Grid: &doctree.GridRange{
						Path:           commonPath,
						ContainerIndex: containerIndex,
						XStart:         minX, YStart: minY,
						XEnd: maxX + 1, YEnd: maxY + 1,
					}}
				}
			}
		}
	}
	return Selection{Row: &rowRange}
}
