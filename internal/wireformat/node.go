package wireformat

import (
	"encoding/json"
	"fmt"

	"github.com/inkwell/mathcore/internal/doctree"
)

// wireNode is the tagged-union wire form of a doctree.Node: exactly one
// of symbol or container is set.
type wireNode struct {
	symbol    *string
	container *wireContainer
}

type wireContainer struct {
	Variant string
	Grid    wireGrid
}

// wireGrid mirrors `{"values":[…], "width":N}`: values is the grid's
// row-major list of rows (each itself a list of nodes), since a
// container's grid cells are Rows, not bare Nodes.
type wireGrid struct {
	Values [][]wireNode `json:"values"`
	Width  int          `json:"width"`
}

func toWireNode(n doctree.Node) wireNode {
	if n.IsSymbol() {
		s := n.Symbol()
		return wireNode{symbol: &s}
	}
	return wireNode{container: &wireContainer{
		Variant: n.Variant().String(),
		Grid:    toWireGrid(n.Grid()),
	}}
}

func toWireGrid(g doctree.Grid) wireGrid {
	n := g.Width() * g.Height()
	values := make([][]wireNode, n)
	for i := 0; i < n; i++ {
		row := g.AtIndex(i)
		nodes := row.Nodes()
		wn := make([]wireNode, len(nodes))
		for j, node := range nodes {
			wn[j] = toWireNode(node)
		}
		values[i] = wn
	}
	return wireGrid{Values: values, Width: g.Width()}
}

func (wn wireNode) toNode() (doctree.Node, error) {
	if wn.symbol != nil {
		return doctree.NewSymbol(*wn.symbol), nil
	}
	if wn.container == nil {
		return doctree.Node{}, fmt.Errorf("wireformat: node is neither Symbol nor Container")
	}
	variant, ok := variantByName[wn.container.Variant]
	if !ok {
		return doctree.Node{}, fmt.Errorf("wireformat: unknown container variant %q", wn.container.Variant)
	}
	g, err := wn.container.Grid.toGrid()
	if err != nil {
		return doctree.Node{}, err
	}
	return doctree.NewContainer(variant, g), nil
}

func (wg wireGrid) toGrid() (doctree.Grid, error) {
	height := 0
	if wg.Width > 0 {
		height = len(wg.Values) / wg.Width
	}
	rows := make([]doctree.Row, len(wg.Values))
	for i, wrow := range wg.Values {
		nodes := make([]doctree.Node, len(wrow))
		for j, wn := range wrow {
			n, err := wn.toNode()
			if err != nil {
				return doctree.Grid{}, err
			}
			nodes[j] = n
		}
		rows[i] = doctree.NewRow(nodes...)
	}
	return doctree.NewGrid(wg.Width, height, rows), nil
}

var variantByName = map[string]doctree.Variant{
	"fraction": doctree.VariantFraction,
	"root":     doctree.VariantRoot,
	"under":    doctree.VariantUnder,
	"over":     doctree.VariantOver,
	"sup":      doctree.VariantSup,
	"sub":      doctree.VariantSub,
	"table":    doctree.VariantTable,
}

func (wn wireNode) MarshalJSON() ([]byte, error) {
	if wn.symbol != nil {
		return json.Marshal(map[string]string{"Symbol": *wn.symbol})
	}
	return json.Marshal(map[string]any{
		"Container": []any{wn.container.Variant, wn.container.Grid},
	})
}

func (wn *wireNode) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if raw, ok := probe["Symbol"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		wn.symbol = &s
		return nil
	}
	if raw, ok := probe["Container"]; ok {
		var tuple [2]json.RawMessage
		if err := json.Unmarshal(raw, &tuple); err != nil {
			return err
		}
		var variant string
		if err := json.Unmarshal(tuple[0], &variant); err != nil {
			return err
		}
		var g wireGrid
		if err := json.Unmarshal(tuple[1], &g); err != nil {
			return err
		}
		wn.container = &wireContainer{Variant: variant, Grid: g}
		return nil
	}
	return fmt.Errorf("wireformat: node is neither Symbol nor Container")
}
