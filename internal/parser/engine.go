package parser

import (
	"github.com/inkwell/mathcore/internal/doctree"
	"github.com/inkwell/mathcore/internal/grid"
)

// subSupPostfixStrength is high enough that a trailing sub/sup container
// always attaches to whatever atom precedes it, regardless of the
// enclosing operator's own strength (spec.md section 8's worked example:
// "a" followed directly by a subscript parses as BuiltIn::Sub(a, ...)).
const subSupPostfixStrength = 1 << 20

var (
	errorMissingToken    = NewRuleID("Error", "MissingToken")
	errorMissingOperator = NewRuleID("Error", "MissingOperator")
	errorUnknownToken    = NewRuleID("Error", "UnknownToken")
	builtInRow           = NewRuleID("BuiltIn", "Row")
)

// errorMissingOperatorStrength is the fixed LeftInfix(100) precedence
// spec.md section 4.E assigns to the synthetic operator inserted between
// two atoms that appear adjacent with nothing between them.
const errorMissingOperatorStrength = 100

// functionApplyStrength binds tighter than every arithmetic infix, so
// `f(x) + 1` parses as `Add(Apply(f, (x)), 1)`.
const functionApplyStrength = 8

var functionApplyID = NewRuleID("Function", "Apply")

var containerRuleID = map[doctree.Variant]RuleID{
	doctree.VariantFraction: NewRuleID("BuiltIn", "Fraction"),
	doctree.VariantRoot:     NewRuleID("BuiltIn", "Root"),
	doctree.VariantUnder:    NewRuleID("BuiltIn", "Under"),
	doctree.VariantOver:     NewRuleID("BuiltIn", "Over"),
	doctree.VariantSub:      NewRuleID("BuiltIn", "Sub"),
	doctree.VariantSup:      NewRuleID("BuiltIn", "Sup"),
	doctree.VariantTable:    NewRuleID("BuiltIn", "Table"),
}

// Parser holds the combined rule table contributed by every registered
// collection, in registration order. When more than one rule matches the
// same input, the rule registered last wins (spec.md section 9), so the
// engine always searches the table from the end.
type Parser struct {
	rules []Rule
}

// NewParser builds a parser from one or more collections' rule slices,
// concatenated in priority order (lowest priority first).
func NewParser(collections ...[]Rule) *Parser {
	p := &Parser{}
	for _, c := range collections {
		p.rules = append(p.rules, c...)
	}
	return p
}

// ParseRow parses a whole row into a single syntax tree that tiles it
// exactly (spec.md section 4.E).
func (p *Parser) ParseRow(row doctree.Row) *SyntaxNode {
	node, _ := p.parseExpr(row, 0, 0)
	return node
}

// RuleNames lists every registered rule's identifier, in registration
// order (spec.md section 4.G's "get_rule_names").
func (p *Parser) RuleNames() []string {
	names := make([]string, len(p.rules))
	for i, r := range p.rules {
		names[i] = r.ID.String()
	}
	return names
}

func isSpace(n doctree.Node) bool {
	return n.IsSymbol() && n.Symbol() == " "
}

func skipSpace(row doctree.Row, pos int) int {
	for pos < row.Len() && isSpace(row.At(pos)) {
		pos++
	}
	return pos
}

func (p *Parser) parseExpr(row doctree.Row, pos, minBP int) (*SyntaxNode, int) {
	left, pos := p.parseAtom(row, pos)
	for {
		if node, newPos, ok := p.tryPostfix(row, pos, left, minBP); ok {
			left, pos = node, newPos
			continue
		}
		if node, newPos, ok := p.tryInfix(row, pos, left, minBP); ok {
			left, pos = node, newPos
			continue
		}
		if node, newPos, ok := p.tryMissingOperator(row, pos, left, minBP); ok {
			left, pos = node, newPos
			continue
		}
		break
	}
	return left, pos
}

// tryMissingOperator covers spec.md section 4.E's Error::MissingOperator:
// two atoms left adjacent with nothing recognised between them still tile
// the row, joined under a fixed LeftInfix(100) precedence. It never fires
// in front of a bracket's own closing delimiter, which the enclosing
// parseBracket call is waiting to consume itself, nor in front of an
// infix or postfix operator that tryInfix/tryPostfix skipped for binding
// too loosely at this level: an enclosing call consumes that operator.
func (p *Parser) tryMissingOperator(row doctree.Row, pos int, left *SyntaxNode, minBP int) (*SyntaxNode, int, bool) {
	if errorMissingOperatorStrength < minBP {
		return nil, pos, false
	}
	scanPos := skipSpace(row, pos)
	if scanPos >= row.Len() {
		return nil, pos, false
	}
	if n := row.At(scanPos); n.IsSymbol() && n.Symbol() == ")" {
		return nil, pos, false
	}
	for _, r := range p.rules {
		if r.BindingPower.Kind == BPNone || r.BindingPower.Kind == BPPrefix {
			continue
		}
		if _, ok := r.match(row, scanPos); ok {
			return nil, pos, false
		}
	}
	right, newPos := p.parseExpr(row, scanPos, errorMissingOperatorStrength+1)
	return &SyntaxNode{
		Rule:     errorMissingOperator,
		Kind:     PayloadChildren,
		Children: []*SyntaxNode{left, right},
		Start:    left.Start,
		End:      newPos,
	}, newPos, true
}

func (p *Parser) parseAtom(row doctree.Row, pos int) (*SyntaxNode, int) {
	pos = skipSpace(row, pos)
	if pos >= row.Len() {
		return &SyntaxNode{Rule: errorMissingToken, Kind: PayloadChildren, Start: pos, End: pos}, pos
	}

	node := row.At(pos)
	if node.IsContainer() {
		return p.parseContainerAtom(row, pos, node), pos + 1
	}

	for i := len(p.rules) - 1; i >= 0; i-- {
		r := p.rules[i]
		if r.BindingPower.Kind != BPNone && r.BindingPower.Kind != BPPrefix {
			continue
		}
		consumed, ok := r.match(row, pos)
		if !ok {
			continue
		}
		if r.BracketClose != "" {
			bracket := p.parseBracket(row, pos, consumed, r)
			return bracket, bracket.End
		}
		if r.BindingPower.Kind == BPPrefix {
			opLeaf := operatorLeaf(row, pos, consumed)
			operand, newPos := p.parseExpr(row, pos+consumed, r.BindingPower.Strength)
			return &SyntaxNode{
				Rule:     r.ID,
				Kind:     PayloadChildren,
				Children: []*SyntaxNode{opLeaf, operand},
				Start:    pos,
				End:      newPos,
			}, newPos
		}
		// Atom rule: a scanned or literal leaf.
		graphemes := make([]string, consumed)
		for k := 0; k < consumed; k++ {
			graphemes[k] = row.At(pos + k).Symbol()
		}
		return &SyntaxNode{
			Rule:      r.ID,
			Kind:      PayloadLeaf,
			LeafValue: Leaf{Kind: LeafSymbol, Graphemes: graphemes},
			Start:     pos,
			End:       pos + consumed,
		}, pos + consumed
	}

	return &SyntaxNode{
		Rule:      errorUnknownToken,
		Kind:      PayloadLeaf,
		LeafValue: Leaf{Kind: LeafSymbol, Graphemes: []string{unknownGraphemes(node)}},
		Start:     pos,
		End:       pos + 1,
	}, pos + 1
}

func unknownGraphemes(n doctree.Node) string {
	if n.IsSymbol() {
		return n.Symbol()
	}
	return ""
}

func (p *Parser) parseBracket(row doctree.Row, pos, openConsumed int, r Rule) *SyntaxNode {
	openLeaf := operatorLeaf(row, pos, openConsumed)
	innerStart := pos + openConsumed
	inner, afterInner := p.parseExpr(row, innerStart, 0)
	closePos := skipSpace(row, afterInner)
	closeConsumed, ok := matchLiteral(row, closePos, r.BracketClose)
	end := closePos
	var children []*SyntaxNode
	if ok {
		closeLeaf := &SyntaxNode{
			Rule:      builtInOperator,
			Kind:      PayloadLeaf,
			LeafValue: Leaf{Kind: LeafOperator, Graphemes: []string{r.BracketClose}},
			Start:     closePos,
			End:       closePos + closeConsumed,
		}
		end = closePos + closeConsumed
		children = []*SyntaxNode{openLeaf, inner, closeLeaf}
	} else {
		missing := &SyntaxNode{Rule: errorMissingToken, Kind: PayloadChildren, Start: closePos, End: closePos}
		children = []*SyntaxNode{openLeaf, inner, missing}
	}
	return &SyntaxNode{Rule: r.ID, Kind: PayloadChildren, Children: children, Start: pos, End: end}
}

func (p *Parser) parseContainerAtom(row doctree.Row, pos int, node doctree.Node) *SyntaxNode {
	rowsWrapper := p.parseContainerRows(node)
	id, ok := containerRuleID[node.Variant()]
	if !ok {
		id = errorUnknownToken
	}
	return &SyntaxNode{
		Rule:     id,
		Kind:     PayloadChildren,
		Children: []*SyntaxNode{rowsWrapper},
		Start:    pos,
		End:      pos + 1,
	}
}

// parseContainerRows recursively parses every sub-row of a container node
// and wraps the resulting grid in a BuiltIn::Row NewRows node.
func (p *Parser) parseContainerRows(node doctree.Node) *SyntaxNode {
	g := node.Grid()
	n := g.Width() * g.Height()
	parsed := make([]*SyntaxNode, n)
	for i := 0; i < n; i++ {
		parsed[i] = p.ParseRow(g.AtIndex(i))
	}
	return &SyntaxNode{
		Rule: builtInRow,
		Kind: PayloadNewRows,
		Rows: newSyntaxGrid(g.Width(), g.Height(), parsed),
	}
}

func newSyntaxGrid(width, height int, values []*SyntaxNode) SyntaxGrid {
	return grid.New[*SyntaxNode](width, height, values)
}

func (p *Parser) tryPostfix(row doctree.Row, pos int, left *SyntaxNode, minBP int) (*SyntaxNode, int, bool) {
	if pos < row.Len() {
		node := row.At(pos)
		if node.IsContainer() && (node.Variant() == doctree.VariantSub || node.Variant() == doctree.VariantSup) {
			if subSupPostfixStrength >= minBP {
				rowsWrapper := p.parseContainerRows(node)
				id := containerRuleID[node.Variant()]
				return &SyntaxNode{
					Rule:     id,
					Kind:     PayloadChildren,
					Children: []*SyntaxNode{left, rowsWrapper},
					Start:    left.Start,
					End:      pos + 1,
				}, pos + 1, true
			}
			return nil, pos, false
		}
	}

	if functionApplyStrength >= minBP {
		scanOpen := skipSpace(row, pos)
		if consumed, ok := matchLiteral(row, scanOpen, "("); ok {
			bracket := p.parseBracket(row, scanOpen, consumed, Rule{
				ID:           functionApplyID,
				BracketClose: ")",
			})
			node := &SyntaxNode{
				Rule:     functionApplyID,
				Kind:     PayloadChildren,
				Children: append([]*SyntaxNode{left}, bracket.Children...),
				Start:    left.Start,
				End:      bracket.End,
			}
			return node, bracket.End, true
		}
	}

	scanPos := skipSpace(row, pos)
	for i := len(p.rules) - 1; i >= 0; i-- {
		r := p.rules[i]
		if r.BindingPower.Kind != BPPostfix {
			continue
		}
		if r.BindingPower.Strength < minBP {
			continue
		}
		consumed, ok := r.match(row, scanPos)
		if !ok {
			continue
		}
		opLeaf := operatorLeaf(row, scanPos, consumed)
		return &SyntaxNode{
			Rule:     r.ID,
			Kind:     PayloadChildren,
			Children: []*SyntaxNode{left, opLeaf},
			Start:    left.Start,
			End:      scanPos + consumed,
		}, scanPos + consumed, true
	}
	return nil, pos, false
}

func (p *Parser) tryInfix(row doctree.Row, pos int, left *SyntaxNode, minBP int) (*SyntaxNode, int, bool) {
	scanPos := skipSpace(row, pos)
	for i := len(p.rules) - 1; i >= 0; i-- {
		r := p.rules[i]
		if r.BindingPower.Kind != BPLeftInfix && r.BindingPower.Kind != BPRightInfix {
			continue
		}
		if r.BindingPower.Strength < minBP {
			continue
		}
		consumed, ok := r.match(row, scanPos)
		if !ok {
			continue
		}
		opLeaf := operatorLeaf(row, scanPos, consumed)
		rightMinBP := r.BindingPower.Strength + 1
		if r.BindingPower.Kind == BPRightInfix {
			rightMinBP = r.BindingPower.Strength
		}
		right, newPos := p.parseExpr(row, scanPos+consumed, rightMinBP)
		return &SyntaxNode{
			Rule:     r.ID,
			Kind:     PayloadChildren,
			Children: []*SyntaxNode{left, opLeaf, right},
			Start:    left.Start,
			End:      newPos,
		}, newPos, true
	}
	return nil, pos, false
}
