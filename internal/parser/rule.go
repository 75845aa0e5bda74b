package parser

import "github.com/inkwell/mathcore/internal/doctree"

// BindingPowerKind selects how a rule participates in the Pratt loop.
type BindingPowerKind uint8

const (
	// BPNone marks an atom: it never extends an existing left operand.
	BPNone BindingPowerKind = iota
	// BPPrefix marks a rule that starts an expression and recurses for
	// its single operand (e.g. unary minus).
	BPPrefix
	// BPPostfix marks a rule that extends a left operand and never
	// recurses (e.g. factorial).
	BPPostfix
	// BPLeftInfix marks a left-associative binary operator.
	BPLeftInfix
	// BPRightInfix marks a right-associative binary operator.
	BPRightInfix
)

// BindingPower is a rule's precedence tag (spec.md section 9): None for
// atoms, and a signed strength for Prefix/Postfix/Left/RightInfix.
type BindingPower struct {
	Kind     BindingPowerKind
	Strength int
}

func None() BindingPower            { return BindingPower{Kind: BPNone} }
func Prefix(n int) BindingPower     { return BindingPower{Kind: BPPrefix, Strength: n} }
func Postfix(n int) BindingPower    { return BindingPower{Kind: BPPostfix, Strength: n} }
func LeftInfix(n int) BindingPower  { return BindingPower{Kind: BPLeftInfix, Strength: n} }
func RightInfix(n int) BindingPower { return BindingPower{Kind: BPRightInfix, Strength: n} }

// Rule is one entry a collection contributes to the parser's rule table.
// A rule either matches a literal run of symbol graphemes (Token) or, for
// scanned tokens like identifiers, number literals and string contents,
// supplies a Scan function. BracketClose, when set, turns an atom rule
// into an "ending parser": after recursively parsing its inner expression
// at binding power 0, the engine requires this literal to close it.
type Rule struct {
	ID           RuleID
	BindingPower BindingPower
	Token        string
	Scan         func(row doctree.Row, pos int) (consumed int, ok bool)

	BracketClose   string
	BracketCloseID RuleID
}

func (r Rule) match(row doctree.Row, pos int) (consumed int, ok bool) {
	if r.Scan != nil {
		return r.Scan(row, pos)
	}
	return matchLiteral(row, pos, r.Token)
}

// matchLiteral greedily consumes consecutive Symbol nodes starting at pos
// whose concatenated graphemes equal token exactly.
func matchLiteral(row doctree.Row, pos int, token string) (consumed int, ok bool) {
	if token == "" {
		return 0, false
	}
	acc := ""
	i := pos
	for len(acc) < len(token) {
		if i >= row.Len() {
			return 0, false
		}
		node := row.At(i)
		if !node.IsSymbol() {
			return 0, false
		}
		acc += node.Symbol()
		i++
	}
	if acc != token {
		return 0, false
	}
	return i - pos, true
}

func operatorLeaf(row doctree.Row, pos, consumed int) *SyntaxNode {
	graphemes := make([]string, consumed)
	for i := 0; i < consumed; i++ {
		graphemes[i] = row.At(pos + i).Symbol()
	}
	return &SyntaxNode{
		Rule:      builtInOperator,
		Kind:      PayloadLeaf,
		LeafValue: Leaf{Kind: LeafOperator, Graphemes: graphemes},
		Start:     pos,
		End:       pos + consumed,
	}
}

var builtInOperator = NewRuleID("BuiltIn", "Operator")
