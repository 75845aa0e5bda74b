package autocomplete

import "github.com/inkwell/mathcore/internal/doctree"

// Match is one rule's match against the input suffix ending at the caret.
type Match struct {
	Rule             Rule
	InputMatchLength int
	RuleMatchLength  int
}

// Complete reports whether the rule's entire trigger text has been typed.
func (m Match) Complete() bool {
	return m.RuleMatchLength == len(m.Rule.Trigger)
}

// FindMatches matches every rule's trigger against the run of Symbol
// nodes immediately before offset in row, stopping at the row's start or
// the first Container encountered walking backward (spec.md section
// 4.F). Matches whose RuleMatchLength is below minLength are discarded.
func FindMatches(rules []Rule, row doctree.Row, offset, minLength int) []Match {
	maxTrigger := 0
	for _, r := range rules {
		if len(r.Trigger) > maxTrigger {
			maxTrigger = len(r.Trigger)
		}
	}
	trailing := trailingSymbols(row, offset, maxTrigger)

	var out []Match
	for _, r := range rules {
		inputLen, ruleLen, ok := matchTrigger(trailing, r.Trigger)
		if !ok || ruleLen < minLength {
			continue
		}
		out = append(out, Match{Rule: r, InputMatchLength: inputLen, RuleMatchLength: ruleLen})
	}
	return out
}

// trailingSymbols collects up to maxBytes worth of the Symbol nodes
// immediately preceding offset, in chronological (left-to-right) order. A
// Container node walking backward stops collection early.
func trailingSymbols(row doctree.Row, offset, maxBytes int) []string {
	var reversed []string
	collected := 0
	for i := offset - 1; i >= 0; i-- {
		n := row.At(i)
		if !n.IsSymbol() {
			break
		}
		reversed = append(reversed, n.Symbol())
		collected += len(n.Symbol())
		if collected >= maxBytes {
			break
		}
	}
	out := make([]string, len(reversed))
	for i, s := range reversed {
		out[len(reversed)-1-i] = s
	}
	return out
}

// matchTrigger finds the longest trailing run of trailing (read in order)
// whose concatenation equals trigger's prefix of the same byte length,
// trying progressively shorter runs until one matches.
func matchTrigger(trailing []string, trigger string) (inputLen, ruleLen int, ok bool) {
	n := len(trailing)
	for l := n; l >= 1; l-- {
		suffix := trailing[n-l:]
		bytePos := 0
		matched := true
		for _, s := range suffix {
			end := bytePos + len(s)
			if end > len(trigger) || trigger[bytePos:end] != s {
				matched = false
				break
			}
			bytePos = end
		}
		if matched {
			return l, bytePos, true
		}
	}
	return 0, 0, false
}
