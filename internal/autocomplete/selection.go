package autocomplete

// Direction selects which way move_in_autocomplete shifts the highlight.
type Direction int

const (
	Up Direction = iota
	Down
)

// State remembers which rule is highlighted in the autocomplete popup
// across match-set refreshes (spec.md section 4.F): when the matches
// refresh, the previously selected rule's new position is kept if it is
// still present, else the first match is selected.
type State struct {
	matches  []Match
	selected int
}

// Open starts a fresh autocomplete session with the given match set.
func Open(matches []Match) State {
	return State{matches: matches, selected: 0}
}

// Refresh replaces the match set, re-selecting the previously highlighted
// rule by name if it is still present, else falling back to the first
// match (or no selection, if matches is empty).
func (s State) Refresh(matches []Match) State {
	next := State{matches: matches, selected: 0}
	if len(matches) == 0 {
		return next
	}
	if len(s.matches) > 0 && s.selected < len(s.matches) {
		prevName := s.matches[s.selected].Rule.Name
		for i, m := range matches {
			if m.Rule.Name == prevName {
				next.selected = i
				return next
			}
		}
	}
	return next
}

// Matches returns the current match set.
func (s State) Matches() []Match { return s.matches }

// Selected returns the currently highlighted match, and false if there
// are no matches to select.
func (s State) Selected() (Match, bool) {
	if len(s.matches) == 0 {
		return Match{}, false
	}
	return s.matches[s.selected], true
}

// Move shifts the highlight up or down, clamping at either end.
func (s State) Move(dir Direction) State {
	if len(s.matches) == 0 {
		return s
	}
	next := s
	if dir == Up {
		if next.selected > 0 {
			next.selected--
		}
		return next
	}
	if next.selected < len(next.matches)-1 {
		next.selected++
	}
	return next
}
