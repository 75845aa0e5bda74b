package autocomplete

import "github.com/sahilm/fuzzy"

// FilterRuleNames fuzzy-filters a list of rule identifiers against a
// query, for a host's rule-name search UI (get_rule_names, spec.md
// section 4.G). This is not part of the core prefix-match path: the live
// popup always uses FindMatches's exact byte-for-byte matching.
func FilterRuleNames(names []string, query string) []string {
	if query == "" {
		return names
	}
	matches := fuzzy.Find(query, names)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = names[m.Index]
	}
	return out
}
