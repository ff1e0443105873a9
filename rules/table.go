package rules

import "regexp"

// Rule is a single segmentation pattern. Higher Priority rules are
// scanned first; ties keep declaration order. A rule with Boundary set
// proposes a candidate at each match end; a rule without it is
// suppressive and vetoes candidates from lower-priority rules at its
// match positions.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Boundary    bool
	Priority    int
	Description string
}

// RE2 has no lookahead, so rules that depend on the character after the
// boundary capture that character in group 1; the boundary offset is
// the start of the group rather than the match end.
func defaultRules() []Rule {
	return []Rule{
		{
			Name:        "sentence_end_capital",
			Pattern:     regexp.MustCompile(`[.!?]+\s+([А-ЯЁ«"'(])`),
			Boundary:    true,
			Priority:    50,
			Description: "sentence-ending punctuation before a capital letter, quote or bracket",
		},
		{
			Name:        "paragraph_end",
			Pattern:     regexp.MustCompile(`[.!?]+\s*\n\s*\n`),
			Boundary:    true,
			Priority:    45,
			Description: "sentence-ending punctuation at a paragraph break",
		},
		{
			Name:        "question_exclamation",
			Pattern:     regexp.MustCompile(`[!?]+\s+`),
			Boundary:    true,
			Priority:    40,
			Description: "question or exclamation mark regardless of the following case",
		},
	}
}
