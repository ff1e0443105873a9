package rules

import "unicode"

// Penalty weights for segmentation failure signatures.
const (
	penaltyShortSentence  = 0.1  // under 3 runes, almost always a bad split
	penaltyLowercaseStart = 0.15 // sentences do not start lower-case
	penaltyAbbrFragment   = 0.2  // short piece ending in "abbr." is a split abbreviation
)

// QualityScore estimates how plausible a segmentation is, in [0.0,
// 1.0]. It is a diagnostic only: the score never feeds back into the
// boundary decision. An empty boundary list scores 0.0 even when zero
// boundaries is the right answer for a one-sentence text; callers rely
// on that behavior, so it is kept.
func (e *Engine) QualityScore(text string, boundaries []int) float64 {
	if len(boundaries) == 0 {
		return 0.0
	}

	var penalties float64
	for _, sent := range splitByBoundaries(text, boundaries) {
		runes := []rune(sent)
		if len(runes) < 3 {
			penalties += penaltyShortSentence
		}
		if len(runes) > 0 && unicode.IsLower(runes[0]) {
			penalties += penaltyLowercaseStart
		}
		if len(runes) < 10 && e.abbrPeriod.MatchString(sent) {
			penalties += penaltyAbbrFragment
		}
	}

	score := 1.0 - penalties
	if score < 0.0 {
		score = 0.0
	}
	return score
}

// splitByBoundaries cuts text at the given rune offsets, trimming each
// piece and dropping empty ones. Offsets outside the text are clamped.
func splitByBoundaries(text string, boundaries []int) []string {
	runes := []rune(text)
	var sentences []string

	start := 0
	for _, b := range append(append([]int(nil), boundaries...), len(runes)) {
		if b < start {
			continue
		}
		if b > len(runes) {
			b = len(runes)
		}
		piece := trimSpaceRunes(runes[start:b])
		if piece != "" {
			sentences = append(sentences, piece)
		}
		start = b
	}
	return sentences
}

func trimSpaceRunes(runes []rune) string {
	i, j := 0, len(runes)
	for i < j && unicode.IsSpace(runes[i]) {
		i++
	}
	for j > i && unicode.IsSpace(runes[j-1]) {
		j--
	}
	return string(runes[i:j])
}
