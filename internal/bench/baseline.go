package bench

import "regexp"

// baselinePattern splits at any sentence-ending punctuation followed by
// whitespace, with no exception handling. This is the floor the rule
// engine is expected to beat on Russian text.
var baselinePattern = regexp.MustCompile(`[.!?]+\s+`)

// BaselineBoundaries returns the naive splitter's boundary offsets, in
// runes, for comparison against the rule engine.
func BaselineBoundaries(text string) []int {
	if text == "" {
		return nil
	}

	toRune := runeIndex(text)
	var boundaries []int
	for _, loc := range baselinePattern.FindAllStringIndex(text, -1) {
		boundaries = append(boundaries, toRune[loc[1]])
	}
	return boundaries
}

// runeIndex maps each byte offset that starts a rune (plus len(s)) to
// its rune offset.
func runeIndex(s string) []int {
	idx := make([]int, len(s)+1)
	n := 0
	for i := range s {
		idx[i] = n
		n++
	}
	idx[len(s)] = n
	return idx
}
