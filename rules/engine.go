// Package rules implements the segmentation rule engine for Russian
// text: a prioritized table of boundary patterns, the boundary scan,
// and the blocking logic that suppresses false positives caused by
// abbreviations, initials and decimal numbers.
//
// All positions produced and consumed by this package are rune (code
// point) offsets into the original text, not byte offsets.
package rules

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const (
	// maxAbbreviationLen bounds the backward substring scan of the
	// abbreviation check. Russian non-terminal abbreviations run from
	// one rune ("г") to around nine ("и т.д" with its inner period).
	maxAbbreviationLen = 10

	// initialsWindow is the number of runes inspected on each side of
	// a candidate when searching for an initials-plus-surname shape.
	initialsWindow = 20
)

// initialsPattern matches the canonical Russian initials shape:
// one or two single capital letters each followed by a period, then a
// capitalized word ("А. С. Пушкин"). Go's \b is ASCII-only, so the
// left word edge is expressed as start-of-window or a non-letter.
var initialsPattern = regexp.MustCompile(`(?:^|\PL)[А-ЯЁ]\.\s*(?:[А-ЯЁ]\.\s*)?[А-ЯЁ][а-яё]+`)

// Engine applies the rule table and the exception sets to raw text.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	rules      []Rule
	lexicon    *Lexicon
	abbrPeriod *regexp.Regexp
}

// NewEngine compiles an engine over the given lexicon. A nil lexicon
// gets the standard sets.
func NewEngine(lexicon *Lexicon) *Engine {
	if lexicon == nil {
		lexicon = NewLexicon()
	}

	rs := defaultRules()
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].Priority > rs[j].Priority
	})

	return &Engine{
		rules:      rs,
		lexicon:    lexicon,
		abbrPeriod: compileAbbrPeriod(lexicon),
	}
}

// compileAbbrPeriod builds the "known abbreviation followed by a
// period" pattern used by the quality scorer. Entries are sorted
// longest-first so the alternation is deterministic regardless of map
// iteration order.
func compileAbbrPeriod(lexicon *Lexicon) *regexp.Regexp {
	abbrs := lexicon.Abbreviations()
	sort.Slice(abbrs, func(i, j int) bool {
		if len(abbrs[i]) != len(abbrs[j]) {
			return len(abbrs[i]) > len(abbrs[j])
		}
		return abbrs[i] < abbrs[j]
	})

	quoted := make([]string, len(abbrs))
	for i, a := range abbrs {
		quoted[i] = regexp.QuoteMeta(a)
	}
	return regexp.MustCompile(`(?:^|\PL)(?:` + strings.Join(quoted, "|") + `)\.`)
}

// Rules returns the rule table in scan order (descending priority).
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Lexicon returns the exception sets the engine was built with.
func (e *Engine) Lexicon() *Lexicon { return e.lexicon }

// FindBoundaries scans text and returns the accepted sentence-boundary
// offsets in ascending order. Each offset means "the sentence ends
// here; the next rune starts a new sentence". Empty text and text
// without boundary punctuation yield no offsets; the caller treats the
// whole text as a single sentence.
func (e *Engine) FindBoundaries(text string) []int {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	toRune := runeIndex(text)

	var boundaries []int
	accepted := make(map[int]bool)
	suppressed := make(map[int]bool)

	for _, rule := range e.rules {
		for _, loc := range rule.Pattern.FindAllStringSubmatchIndex(text, -1) {
			end := loc[1]
			if len(loc) > 2 && loc[2] >= 0 {
				// Trailing-context group: the boundary sits where the
				// captured context begins.
				end = loc[2]
			}
			pos := toRune[end]

			if !rule.Boundary {
				suppressed[pos] = true
				continue
			}
			if accepted[pos] || suppressed[pos] {
				continue
			}
			if e.blocked(runes, pos) {
				continue
			}
			accepted[pos] = true
			boundaries = append(boundaries, pos)
		}
	}

	sort.Ints(boundaries)
	return boundaries
}

// blocked decides whether a candidate offset is a false positive. The
// checks run in fixed order and short-circuit; heuristics never fail,
// unmatched context just falls through to "not blocked".
func (e *Engine) blocked(runes []rune, pos int) bool {
	if e.endsInAbbreviation(runes, pos) {
		return true
	}
	if e.inInitialsContext(runes, pos) {
		return true
	}
	// Decimal adjacency: never split inside "3.14".
	if pos > 0 && pos < len(runes) &&
		unicode.IsDigit(runes[pos-1]) && unicode.IsDigit(runes[pos]) {
		return true
	}
	return false
}

// endsInAbbreviation walks back from the candidate over whitespace and
// the triggering punctuation run, then tries every substring of length
// 1..maxAbbreviationLen ending at the rune before the punctuation
// against the abbreviation set.
func (e *Engine) endsInAbbreviation(runes []rune, pos int) bool {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	hadPunct := false
	for i > 0 && isEndPunct(runes[i-1]) {
		hadPunct = true
		i--
	}
	if !hadPunct {
		return false
	}

	for n := 1; n <= maxAbbreviationLen && n <= i; n++ {
		if e.lexicon.IsAbbreviation(string(runes[i-n : i])) {
			return true
		}
	}
	return false
}

// inInitialsContext searches a symmetric window around the candidate
// for an initials-plus-surname shape. The search is unanchored: the
// shape may sit anywhere in the window, not only at the candidate.
func (e *Engine) inInitialsContext(runes []rune, pos int) bool {
	lo := pos - initialsWindow
	if lo < 0 {
		lo = 0
	}
	hi := pos + initialsWindow
	if hi > len(runes) {
		hi = len(runes)
	}
	return initialsPattern.MatchString(string(runes[lo:hi]))
}

func isEndPunct(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// runeIndex maps each byte offset that starts a rune (plus len(s)) to
// its rune offset. Regexp match positions always land on rune starts.
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
