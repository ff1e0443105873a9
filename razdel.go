package razdel

import (
	"log/slog"
	"sync"
	"unicode"

	"github.com/mawolabs/go-razdel/rules"
)

// Sentence is a segment of the original text with its [Start, End)
// rune offsets. Text is trimmed of surrounding whitespace; the offsets
// cover the trimmed span.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// Segmenter splits Russian text into sentences. It is safe for
// concurrent use.
type Segmenter struct {
	engine *rules.Engine
	logger *slog.Logger
}

// New creates a Segmenter. Construction compiles the rule table and
// builds the exception sets; it cannot fail.
func New(opts ...Option) *Segmenter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Segmenter{
		engine: rules.NewEngine(rules.NewLexicon(cfg.abbreviations...)),
		logger: cfg.logger,
	}
}

// FindBoundaries returns the rule-driven internal sentence boundaries
// of text as ascending rune offsets. The end of the text is not
// reported as a boundary: text with no boundary punctuation yields an
// empty result and is a single sentence.
func (s *Segmenter) FindBoundaries(text string) []int {
	return s.engine.FindBoundaries(text)
}

// QualityScore estimates segmentation plausibility in [0.0, 1.0] for
// boundaries previously obtained from FindBoundaries on the same text.
// An empty boundary list always scores 0.0.
func (s *Segmenter) QualityScore(text string, boundaries []int) float64 {
	return s.engine.QualityScore(text, boundaries)
}

// Sentenize splits text into sentences with rune offsets. The final
// sentence always ends at the end of the text.
func (s *Segmenter) Sentenize(text string) []Sentence {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	boundaries := s.engine.FindBoundaries(text)
	s.logger.Debug("segmented text",
		"runes", len(runes),
		"boundaries", len(boundaries))

	var sentences []Sentence
	start := 0
	for _, end := range boundaries {
		if sent, ok := makeSentence(runes, start, end); ok {
			sentences = append(sentences, sent)
		}
		start = end
	}
	if sent, ok := makeSentence(runes, start, len(runes)); ok {
		sentences = append(sentences, sent)
	}
	return sentences
}

// Segment splits text into trimmed sentence strings.
func (s *Segmenter) Segment(text string) []string {
	sentences := s.Sentenize(text)
	if sentences == nil {
		return nil
	}
	out := make([]string, len(sentences))
	for i, sent := range sentences {
		out[i] = sent.Text
	}
	return out
}

// SegmentWithBoundaries splits text into sentences and returns the
// boundary positions, including the end-of-text boundary closing the
// final sentence.
func (s *Segmenter) SegmentWithBoundaries(text string) (sentences []string, boundaries []int) {
	sentences = s.Segment(text)
	if len(sentences) == 0 {
		return nil, nil
	}
	boundaries = append(s.engine.FindBoundaries(text), len([]rune(text)))
	return sentences, boundaries
}

// makeSentence trims the piece runes[start:end] and reports whether
// anything remains.
func makeSentence(runes []rune, start, end int) (Sentence, bool) {
	if end > len(runes) {
		end = len(runes)
	}
	for start < end && unicode.IsSpace(runes[start]) {
		start++
	}
	for end > start && unicode.IsSpace(runes[end-1]) {
		end--
	}
	if start >= end {
		return Sentence{}, false
	}
	return Sentence{
		Text:  string(runes[start:end]),
		Start: start,
		End:   end,
	}, true
}

// defaultSegmenter is the shared instance behind the package-level
// functions. Construction is idempotent under concurrent first access.
var defaultSegmenter = sync.OnceValue(func() *Segmenter {
	return New()
})

// Sentenize splits text using the shared default Segmenter.
func Sentenize(text string) []Sentence {
	return defaultSegmenter().Sentenize(text)
}

// Segment splits text using the shared default Segmenter.
func Segment(text string) []string {
	return defaultSegmenter().Segment(text)
}

// FindBoundaries finds internal boundaries using the shared default
// Segmenter.
func FindBoundaries(text string) []int {
	return defaultSegmenter().FindBoundaries(text)
}

// QualityScore scores a segmentation using the shared default
// Segmenter.
func QualityScore(text string, boundaries []int) float64 {
	return defaultSegmenter().QualityScore(text, boundaries)
}
