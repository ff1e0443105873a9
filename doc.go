// Package razdel segments Russian text into sentences using
// hand-curated boundary rules with abbreviation, initials and decimal
// exception handling.
//
// # Quick Start
//
//	seg := razdel.New()
//
//	for _, s := range seg.Sentenize("Первое. Второе. Третье.") {
//	    fmt.Printf("[%d:%d) %s\n", s.Start, s.End, s.Text)
//	}
//
// Package-level functions delegate to a lazily-built shared instance:
//
//	sentences := razdel.Segment(text)
//
// # Offsets
//
// All boundary positions and sentence offsets are rune (code point)
// offsets into the original text, not byte offsets.
//
// # Thread Safety
//
// A Segmenter holds only compiled patterns and immutable exception
// sets after construction, so it is safe for concurrent use without
// locking.
package razdel
