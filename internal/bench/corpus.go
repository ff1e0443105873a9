// Package bench evaluates sentence segmentation against gold corpora.
//
// Corpus files are UTF-8 text: optional "# Key: value" header comments,
// then one gold sentence per line. A blank line between sentences marks
// a paragraph break. The loader reconstructs the running text (single
// space between sentences, blank line between paragraphs) and the gold
// boundary offsets, in runes, where each following sentence starts.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Header contains metadata parsed from corpus file header comments.
type Header struct {
	Source string
	Title  string
}

// ParseHeader extracts metadata from leading "#" comment lines.
// Returns the header and the remaining body text.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	body := strings.TrimSpace(text[bodyStart:])
	return h, body, nil
}

// Document is a loaded corpus text with its gold segmentation.
type Document struct {
	ID         string // filename without extension
	Source     string
	Title      string
	Text       string   // reconstructed running text
	Sentences  []string // gold sentences in order
	Boundaries []int    // gold internal boundaries, rune offsets
}

// BuildDocument assembles the running text and gold boundaries from
// sentence lines. A blank line marks a paragraph break.
func BuildDocument(lines []string) (text string, sentences []string, boundaries []int) {
	var b strings.Builder
	pendingSep := ""

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if pendingSep != "" {
				pendingSep = "\n\n"
			}
			continue
		}

		if pendingSep != "" {
			b.WriteString(pendingSep)
			// The boundary sits where the new sentence starts, matching
			// the scanner's candidate positions (after the separator).
			boundaries = append(boundaries, utf8.RuneCountInString(b.String()))
		}
		b.WriteString(line)
		sentences = append(sentences, line)
		pendingSep = " "
	}

	return b.String(), sentences, boundaries
}

// LoadDocument loads and parses one corpus file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	text, sentences, boundaries := BuildDocument(strings.Split(body, "\n"))

	base := filepath.Base(path)
	return &Document{
		ID:         strings.TrimSuffix(base, filepath.Ext(base)),
		Source:     header.Source,
		Title:      header.Title,
		Text:       text,
		Sentences:  sentences,
		Boundaries: boundaries,
	}, nil
}

// LoadCorpus loads all .txt files from a directory.
func LoadCorpus(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}
		doc, err := LoadDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
