package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	razdel "github.com/mawolabs/go-razdel"
	"github.com/mawolabs/go-razdel/tokenizer"
)

func main() {
	mode := flag.String("mode", "sentenize", "Mode: sentenize, boundaries, tokens or score")
	abbrPath := flag.String("abbr", "", "Path to YAML file with extra abbreviations")

	flag.Parse()

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		fmt.Fprintln(os.Stderr, "Usage: razdel-cli [OPTIONS] TEXT")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var opts []razdel.Option
	if *abbrPath != "" {
		extra, err := loadAbbreviations(*abbrPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading abbreviations: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, razdel.WithAbbreviations(extra...))
	}

	seg := razdel.New(opts...)

	switch *mode {
	case "sentenize":
		sentences := seg.Sentenize(text)
		fmt.Printf("Text: %q\n", text)
		fmt.Printf("Sentences (%d):\n", len(sentences))
		for i, s := range sentences {
			fmt.Printf("  %d: [%d:%d) %q\n", i+1, s.Start, s.End, s.Text)
		}

	case "boundaries":
		boundaries := seg.FindBoundaries(text)
		fmt.Printf("Text: %q\n", text)
		fmt.Printf("Boundaries (%d): %v\n", len(boundaries), boundaries)

	case "tokens":
		tokens := tokenizer.Tokenize(text)
		fmt.Printf("Text: %q\n", text)
		fmt.Printf("Tokens (%d):\n", len(tokens))
		for i, tok := range tokens {
			fmt.Printf("  %d: [%d:%d) %q\n", i+1, tok.Start, tok.End, tok.Text)
		}

	case "score":
		boundaries := seg.FindBoundaries(text)
		score := seg.QualityScore(text, boundaries)
		fmt.Printf("Text: %q\n", text)
		fmt.Printf("Boundaries: %d\n", len(boundaries))
		fmt.Printf("Quality score: %.2f\n", score)

	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}

// loadAbbreviations reads a YAML file of the form:
//
//	abbreviations:
//	  - авт
//	  - исх
func loadAbbreviations(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file struct {
		Abbreviations []string `yaml:"abbreviations"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return file.Abbreviations, nil
}
