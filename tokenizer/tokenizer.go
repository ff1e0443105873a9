// Package tokenizer splits sentences into word, number and punctuation
// tokens with rune offsets into the original text.
package tokenizer

import "unicode"

// Token is a single token with its [Start, End) rune offsets.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenize splits text into tokens, skipping whitespace. Join rules:
//   - letter runs join regardless of script ("mβж" is one token);
//   - a hyphen or underscore between letters joins ("что-то",
//     "К_тому_же");
//   - ',', '.' or '/' between digits joins ("1,5", "1/2", "3.14");
//   - a run of one repeated punctuation mark joins ("...", "!!!");
//   - anything else is a single-rune token.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var tokens []Token

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsLetter(r):
			j := scanWord(runes, i)
			tokens = append(tokens, token(runes, i, j))
			i = j
		case unicode.IsDigit(r):
			j := scanNumber(runes, i)
			tokens = append(tokens, token(runes, i, j))
			i = j
		default:
			j := i + 1
			for j < len(runes) && runes[j] == r {
				j++
			}
			tokens = append(tokens, token(runes, i, j))
			i = j
		}
	}
	return tokens
}

// scanWord consumes letters, allowing a single hyphen or underscore
// when another letter follows it.
func scanWord(runes []rune, start int) int {
	j := start + 1
	for j < len(runes) {
		switch {
		case unicode.IsLetter(runes[j]):
			j++
		case (runes[j] == '-' || runes[j] == '_') &&
			j+1 < len(runes) && unicode.IsLetter(runes[j+1]):
			j += 2
		default:
			return j
		}
	}
	return j
}

// scanNumber consumes digits, allowing a single ',', '.' or '/' when
// another digit follows it.
func scanNumber(runes []rune, start int) int {
	j := start + 1
	for j < len(runes) {
		switch {
		case unicode.IsDigit(runes[j]):
			j++
		case (runes[j] == ',' || runes[j] == '.' || runes[j] == '/') &&
			j+1 < len(runes) && unicode.IsDigit(runes[j+1]):
			j += 2
		default:
			return j
		}
	}
	return j
}

func token(runes []rune, start, end int) Token {
	return Token{
		Text:  string(runes[start:end]),
		Start: start,
		End:   end,
	}
}
