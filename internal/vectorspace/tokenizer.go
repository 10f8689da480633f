package vectorspace

import (
	"strings"
	"unicode"
)

// Tokenize lower-cases text, splits on non-alphanumeric runes, and drops
// stop-words and single-character tokens. Deterministic for identical input.
func Tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < 2 {
			continue
		}
		if _, isStop := stopwords[w]; isStop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Ngrams expands kept tokens into unigrams plus bigrams (two consecutive
// tokens joined by a single space), preserving order.
func Ngrams(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	grams := make([]string, 0, 2*len(tokens)-1)
	grams = append(grams, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		grams = append(grams, tokens[i]+" "+tokens[i+1])
	}
	return grams
}
