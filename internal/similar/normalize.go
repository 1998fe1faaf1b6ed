package similar

import (
	"strings"
	"unicode"
)

// Normalize folds an identifier for fuzzy comparison: CamelCase, snake_case,
// kebab-case and spaced spellings of the same words normalise equally.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(Tokenize(s), ""))
}

// Tokenize splits an identifier into its words, keeping their case:
//   - "OrderID" -> ["Order", "ID"]
//   - "first_name" -> ["first", "name"]
//   - "XMLParser" -> ["XML", "Parser"]
func Tokenize(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID": lower to upper
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser": the last upper of an acronym starts the next word
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
