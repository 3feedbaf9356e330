package spell

import (
	"strings"
	"unicode"

	"mvdan.cc/xurls/v2"
)

var (
	urlPattern      = xurls.Strict()
	escapeFlattener = strings.NewReplacer(`\n`, " ", `\t`, " ")
)

// Normalize turns raw token or comment text into space separated words.
//
// URLs with a scheme are removed; bare names such as "notes.md" are kept
// and split like any other text. The two-character escapes \n and \t become spaces.
// An uppercase letter starts a new word containing it; '_', '.', ',' and
// digits start a new empty word; anything else extends the current word.
// All words, empty ones included, are joined with single spaces, so
// "recieve_Data" becomes "recieve  Data".
func Normalize(raw string) string {
	text := urlPattern.ReplaceAllString(raw, "")
	text = escapeFlattener.Replace(text)

	var words []*strings.Builder
	for _, r := range text {
		switch {
		case unicode.IsUpper(r):
			words = append(words, new(strings.Builder))
			words[len(words)-1].WriteRune(r)
		case r == '_' || r == '.' || r == ',' || unicode.IsDigit(r):
			words = append(words, new(strings.Builder))
		default:
			if len(words) == 0 {
				words = append(words, new(strings.Builder))
			}
			words[len(words)-1].WriteRune(r)
		}
	}

	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.String()
	}
	return strings.Join(parts, " ")
}
