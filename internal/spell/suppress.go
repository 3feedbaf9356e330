package spell

import "strings"

// SuppressMarker disables checking of the token that carries it and of
// everything that token owns.
const SuppressMarker = "spellcheck:disable:this"

// IsSuppressed reports whether comment text contains SuppressMarker.
func IsSuppressed(comment string) bool {
	return strings.Contains(strings.TrimSpace(comment), SuppressMarker)
}

// commentBody strips comment delimiters: //, ///, /* and */.
func commentBody(text string) string {
	switch {
	case strings.HasPrefix(text, "///"):
		return text[3:]
	case strings.HasPrefix(text, "//"):
		return text[2:]
	case strings.HasPrefix(text, "/*"):
		body := text[2:]
		return strings.TrimSuffix(body, "*/")
	}
	return text
}
