package spell

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"sgspell/internal/diag"
	"sgspell/internal/fix"
	"sgspell/internal/source"
)

// fixFor builds an edit replacing word inside raw when the word occurs there
// exactly once and a suggestion exists.
func fixFor(raw string, rawSpan source.Span, word, suggestion string) (diag.FixEdit, bool) {
	if suggestion == "" || word == "" || strings.Count(raw, word) != 1 {
		return diag.FixEdit{}, false
	}
	idx, err := safecast.Conv[uint32](strings.Index(raw, word))
	if err != nil {
		panic(fmt.Errorf("fix offset overflow: %w", err))
	}
	n, err := safecast.Conv[uint32](len(word))
	if err != nil {
		panic(fmt.Errorf("fix length overflow: %w", err))
	}
	return fix.Replace(rawSpan.Sub(idx, n), suggestion, word), true
}
