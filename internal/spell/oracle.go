package spell

// Range locates a word inside a normalized word sequence, in bytes.
type Range struct {
	Start int
	Len   int
}

// End is the exclusive end offset.
func (r Range) End() int { return r.Start + r.Len }

// within reports whether r is a non-empty range inside text.
func (r Range) within(text string) bool {
	return r.Start >= 0 && r.Len > 0 && r.End() <= len(text)
}

// Oracle decides which words are misspelled. Implementations must be safe for
// concurrent use once constructed.
type Oracle interface {
	// FirstMisspelling returns the first misspelled word at or after byte
	// offset start.
	FirstMisspelling(text string, start int) (Range, bool)
	// Suggest returns a correction for the word text[r].
	Suggest(text string, r Range) (string, bool)
}
