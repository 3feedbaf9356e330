package fix

import (
	"sgspell/internal/diag"
	"sgspell/internal/source"
)

// Replace creates an edit replacing the text under span. A non-empty expect
// guards the edit against stale content.
func Replace(span source.Span, newText, expect string) diag.FixEdit {
	return diag.FixEdit{
		Span:    span,
		NewText: newText,
		OldText: expect,
	}
}

// Insert creates an edit inserting text at offset at.
func Insert(file source.FileID, at uint32, text string) diag.FixEdit {
	return diag.FixEdit{
		Span:    source.Span{File: file, Start: at, End: at},
		NewText: text,
	}
}

// Delete creates an edit removing the text under span.
func Delete(span source.Span, expect string) diag.FixEdit {
	return Replace(span, "", expect)
}
