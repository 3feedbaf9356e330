package diag

import (
	"sgspell/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit replaces the bytes under Span with NewText. OldText, when set, guards
// the edit: the fix engine refuses to apply it if the file no longer matches.
type FixEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is one finding. Path and Pos are resolved when the diagnostic is
// built so that sinks never need the FileSet to print it.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Path     string
	Pos      source.LineCol // (0,0) when the position could not be resolved
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
