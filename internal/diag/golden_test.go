package diag

import (
	"testing"

	"sgspell/internal/source"
)

func TestFormatGolden(t *testing.T) {
	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SpellMisspelling,
			Message:  "second",
			Path:     "/workspace/testdata/sample.sg",
			Pos:      source.LineCol{Line: 2, Col: 1},
		},
		{
			Severity: SevError,
			Code:     LexUnterminatedString,
			Message:  "first line\nsecond",
			Path:     "/workspace/testdata/sample.sg",
			Pos:      source.LineCol{Line: 1, Col: 5},
			Notes:    []Note{{Msg: "string starts here"}},
		},
	}

	expected := "error LEX1002 testdata/sample.sg:1:5 first line second\n" +
		"note LEX1002 testdata/sample.sg string starts here\n" +
		"warning SPL9001 testdata/sample.sg:2:1 second"

	if got := FormatGolden(diags, "/workspace", true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
	if got := FormatGolden(nil, "", false); got != "" {
		t.Fatalf("empty input must render empty, got %q", got)
	}
}
