package fix

import (
	"testing"

	"sgspell/internal/source"
)

func TestReplace(t *testing.T) {
	span := source.Span{File: 1, Start: 0, End: 3}
	edit := Replace(span, "const", "let")

	if edit.Span != span {
		t.Errorf("expected span %v, got %v", span, edit.Span)
	}
	if edit.NewText != "const" || edit.OldText != "let" {
		t.Errorf("unexpected edit %+v", edit)
	}
}

func TestInsert(t *testing.T) {
	edit := Insert(2, 9, ";")

	if edit.Span.File != 2 || edit.Span.Start != 9 || edit.Span.End != 9 {
		t.Errorf("insert must be zero-width at 9, got %v", edit.Span)
	}
	if edit.NewText != ";" || edit.OldText != "" {
		t.Errorf("unexpected edit %+v", edit)
	}
}

func TestDelete(t *testing.T) {
	edit := Delete(source.Span{Start: 9, End: 10}, ";")

	if edit.NewText != "" {
		t.Errorf("expected empty NewText for deletion, got %q", edit.NewText)
	}
	if edit.OldText != ";" {
		t.Errorf("expected OldText ';', got %q", edit.OldText)
	}
}
