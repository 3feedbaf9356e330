package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sgspell/internal/source"
	"sgspell/internal/token"
)

func sampleTokens(fs *source.FileSet) []token.Token {
	id := fs.AddVirtual("t.sg", []byte("// hi\nlet x"))
	return []token.Token{
		{
			Kind: token.KwLet, Span: source.Span{File: id, Start: 6, End: 9},
			Leading: []token.Trivia{
				{Kind: token.TriviaLineComment, Span: source.Span{File: id, Start: 0, End: 5}, Text: "// hi"},
				{Kind: token.TriviaNewline, Span: source.Span{File: id, Start: 5, End: 6}, Text: "\n"},
			},
		},
		{
			Kind: token.Ident, Span: source.Span{File: id, Start: 10, End: 11}, Text: "x",
			Leading: []token.Trivia{{Kind: token.TriviaSpace, Span: source.Span{File: id, Start: 9, End: 10}, Text: " "}},
		},
		{Kind: token.EOF, Span: source.Span{File: id, Start: 11, End: 11}},
		{Kind: token.Ident, Span: source.Span{File: id, Start: 11, End: 11}, Text: "after-eof"},
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, sampleTokens(fs), fs); err != nil {
		t.Fatalf("FormatTokensPretty() error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected output to stop at EOF, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "at 2:1-2:4 (leading: LineComment, Newline)") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], `"x" at 2:5-2:6`) {
		t.Errorf("unexpected second line %q", lines[1])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, sampleTokens(fs)); err != nil {
		t.Fatalf("FormatTokensJSON() error: %v", err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(out))
	}
	lead := out[0].Leading
	if len(lead) != 2 || lead[0].Text != "// hi" || lead[1].Text != "" {
		t.Errorf("only comment trivia keep text: %+v", lead)
	}
	if out[1].Text != "x" || out[1].Start != 10 || out[1].End != 11 {
		t.Errorf("unexpected ident %+v", out[1])
	}
}
