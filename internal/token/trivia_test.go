package token_test

import (
	"testing"

	"sgspell/internal/source"
	"sgspell/internal/token"
)

func TestTriviaShape(t *testing.T) {
	tok := token.Token{
		Kind: token.KwFn,
		Span: source.Span{Start: 12, End: 14},
		Text: "fn",
		Leading: []token.Trivia{
			{Kind: token.TriviaLineComment, Span: source.Span{Start: 0, End: 10}, Text: "// comment"},
			{Kind: token.TriviaNewline, Span: source.Span{Start: 10, End: 11}, Text: "\n"},
			{Kind: token.TriviaSpace, Span: source.Span{Start: 11, End: 12}, Text: " "},
		},
	}
	if tok.FullStart() != 0 {
		t.Fatalf("FullStart() = %d, want 0", tok.FullStart())
	}
	if !tok.StartsLine() {
		t.Fatal("newline trivia means the token starts a line")
	}
	if !tok.Leading[0].IsComment() || tok.Leading[1].IsComment() {
		t.Fatal("only comment kinds are comments")
	}

	bare := token.Token{Kind: token.Ident, Span: source.Span{Start: 5, End: 7}}
	if bare.FullStart() != 5 || bare.StartsLine() {
		t.Fatal("token without trivia starts at its span")
	}
}
