package token_test

import (
	"testing"

	"sgspell/internal/source"
	"sgspell/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestHasText(t *testing.T) {
	text := []token.Kind{
		token.StringLit, token.Unknown, token.Ident, token.DollarIdent, token.StringSegment,
	}
	for _, k := range text {
		if !tok(k).HasText() {
			t.Fatalf("%v should carry checkable text", k)
		}
	}
	other := []token.Kind{
		token.EOF, token.File, token.KwFn, token.IntLit, token.FStringStart,
		token.FStringEnd, token.LBrace, token.Semicolon,
	}
	for _, k := range other {
		if tok(k).HasText() {
			t.Fatalf("%v must NOT carry checkable text", k)
		}
	}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.NothingLit, token.IntLit, token.FloatLit, token.StringLit, token.KwTrue}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.KwLet, token.Plus, token.LParen} {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestKeywordAndPunctRanges(t *testing.T) {
	if !tok(token.KwFn).IsKeyword() || !tok(token.KwEnum).IsKeyword() {
		t.Fatal("keyword range boundaries must be keywords")
	}
	if tok(token.NothingLit).IsKeyword() || tok(token.DollarIdent).IsKeyword() {
		t.Fatal("literal/ident must not be keywords")
	}
	for _, k := range []token.Kind{token.Plus, token.ColonAssign, token.LBrace, token.Underscore} {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	if tok(token.StringSegment).IsPunctOrOp() {
		t.Fatal("segment is not punctuation")
	}
}

func TestCloser(t *testing.T) {
	pairs := map[token.Kind]token.Kind{
		token.LParen:       token.RParen,
		token.LBrace:       token.RBrace,
		token.LBracket:     token.RBracket,
		token.FStringStart: token.FStringEnd,
	}
	for open, want := range pairs {
		got, ok := open.Closer()
		if !ok || got != want {
			t.Fatalf("%v.Closer() = %v, %v; want %v", open, got, ok, want)
		}
		if !want.IsCloser() {
			t.Fatalf("%v should be a closer", want)
		}
	}
	if _, ok := token.Ident.Closer(); ok {
		t.Fatal("Ident does not open a group")
	}
}

func TestKindString(t *testing.T) {
	if token.StringSegment.String() != "StringSegment" {
		t.Fatalf("got %q", token.StringSegment.String())
	}
	if token.Kind(250).String() != "Kind(?)" {
		t.Fatalf("out of range kind must not panic")
	}
}
