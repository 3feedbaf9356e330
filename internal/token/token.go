package token

import (
	"sgspell/internal/source"
)

// Token represents a single source token with its location and leading trivia.
type Token struct {
	Kind    Kind
	Span    source.Span // excludes Leading
	Text    string
	Leading []Trivia
}

// FullStart returns the offset where the token's leading trivia begins.
func (t Token) FullStart() uint32 {
	if len(t.Leading) > 0 {
		return t.Leading[0].Span.Start
	}
	return t.Span.Start
}

// HasText reports whether the token carries natural-language text worth
// spell-checking: string literals and segments, identifiers and unknown text.
func (t Token) HasText() bool {
	switch t.Kind {
	case StringLit, Unknown, Ident, DollarIdent, StringSegment:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the token is a numeric, boolean, nothing or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NothingLit, IntLit, FloatLit, KwTrue, KwFalse, StringLit, StringSegment:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwFn && t.Kind <= KwEnum
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind <= Underscore
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind == DollarIdent }

// StartsLine reports whether a newline precedes the token in its leading trivia.
func (t Token) StartsLine() bool {
	for _, tv := range t.Leading {
		if tv.Kind == TriviaNewline {
			return true
		}
	}
	return false
}
