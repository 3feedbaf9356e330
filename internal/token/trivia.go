package token

import "sgspell/internal/source"

// TriviaKind classifies a piece of leading trivia.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	TriviaDocLine
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaDocLine:
		return "DocLine"
	}
	return "Trivia(?)"
}

// Trivia is whitespace or comment material attached before a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string // raw text, comment markers included
}

// IsComment reports whether the piece carries comment text.
func (tv Trivia) IsComment() bool {
	switch tv.Kind {
	case TriviaLineComment, TriviaBlockComment, TriviaDocLine:
		return true
	default:
		return false
	}
}
