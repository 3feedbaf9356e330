package lexer

import (
	"sgspell/internal/diag"
	"sgspell/internal/token"
)

// scanString scans "..." with backslash escapes. Escapes are not validated;
// the token text is the raw source slice including quotes.
// A newline or EOF before the closing quote yields an Unknown token.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			return lx.emitFrom(token.StringLit, start)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			tok := lx.emitFrom(token.Unknown, start)
			lx.errLex(diag.LexUnterminatedString, tok.Span, "newline in string literal")
			return tok
		}
		lx.cursor.Bump()
	}
	tok := lx.emitFrom(token.Unknown, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

func (lx *Lexer) isFStringStart() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == 'f' && b1 == '"'
}

func (lx *Lexer) scanFStringStart() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // f
	lx.cursor.Bump() // "
	lx.modes = append(lx.modes, mode{kind: modeFString})
	return lx.emitFrom(token.FStringStart, start)
}

// scanFStringPart produces the next piece of an f-string body: a literal
// StringSegment, the LBrace that opens an interpolation, or FStringEnd.
// "{{" and "}}" are literal braces.
func (lx *Lexer) scanFStringPart() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.cursor.EOF():
		lx.errLex(diag.LexUnterminatedString, lx.emptySpan(), "unterminated interpolated string")
		lx.popMode()
		return lx.emitFrom(token.FStringEnd, start)
	case lx.cursor.Peek() == '\n':
		// zero-width end; the newline is trivia of the following token
		lx.errLex(diag.LexUnterminatedString, lx.emptySpan(), "newline in interpolated string")
		lx.popMode()
		return lx.emitFrom(token.FStringEnd, start)
	case lx.cursor.Peek() == '"':
		lx.cursor.Bump()
		lx.popMode()
		return lx.emitFrom(token.FStringEnd, start)
	case lx.cursor.Peek() == '{' && !lx.isDoubled('{'):
		lx.cursor.Bump()
		lx.modes = append(lx.modes, mode{kind: modeInterp})
		return lx.emitFrom(token.LBrace, start)
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' || b == '\n' {
			break
		}
		if b == '{' || b == '}' {
			if lx.isDoubled(b) {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
			if b == '{' {
				break
			}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
				continue
			}
		}
		lx.cursor.Bump()
	}
	return lx.emitFrom(token.StringSegment, start)
}

func (lx *Lexer) isDoubled(b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == b && b1 == b
}

func (lx *Lexer) popMode() {
	if len(lx.modes) > 0 {
		lx.modes = lx.modes[:len(lx.modes)-1]
	}
}
