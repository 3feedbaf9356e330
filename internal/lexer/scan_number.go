package lexer

import (
	"sgspell/internal/diag"
	"sgspell/internal/token"
)

// scanNumber accepts 0, 123, 0b..., 0o..., 0x..., 1.0, 1., .5, 1e-3 and 1.0e+10,
// with '_' allowed between digits. Type suffixes stay in Token.Text.
// A missing digit after '.' or an exponent yields an Unknown token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		lx.bumpDigits(isDec)
		return lx.finishNumber(start, kind)
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			lx.bumpDigits(func(b byte) bool { return b == '0' || b == '1' })
			return lx.emitFrom(token.IntLit, start)
		case 'o', 'O':
			lx.cursor.Bump()
			lx.bumpDigits(func(b byte) bool { return b >= '0' && b <= '7' })
			return lx.emitFrom(token.IntLit, start)
		case 'x', 'X':
			lx.cursor.Bump()
			lx.bumpDigits(isHex)
			return lx.emitFrom(token.IntLit, start)
		}
	}

	lx.bumpDigits(isDec)

	if lx.cursor.Peek() == '.' {
		b0, b1, ok := lx.cursor.Peek2()
		switch {
		case ok && b0 == '.' && (b1 == '.' || b1 == '='):
			// range operator, not a fraction
		case ok && b0 == '.' && isIdentStartByte(b1) && b1 != 'e' && b1 != 'E':
			// member access on an integer: 1.foo
		default:
			lx.cursor.Bump()
			kind = token.FloatLit
			lx.bumpDigits(isDec)
		}
	}
	return lx.finishNumber(start, kind)
}

func (lx *Lexer) finishNumber(start Mark, kind token.Kind) token.Token {
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			tok := lx.emitFrom(token.Unknown, start)
			lx.errLex(diag.LexBadNumber, tok.Span, "expected digit after exponent")
			return tok
		}
		lx.bumpDigits(isDec)
	}
	return lx.emitFrom(kind, start)
}

func (lx *Lexer) bumpDigits(digit func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if !digit(b) && b != '_' {
			return
		}
		lx.cursor.Bump()
	}
}
