package lexer

import (
	"sgspell/internal/diag"
	"sgspell/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans an identifier and classifies keywords.
// Keywords are lowercase only; Token.Text is the exact source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		return lx.emitFrom(token.Unknown, start)
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return lx.scanUnknownRune()
		}
		lx.bumpRune()
	}
	lx.bumpIdentTail()

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if text == "_" {
		return token.Token{Kind: token.Underscore, Span: sp, Text: text}
	}
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanDollarIdent scans $name; a lone '$' is an unknown character.
func (lx *Lexer) scanDollarIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // $
	r, sz := lx.peekRune()
	if sz == 0 || !isIdentStartRune(r) {
		tok := lx.emitFrom(token.Unknown, start)
		lx.errLex(diag.LexUnknownChar, tok.Span, "unexpected '$'")
		return tok
	}
	lx.bumpRune()
	lx.bumpIdentTail()
	return lx.emitFrom(token.DollarIdent, start)
}

func (lx *Lexer) bumpIdentTail() {
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) || lx.cursor.EOF() {
				return
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}

// scanUnknownRune consumes one whole rune as an Unknown token.
func (lx *Lexer) scanUnknownRune() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	if lx.cursor.Off == uint32(start) {
		lx.cursor.Bump()
	}
	tok := lx.emitFrom(token.Unknown, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character "+quoteText(tok.Text))
	return tok
}
