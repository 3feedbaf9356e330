package lexer

import (
	"sgspell/internal/diag"
	"sgspell/internal/source"
	"sgspell/internal/token"
)

type modeKind uint8

const (
	// modeFString scans literal text between f" and the closing quote.
	modeFString modeKind = iota
	// modeInterp scans ordinary tokens inside {...} of an f-string.
	modeInterp
)

type mode struct {
	kind  modeKind
	depth int // nested braces opened inside an interpolation
}

type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	look    *token.Token   // single-token lookahead
	hold    []token.Trivia // leading trivia of the next token
	modes   []mode
	count   int
	stopped bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// The EOF token carries the file's trailing trivia and repeats forever.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.stopped {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	if lx.inFString() {
		return lx.counted(lx.scanFStringPart())
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		if len(lx.modes) > 0 {
			lx.errLex(diag.LexUnterminatedInterp, lx.emptySpan(), "unterminated string interpolation")
			lx.modes = lx.modes[:0]
		}
		tok := token.Token{Kind: token.EOF, Span: lx.emptySpan(), Leading: lx.takeHold()}
		lx.stopped = true
		return tok
	}

	if lx.opts.MaxTokens > 0 && lx.count >= lx.opts.MaxTokens {
		lx.warnLex(diag.LexTokenLimit, lx.emptySpan(), "token limit reached; the rest of the file is not checked")
		lx.cursor.SkipToEnd()
		lx.stopped = true
		return token.Token{Kind: token.EOF, Span: lx.emptySpan(), Leading: lx.takeHold()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == 'f' && lx.isFStringStart():
		tok = lx.scanFStringStart()

	case ch == '_':
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '_' && isIdentContinueByte(b1) {
			tok = lx.scanIdentOrKeyword()
		} else {
			tok = lx.scanOperatorOrPunct()
		}

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case ch == '$':
		tok = lx.scanDollarIdent()

	case ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	lx.trackInterpBraces(tok.Kind)

	tok.Leading = lx.takeHold()
	return lx.counted(tok)
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// All drains the lexer, EOF included.
func (lx *Lexer) All() []token.Token {
	out := make([]token.Token, 0, 64)
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) counted(tok token.Token) token.Token {
	lx.count++
	return tok
}

func (lx *Lexer) takeHold() []token.Trivia {
	if len(lx.hold) == 0 {
		return nil
	}
	out := make([]token.Trivia, len(lx.hold))
	copy(out, lx.hold)
	lx.hold = lx.hold[:0]
	return out
}

func (lx *Lexer) inFString() bool {
	return len(lx.modes) > 0 && lx.modes[len(lx.modes)-1].kind == modeFString
}

// trackInterpBraces keeps brace depth inside an interpolation; the RBrace
// that closes the interpolation itself is handled by scanOperatorOrPunct.
func (lx *Lexer) trackInterpBraces(k token.Kind) {
	if len(lx.modes) == 0 {
		return
	}
	top := &lx.modes[len(lx.modes)-1]
	if top.kind != modeInterp {
		return
	}
	switch k {
	case token.LBrace:
		top.depth++
	case token.RBrace:
		if top.depth == 0 {
			lx.modes = lx.modes[:len(lx.modes)-1]
			return
		}
		top.depth--
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
