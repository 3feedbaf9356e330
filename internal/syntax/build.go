package syntax

import (
	"fmt"

	"fortio.org/safecast"

	"sgspell/internal/diag"
	"sgspell/internal/source"
	"sgspell/internal/token"
)

// Build groups tokens into a Tree. Tokens should end with EOF; a synthetic EOF
// is appended otherwise. Unbalanced delimiters are reported to r (may be nil)
// and the tree is still produced.
func Build(file *source.File, tokens []token.Token, r diag.Reporter) *Tree {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		var sp source.Span
		if file != nil {
			end, err := safecast.Conv[uint32](len(file.Content))
			if err != nil {
				panic(fmt.Errorf("len file content overflow: %w", err))
			}
			sp = source.Span{File: file.ID, Start: end, End: end}
		}
		tokens = append(tokens, token.Token{Kind: token.EOF, Span: sp})
	}

	b := &builder{file: file, toks: tokens, reporter: r}
	root := &Node{Token: token.Token{Kind: token.File}}
	if file != nil {
		root.Token.Span = source.Span{File: file.ID}
		root.Token.Text = file.Path
	}
	root.Children = b.sequence(token.Unknown)
	root.Children = append(root.Children, &Node{Token: b.next()})
	return &Tree{File: file, Root: root}
}

type builder struct {
	file     *source.File
	toks     []token.Token
	pos      int
	open     []token.Kind // closers expected by enclosing groups
	reporter diag.Reporter
}

func (b *builder) peek() token.Token {
	return b.toks[b.pos]
}

func (b *builder) next() token.Token {
	tok := b.toks[b.pos]
	if tok.Kind != token.EOF {
		b.pos++
	}
	return tok
}

// expected reports whether some enclosing group waits for closer k.
func (b *builder) expected(k token.Kind) bool {
	for i := len(b.open) - 1; i >= 0; i-- {
		if b.open[i] == k {
			return true
		}
	}
	return false
}

// sequence parses statements until EOF or a closer an enclosing group expects.
func (b *builder) sequence(closer token.Kind) []*Node {
	var out []*Node
	for {
		tok := b.peek()
		if tok.Kind == token.EOF {
			return out
		}
		if tok.Kind.IsCloser() {
			if tok.Kind == closer || b.expected(tok.Kind) {
				return out
			}
			out = append(out, b.stray())
			continue
		}
		out = append(out, b.statement(closer))
	}
}

// statement parses one statement: its head followed by the items it owns.
func (b *builder) statement(closer token.Kind) *Node {
	head := b.item()
	if head.Token.Kind == token.Semicolon || b.endsAfter(head) {
		return head
	}
	for {
		tok := b.peek()
		if tok.Kind == token.EOF {
			return head
		}
		if tok.Kind.IsCloser() {
			if tok.Kind == closer || b.expected(tok.Kind) {
				return head
			}
			head.Children = append(head.Children, b.stray())
			continue
		}
		if tok.StartsLine() && startsDeclaration(tok.Kind) {
			return head
		}
		child := b.item()
		head.Children = append(head.Children, child)
		if child.Token.Kind == token.Semicolon || b.endsAfter(child) {
			return head
		}
	}
}

// endsAfter reports whether a closed {} group followed by a token on a new
// line ends the statement. else and finally continue it.
func (b *builder) endsAfter(last *Node) bool {
	if last.Token.Kind != token.LBrace || !last.closed {
		return false
	}
	tok := b.peek()
	if tok.Kind == token.EOF || !tok.StartsLine() {
		return false
	}
	return tok.Kind != token.KwElse && tok.Kind != token.KwFinally
}

// item consumes one token, or a whole group when the token is an opener.
func (b *builder) item() *Node {
	tok := b.next()
	n := &Node{Token: tok}
	closer, ok := tok.Kind.Closer()
	if !ok {
		return n
	}

	b.open = append(b.open, closer)
	n.Children = b.sequence(closer)
	b.open = b.open[:len(b.open)-1]

	if b.peek().Kind == closer {
		n.Children = append(n.Children, &Node{Token: b.next()})
		n.closed = true
		return n
	}
	b.report(diag.SynUnclosedGroup, tok.Span, fmt.Sprintf("unclosed %q", tok.Text))
	return n
}

// stray consumes a closer nobody waits for.
func (b *builder) stray() *Node {
	tok := b.next()
	b.report(diag.SynUnmatchedClose, tok.Span, fmt.Sprintf("unmatched %q", tok.Text))
	return &Node{Token: tok}
}

func (b *builder) report(code diag.Code, sp source.Span, msg string) {
	if b.reporter == nil {
		return
	}
	rb := diag.ReportWarning(b.reporter, code, sp, msg)
	if b.file != nil {
		pos, _ := b.file.LineColAt(sp.Start)
		rb.At(b.file.Path, pos)
	}
	rb.Emit()
}

// startsDeclaration lists keywords that begin a new statement when they open a line.
func startsDeclaration(k token.Kind) bool {
	switch k {
	case token.KwFn, token.KwLet, token.KwConst, token.KwType, token.KwImport,
		token.KwPub, token.KwExtern, token.KwTag, token.KwContract, token.KwMacro,
		token.KwPragma, token.KwEnum, token.At:
		return true
	default:
		return false
	}
}
