package spell

import (
	"sgspell/internal/diag"
	"sgspell/internal/source"
	"sgspell/internal/syntax"
	"sgspell/internal/token"
)

// Options selects the text sources a Checker looks at.
type Options struct {
	Comments    bool
	Strings     bool
	Identifiers bool
	// ResumeAfterMatch keeps querying the oracle after the first misspelling
	// of a fragment. Off, only the first misspelling of a fragment is reported.
	ResumeAfterMatch bool
}

// DefaultOptions checks every source and stops at the first misspelling per fragment.
func DefaultOptions() Options {
	return Options{Comments: true, Strings: true, Identifiers: true}
}

// Checker visits tree nodes and reports misspellings. It keeps no state
// between nodes; one Checker serves one file.
type Checker struct {
	path     string
	oracle   Oracle
	reporter *Reporter
	opts     Options
}

// NewChecker returns a Checker reporting findings in path through reporter.
func NewChecker(path string, oracle Oracle, reporter *Reporter, opts Options) *Checker {
	return &Checker{path: path, oracle: oracle, reporter: reporter, opts: opts}
}

// Check walks the whole tree.
func (c *Checker) Check(tree *syntax.Tree) {
	syntax.Walk(tree.Root, c.Visit)
}

// Visit checks the comments attached to n and then its own text. A suppressing
// comment returns SkipChildren before anything else of n is checked.
func (c *Checker) Visit(n *syntax.Node) syntax.Directive {
	tok := n.Token
	for _, tv := range tok.Leading {
		if !tv.IsComment() {
			continue
		}
		if IsSuppressed(tv.Text) {
			return syntax.SkipChildren
		}
		if c.opts.Comments {
			c.checkFragment(tok.Span, tv.Text, commentBody(tv.Text), tv.Span, true)
		}
	}

	switch tok.Kind {
	case token.StringLit, token.StringSegment, token.Unknown:
		if c.opts.Strings {
			c.checkFragment(ownStart(tok), tok.Text, tok.Text, tok.Span, true)
		}
	case token.Ident, token.DollarIdent:
		if c.opts.Identifiers {
			c.checkFragment(ownStart(tok), tok.Text, tok.Text, tok.Span, false)
		}
	default:
	}
	return syntax.VisitChildren
}

// ownStart is where findings in a token's own text are reported: the start
// of its leading trivia, or of the token itself when it has none.
func ownStart(tok token.Token) source.Span {
	if len(tok.Leading) == 0 {
		return tok.Span
	}
	return tok.Span.Cover(tok.Leading[0].Span)
}

// checkFragment normalizes text and reports what the oracle finds at the
// start of at. raw and rawSpan locate the fragment in the file for fix edits.
// Empty text is still handed to the oracle.
func (c *Checker) checkFragment(at source.Span, raw, text string, rawSpan source.Span, fixable bool) {
	words := Normalize(text)
	start := 0
	for {
		r, ok := c.oracle.FirstMisspelling(words, start)
		if !ok || !r.within(words) || r.Start < start {
			return
		}
		word := words[r.Start:r.End()]
		suggestion, _ := c.oracle.Suggest(words, r)

		var edits []diag.FixEdit
		if fixable {
			if edit, ok := fixFor(raw, rawSpan, word, suggestion); ok {
				edits = append(edits, edit)
			}
		}
		c.reporter.Report(c.path, at, word, suggestion, edits...)

		if !c.opts.ResumeAfterMatch {
			return
		}
		start = r.End()
	}
}
