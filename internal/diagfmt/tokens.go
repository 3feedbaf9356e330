package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sgspell/internal/source"
	"sgspell/internal/token"
)

type TriviaOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

type TokenOutput struct {
	Kind    string         `json:"kind"`
	Text    string         `json:"text,omitempty"`
	Start   uint32         `json:"start"`
	End     uint32         `json:"end"`
	Leading []TriviaOutput `json:"leading,omitempty"`
}

// FormatTokensPretty prints one token per line with its position and leading trivia kinds.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var b strings.Builder
		fmt.Fprintf(&b, "%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(&b, " %q", tok.Text)
		}
		fmt.Fprintf(&b, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)

		if len(tok.Leading) > 0 {
			kinds := make([]string, len(tok.Leading))
			for j, tv := range tok.Leading {
				kinds[j] = tv.Kind.String()
			}
			fmt.Fprintf(&b, " (leading: %s)", strings.Join(kinds, ", "))
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON prints tokens as a JSON array; comment trivia keep their text.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		}
		for _, tv := range tok.Leading {
			to := TriviaOutput{Kind: tv.Kind.String()}
			if tv.IsComment() {
				to.Text = tv.Text
			}
			out.Leading = append(out.Leading, to)
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
