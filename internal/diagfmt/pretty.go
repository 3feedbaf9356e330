package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sgspell/internal/diag"
	"sgspell/internal/source"
)

type palette struct {
	err, warn, info, path, code, caret, gutter, note, add, del *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		path:   color.New(color.Bold),
		code:   color.New(color.FgMagenta),
		caret:  color.New(color.FgGreen, color.Bold),
		gutter: color.New(color.FgBlue),
		note:   color.New(color.FgCyan),
		add:    color.New(color.FgGreen),
		del:    color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.code, p.caret, p.gutter, p.note, p.add, p.del} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders diagnostics for humans, in bag order (call bag.Sort first):
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline under the primary span,
// then notes and fixes when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	f := fileOf(d, fs)
	path := displayPath(d.Path, fs, opts.PathMode)

	fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.path.Sprint(location(path, d.Pos)),
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Message)

	if f != nil && !d.Pos.IsZero() {
		writeSnippet(w, f, d.Primary, d.Pos, opts, p)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			pos, _ := spanPos(f, n.Span)
			fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), location(path, pos), n.Msg)
		}
	}

	if opts.ShowFixes {
		for i, fx := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", p.note.Sprintf("fix #%d:", i+1), fx.Title)
			for _, e := range fx.Edits {
				start, end := spanPos(f, e.Span)
				fmt.Fprintf(w, "    edit %s:%d:%d-%d:%d apply=%q\n", path, start.Line, start.Col, end.Line, end.Col, e.NewText)
				if !opts.ShowPreview {
					continue
				}
				preview, err := buildFixEditPreview(fs, e)
				if err != nil {
					continue
				}
				fmt.Fprintln(w, "    preview:")
				for _, line := range preview.before {
					fmt.Fprintf(w, "      %s\n", p.del.Sprint("- "+line))
				}
				for _, line := range preview.after {
					fmt.Fprintf(w, "      %s\n", p.add.Sprint("+ "+line))
				}
			}
		}
	}
}

func location(path string, pos source.LineCol) string {
	return fmt.Sprintf("%s:%d:%d", path, pos.Line, pos.Col)
}

// writeSnippet prints the primary line with opts.Context lines around it.
func writeSnippet(w io.Writer, f *source.File, sp source.Span, pos source.LineCol, opts PrettyOpts, p palette) {
	ctx, err := safecast.Conv[uint32](max(opts.Context, 0))
	if err != nil {
		ctx = 0
	}
	lineCount, err := safecast.Conv[uint32](len(f.LineIdx) + 1)
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	first := pos.Line
	if first > ctx {
		first -= ctx
	} else {
		first = 1
	}
	last := min(pos.Line+ctx, lineCount)
	gutterWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		text = strings.ReplaceAll(text, "\t", "    ")
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "…")
		}
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), text)
		if ln == pos.Line {
			pad, width := underline(f.GetLine(ln), pos.Col, sp.Len())
			fmt.Fprintf(w, "%s %s%s\n",
				p.gutter.Sprintf("%*s |", gutterWidth, ""),
				strings.Repeat(" ", pad),
				p.caret.Sprint("^"+strings.Repeat("~", width-1)))
		}
	}
}

// underline returns the display offset and width of a span starting at byte
// column col of line. Tabs count four cells as in the rendered line.
func underline(line string, col, length uint32) (pad, width int) {
	start := int(col) - 1
	if start < 0 {
		start = 0
	}
	if start > len(line) {
		start = len(line)
	}
	end := start + int(length)
	if end > len(line) {
		end = len(line)
	}
	cells := func(s string) int {
		return runewidth.StringWidth(strings.ReplaceAll(s, "\t", "    "))
	}
	pad = cells(line[:start])
	width = max(cells(line[start:end]), 1)
	return pad, width
}

// Short renders one line per diagnostic: path:line:col: message.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) {
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "%s: %s\n", location(displayPath(d.Path, fs, mode), d.Pos), d.Message)
	}
}
