package lexer

import (
	"sgspell/internal/diag"
	"sgspell/internal/source"
)

type Options struct {
	Reporter  diag.Reporter // nil: errors are dropped, lexing continues
	MaxTokens int           // 0: unlimited
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.reportLex(diag.SevError, code, sp, msg)
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	lx.reportLex(diag.SevWarning, code, sp, msg)
}

func (lx *Lexer) reportLex(sev diag.Severity, code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	pos, _ := lx.file.LineColAt(sp.Start)
	diag.NewReportBuilder(lx.opts.Reporter, sev, code, sp, msg).
		At(lx.file.Path, pos).
		Emit()
}
