package spell

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"sgspell/internal/diag"
	"sgspell/internal/source"
)

// Locator maps a byte offset to a line/column; *source.FileSet implements it.
type Locator interface {
	Locate(id source.FileID, off uint32) (source.LineCol, bool)
}

// Reporter turns findings into SPL diagnostics and hands them to a diag.Reporter.
type Reporter struct {
	loc      Locator
	sink     diag.Reporter
	logger   log.Logger
	severity diag.Severity
}

// NewReporter builds a reporter emitting warnings. A nil logger discards anomaly logs.
func NewReporter(loc Locator, sink diag.Reporter, logger log.Logger) *Reporter {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if sink == nil {
		sink = diag.NopReporter{}
	}
	return &Reporter{loc: loc, sink: sink, logger: logger, severity: diag.SevWarning}
}

// WithSeverity sets the severity of emitted findings.
func (r *Reporter) WithSeverity(sev diag.Severity) *Reporter {
	r.severity = sev
	return r
}

// Report emits one misspelling at the start of at. An empty suggestion omits
// the hint. A position that cannot be resolved is logged and reported as 0:0.
func (r *Reporter) Report(path string, at source.Span, word, suggestion string, edits ...diag.FixEdit) {
	pos, ok := r.loc.Locate(at.File, at.Start)
	if !ok {
		level.Warn(r.logger).Log("msg", "cannot resolve position", "path", path, "offset", at.Start, "word", word)
		pos = source.LineCol{}
	}

	b := diag.NewReportBuilder(r.sink, r.severity, diag.SpellMisspelling, at, Message(word, suggestion)).
		At(path, pos)
	if len(edits) > 0 {
		b.WithFix(fmt.Sprintf("replace with %q", suggestion), edits...)
	}
	b.Emit()
}

// Message renders the text of a spelling finding.
func Message(word, suggestion string) string {
	if suggestion == "" {
		return fmt.Sprintf("%q is misspelled", word)
	}
	return fmt.Sprintf("%q is misspelled; did you mean %q?", word, suggestion)
}
