package driver

import (
	"github.com/go-kit/log"

	"sgspell/internal/diag"
	"sgspell/internal/spell"
)

// Options configures a check run.
type Options struct {
	// Oracle answers misspelling lookups; it is shared by every worker.
	Oracle spell.Oracle
	Check  spell.Options
	// Severity of spelling findings.
	Severity diag.Severity
	// MaxDiagnostics bounds each file's bag; 0 means unbounded.
	MaxDiagnostics int
	// MaxTokens stops lexing a file after that many tokens; 0 means unbounded.
	MaxTokens int
	// Exclude reports whether a path relative to the checked root is skipped.
	Exclude func(rel string) bool
	Logger  log.Logger

	// Cache, when set, reuses results of files whose content and settings
	// are unchanged. CacheKey fingerprints the settings.
	Cache    *DiskCache
	CacheKey Digest
}

func (o Options) logger() log.Logger {
	if o.Logger == nil {
		return log.NewNopLogger()
	}
	return o.Logger
}

// DefaultOptions checks every text source with oracle and reports warnings.
func DefaultOptions(oracle spell.Oracle) Options {
	return Options{
		Oracle:   oracle,
		Check:    spell.DefaultOptions(),
		Severity: diag.SevWarning,
	}
}
