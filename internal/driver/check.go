package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/log/level"

	"sgspell/internal/diag"
	"sgspell/internal/lexer"
	"sgspell/internal/observ"
	"sgspell/internal/source"
	"sgspell/internal/spell"
	"sgspell/internal/syntax"
	"sgspell/internal/token"
)

// ErrNoOracle is returned when Options carries no spelling oracle.
var ErrNoOracle = errors.New("driver: no spelling oracle configured")

// Result holds everything produced for one file.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Tree    *syntax.Tree
	Bag     *diag.Bag
	Timing  observ.Report
}

// CheckFile loads path and checks it.
func CheckFile(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return checkLoaded(fs, fs.Get(fileID), opts, nil)
}

// CheckSource checks in-memory content registered under name.
func CheckSource(name string, src []byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return checkLoaded(fs, fs.Get(fileID), opts, nil)
}

// checkLoaded runs the lex, tree and spell phases over file. fs is only read.
// onStage, when set, is called as each phase starts.
func checkLoaded(fs *source.FileSet, file *source.File, opts Options, onStage func(Stage)) (*Result, error) {
	if opts.Oracle == nil {
		return nil, ErrNoOracle
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	timer := observ.NewTimer()
	res := &Result{FileSet: fs, File: file, Bag: bag}

	stage(onStage, StageLex)
	timer.Track(string(StageLex), func() string {
		lx := lexer.New(file, lexer.Options{Reporter: reporter, MaxTokens: opts.MaxTokens})
		res.Tokens = lx.All()
		return fmt.Sprintf("%d tokens", len(res.Tokens))
	})

	stage(onStage, StageTree)
	timer.Track(string(StageTree), func() string {
		res.Tree = syntax.Build(file, res.Tokens, reporter)
		return fmt.Sprintf("%d nodes", res.Tree.Len())
	})

	stage(onStage, StageSpell)
	timer.Track(string(StageSpell), func() string {
		before := bag.Len()
		sr := spell.NewReporter(fs, reporter, opts.logger()).WithSeverity(opts.Severity)
		spell.NewChecker(file.Path, opts.Oracle, sr, opts.Check).Check(res.Tree)
		return fmt.Sprintf("%d findings", bag.Len()-before)
	})

	res.Timing = timer.Report()
	keyvals := append([]any{"msg", "checked", "path", file.Path, "diagnostics", bag.Len()}, res.Timing.KeyVals()...)
	level.Debug(opts.logger()).Log(keyvals...)
	return res, nil
}

func stage(onStage func(Stage), st Stage) {
	if onStage != nil {
		onStage(st)
	}
}
