package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"sgspell/internal/diag"
	"sgspell/internal/observ"
	"sgspell/internal/source"
)

// SourceExt is the extension of files picked up from directories.
const SourceExt = ".sg"

// FileResult is the outcome for one file of a multi-file run.
type FileResult struct {
	Path   string
	FileID source.FileID
	Loaded bool
	Bag    *diag.Bag
	Timing observ.Report
}

// RunResult aggregates a multi-file run. Files keep the sorted input order.
type RunResult struct {
	FileSet *source.FileSet
	Files   []FileResult
}

// Bag merges every file's diagnostics into one bag bounded by max (0 means unbounded).
func (r *RunResult) Bag(max int) *diag.Bag {
	out := diag.NewBag(max)
	for _, f := range r.Files {
		out.Append(f.Bag)
	}
	return out
}

// Timing sums the per-file phase timings.
func (r *RunResult) Timing() observ.Report {
	var sum observ.Report
	for _, f := range r.Files {
		sum.Add(f.Timing)
	}
	return sum
}

// listSGFiles returns the sorted *.sg files below dir. excluded receives
// slash paths relative to dir; excluded directories are not descended.
func listSGFiles(dir string, excluded func(rel string) bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel != "." && excluded != nil && excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, SourceExt) && (excluded == nil || !excluded(rel)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ListFiles expands paths into the files a run checks: directories are
// walked for *.sg files, explicit files are kept whatever their extension.
func ListFiles(paths []string, excluded func(rel string) bool) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			// reported as a load failure by CheckPaths
			if !seen[p] {
				seen[p] = true
				files = append(files, p)
			}
			continue
		}
		var found []string
		if info.IsDir() {
			if found, err = listSGFiles(p, excluded); err != nil {
				return nil, fmt.Errorf("walk %s: %w", p, err)
			}
		} else {
			found = []string{p}
		}
		for _, f := range found {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}
	return files, nil
}

// CheckDir checks every *.sg file below dir.
func CheckDir(ctx context.Context, dir string, opts Options, jobs int, sink ProgressSink) (*RunResult, error) {
	return CheckPaths(ctx, []string{dir}, dir, opts, jobs, sink)
}

// CheckPaths checks files and directories in parallel with at most jobs
// workers (GOMAXPROCS when jobs <= 0). Files are loaded up front into one
// FileSet rendered relative to baseDir; a file that cannot be read yields an
// IO diagnostic instead of failing the run.
func CheckPaths(ctx context.Context, paths []string, baseDir string, opts Options, jobs int, sink ProgressSink) (*RunResult, error) {
	if opts.Oracle == nil {
		return nil, ErrNoOracle
	}
	files, err := ListFiles(paths, opts.Exclude)
	if err != nil {
		return nil, err
	}

	fileSet := source.NewFileSetWithBase(baseDir)
	result := &RunResult{FileSet: fileSet, Files: make([]FileResult, len(files))}
	if len(files) == 0 {
		return result, nil
	}

	loadErrors := make(map[int]error)
	for i, path := range files {
		emit(sink, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			continue
		}
		result.Files[i] = FileResult{Path: path, FileID: fileID, Loaded: true}
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			start := time.Now()

			if loadErr, failed := loadErrors[i]; failed {
				result.Files[i] = FileResult{Path: path, Bag: loadFailure(path, loadErr, opts)}
				emit(sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr, Elapsed: time.Since(start), Findings: 1})
				return nil
			}

			fr := &result.Files[i]
			file := fileSet.Get(fr.FileID)
			if bag, hit := lookupCache(opts, file); hit {
				fr.Bag = bag
				emit(sink, Event{File: path, Stage: StageSpell, Status: StatusDone, Elapsed: time.Since(start), Findings: bag.Len()})
				return nil
			}
			res, err := checkLoaded(fileSet, file, opts, func(st Stage) {
				emit(sink, Event{File: path, Stage: st, Status: StatusWorking})
			})
			if err != nil {
				emit(sink, Event{File: path, Stage: StageSpell, Status: StatusError, Err: err, Elapsed: time.Since(start)})
				return fmt.Errorf("%s: %w", path, err)
			}
			fr.Bag = res.Bag
			fr.Timing = res.Timing
			storeCache(opts, file, res.Bag)
			emit(sink, Event{File: path, Stage: StageSpell, Status: StatusDone, Elapsed: time.Since(start), Findings: res.Bag.Len()})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}
	return result, nil
}

func loadFailure(path string, err error, opts Options) *diag.Bag {
	level.Warn(opts.logger()).Log("msg", "skipping unreadable file", "path", path, "err", err)
	msg := "failed to load file: " + err.Error()
	if errors.Is(err, fs.ErrNotExist) {
		msg = "file does not exist"
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	bag.Add(diag.NewError(diag.IOLoadFailed, source.Span{}, msg).At(filepath.ToSlash(filepath.Clean(path)), source.LineCol{}))
	return bag
}
