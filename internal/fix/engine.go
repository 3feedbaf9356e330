package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"sgspell/internal/diag"
	"sgspell/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	// ApplyModeAll applies every non-conflicting fix.
	ApplyModeAll ApplyMode = iota
	// ApplyModeOnce applies the first fix in file order.
	ApplyModeOnce
)

// ApplyOptions configures how fixes are selected and written.
type ApplyOptions struct {
	Mode   ApplyMode
	DryRun bool // compute the result without touching files
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	ID        string // path:line:col of the diagnostic
	Title     string
	Code      diag.Code
	Message   string
	EditCount int
}

// SkippedFix captures a skipped fix with a reason.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	Path      string
	EditCount int
	Content   []byte // the rewritten file
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	id    string
	order int
}

type stagedEdit struct {
	edit  diag.FixEdit
	order int
}

// Apply collects fixes from diagnostics, selects a subset according to opts,
// validates their edits against the loaded content and rewrites the files.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates, skips := gatherCandidates(diagnostics)
	result.Skipped = append(result.Skipped, skips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	staged := make(map[source.FileID][]stagedEdit)
	for _, cand := range candidates {
		if opts.Mode == ApplyModeOnce && len(result.Applied) > 0 {
			break
		}
		if reason := checkCandidate(fs, cand, staged); reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{ID: cand.id, Title: cand.fix.Title, Reason: reason})
			continue
		}
		for _, e := range cand.fix.Edits {
			staged[e.Span.File] = append(staged[e.Span.File], stagedEdit{edit: e, order: cand.order})
		}
		result.Applied = append(result.Applied, AppliedFix{
			ID:        cand.id,
			Title:     cand.fix.Title,
			Code:      cand.diag.Code,
			Message:   cand.diag.Message,
			EditCount: len(cand.fix.Edits),
		})
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	ids := make([]source.FileID, 0, len(staged))
	for id := range staged {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		file := fs.Get(id)
		change := FileChange{
			Path:      file.FormatPath("relative", fs.BaseDir()),
			EditCount: len(staged[id]),
			Content:   rewrite(file.Content, staged[id]),
		}
		if !opts.DryRun {
			if err := writeFile(file, change.Content); err != nil {
				return result, err
			}
		}
		result.FileChanges = append(result.FileChanges, change)
	}
	return result, nil
}

// gatherCandidates flattens the fixes of every diagnostic. Fixes without
// edits are skipped.
func gatherCandidates(diagnostics []diag.Diagnostic) ([]candidate, []SkippedFix) {
	var cands []candidate
	var skips []SkippedFix

	order := 0
	for _, d := range diagnostics {
		id := fmt.Sprintf("%s:%d:%d", d.Path, d.Pos.Line, d.Pos.Col)
		for _, f := range d.Fixes {
			if len(f.Edits) == 0 {
				skips = append(skips, SkippedFix{ID: id, Title: f.Title, Reason: "fix has no edits"})
				continue
			}
			cands = append(cands, candidate{diag: d, fix: f, id: id, order: order})
			order++
		}
	}
	return cands, skips
}

// sortCandidates orders candidates by file and primary span, keeping
// insertion order for ties.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag, candidates[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		return candidates[i].order < candidates[j].order
	})
}

// checkCandidate returns the reason cand cannot be applied, or "".
func checkCandidate(fs *source.FileSet, cand candidate, staged map[source.FileID][]stagedEdit) string {
	for i, e := range cand.fix.Edits {
		file := fs.Get(e.Span.File)
		switch {
		case file == nil:
			return "target file is unknown"
		case file.Flags&source.FileVirtual != 0:
			return "target file is virtual"
		case file.Flags&(source.FileNormalizedCRLF|source.FileNormalizedNFC) != 0:
			return "target file was normalized on load"
		}
		if e.Span.End < e.Span.Start || int(e.Span.End) > len(file.Content) {
			return "edit span out of range"
		}
		if e.OldText != "" && string(file.Content[e.Span.Start:e.Span.End]) != e.OldText {
			return "existing text does not match expected content"
		}
		for _, prev := range staged[e.Span.File] {
			if spansConflict(prev.edit, e) {
				return fmt.Sprintf("conflicts with previously applied edits in %s", file.FormatPath("auto", fs.BaseDir()))
			}
		}
		for _, other := range cand.fix.Edits[:i] {
			if other.Span.File == e.Span.File && spansConflict(other, e) {
				return "fix has overlapping edits"
			}
		}
	}
	return ""
}

// spansConflict reports whether two text edits' spans overlap.
// Spans are treated as half-open intervals [Start, End). Two zero-length edits
// never conflict. A zero-length edit conflicts with a non-zero span if its
// position is within that span.
func spansConflict(a, b diag.FixEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

// rewrite applies non-overlapping edits back to front so earlier offsets stay
// valid. Insertions at the same offset keep their staging order.
func rewrite(content []byte, edits []stagedEdit) []byte {
	sorted := append([]stagedEdit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].edit.Span.Start != sorted[j].edit.Span.Start {
			return sorted[i].edit.Span.Start > sorted[j].edit.Span.Start
		}
		return sorted[i].order > sorted[j].order
	})

	out := append([]byte(nil), content...)
	for _, s := range sorted {
		start, end := s.edit.Span.Start, s.edit.Span.End
		suffix := append([]byte(nil), out[end:]...)
		out = append(append(out[:start], s.edit.NewText...), suffix...)
	}
	return out
}

func writeFile(file *source.File, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(file.Path); err == nil {
		mode = info.Mode()
	}
	if file.Flags&source.FileHadBOM != 0 {
		content = append(append([]byte(nil), utf8BOM...), content...)
	}
	if err := os.WriteFile(file.Path, content, mode); err != nil {
		return fmt.Errorf("write %s: %w", file.Path, err)
	}
	return nil
}
