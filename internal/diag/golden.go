package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FormatGolden renders diagnostics one per line in a stable form suitable for
// golden files and test assertions:
//
//	<severity> <CODE> <path>:<line>:<col> <message>
//
// Paths under baseDir are made relative; messages are folded onto one line.
// Notes follow their diagnostic when includeNotes is set.
func FormatGolden(diags []Diagnostic, baseDir string, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}
	sorted := append([]Diagnostic(nil), diags...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i], sorted[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Pos.Line != dj.Pos.Line {
			return di.Pos.Line < dj.Pos.Line
		}
		return di.Pos.Col < dj.Pos.Col
	})

	lines := make([]string, 0, len(sorted))
	for _, d := range sorted {
		path := goldenPath(d.Path, baseDir)
		lines = append(lines, fmt.Sprintf("%s %s %s:%d:%d %s",
			strings.ToLower(d.Severity.String()), d.Code.ID(), path, d.Pos.Line, d.Pos.Col, flatten(d.Message)))
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			lines = append(lines, fmt.Sprintf("note %s %s %s", d.Code.ID(), path, flatten(n.Msg)))
		}
	}
	return strings.Join(lines, "\n")
}

func goldenPath(path, baseDir string) string {
	if baseDir == "" || path == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(baseDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func flatten(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
