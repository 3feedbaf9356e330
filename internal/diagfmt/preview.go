package diagfmt

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"sgspell/internal/diag"
	"sgspell/internal/source"
)

type fixEditPreview struct {
	before []string
	after  []string
}

// buildFixEditPreview renders the whole lines touched by edit before and after applying it.
func buildFixEditPreview(fs *source.FileSet, edit diag.FixEdit) (fixEditPreview, error) {
	if fs == nil {
		return fixEditPreview{}, fmt.Errorf("nil FileSet")
	}
	file := fs.Get(edit.Span.File)
	if file == nil {
		return fixEditPreview{}, fmt.Errorf("file %d not found in FileSet", edit.Span.File)
	}

	startPos, endPos := fs.Resolve(edit.Span)
	startLine := startPos.Line
	endLine := max(endPos.Line, startLine)

	lenFileContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fixEditPreview{}, fmt.Errorf("len file content overflow: %w", err)
	}
	blockStart := lineStartOffset(file, startLine, lenFileContent)
	blockEnd := min(max(lineEndOffsetInclusive(file, endLine, lenFileContent), blockStart), lenFileContent)

	original := file.Content[blockStart:blockEnd]
	if edit.Span.Start < blockStart || edit.Span.End > blockEnd || edit.Span.End < edit.Span.Start {
		return fixEditPreview{}, fmt.Errorf("edit span %s out of range for preview block", edit.Span)
	}
	relStart := edit.Span.Start - blockStart
	relEnd := edit.Span.End - blockStart

	after := make([]byte, 0, len(original)+len(edit.NewText))
	after = append(after, original[:relStart]...)
	after = append(after, edit.NewText...)
	after = append(after, original[relEnd:]...)

	return fixEditPreview{
		before: splitPreviewLines(original),
		after:  splitPreviewLines(after),
	}, nil
}

func splitPreviewLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	return strings.Split(strings.TrimRight(string(content), "\n"), "\n")
}

func lineStartOffset(f *source.File, line, size uint32) uint32 {
	if line <= 1 {
		return 0
	}
	if idx := line - 2; int(idx) < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	return size
}

func lineEndOffsetInclusive(f *source.File, line, size uint32) uint32 {
	if line == 0 {
		return 0
	}
	if idx := line - 1; int(idx) < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	return size
}
