package diagfmt

import (
	"sgspell/internal/diag"
	"sgspell/internal/source"
)

// displayPath renders path in mode. Paths unknown to fs are printed as is.
func displayPath(path string, fs *source.FileSet, mode PathMode) string {
	if fs == nil || path == "" {
		return path
	}
	f, ok := fs.GetByPath(path)
	if !ok {
		return path
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// fileOf returns the file a diagnostic points into, or nil.
func fileOf(d diag.Diagnostic, fs *source.FileSet) *source.File {
	if fs == nil || d.Path == "" {
		return nil
	}
	f := fs.Get(d.Primary.File)
	if f == nil || f.Path != d.Path {
		return nil
	}
	return f
}

// spanPos resolves sp inside f; zero values when f is nil.
func spanPos(f *source.File, sp source.Span) (start, end source.LineCol) {
	if f == nil {
		return source.LineCol{}, source.LineCol{}
	}
	start, _ = f.LineColAt(sp.Start)
	end, _ = f.LineColAt(sp.End)
	return start, end
}
