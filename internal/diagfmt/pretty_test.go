package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"sgspell/internal/diag"
	"sgspell/internal/source"
)

// newDiag builds a diagnostic resolved against fs the way producers do.
func newDiag(fs *source.FileSet, id source.FileID, sev diag.Severity, code diag.Code, sp source.Span, msg string) diag.Diagnostic {
	f := fs.Get(id)
	pos, _ := f.LineColAt(sp.Start)
	return diag.New(sev, code, sp, msg).At(f.Path, pos)
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.sg", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(newDiag(fs, fileID, diag.SevError, diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 8, End: 28}, "Unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.sg:1:9"},
		{"Relative path", PathModeRelative, "src/test.sg:1:9"},
		{"Basename only", PathModeBasename, "test.sg:1:9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			for _, want := range []string{tt.contains, "ERROR", "LEX1002", "Unterminated string literal"} {
				if !strings.Contains(output, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, output)
				}
			}
		})
	}
}

func TestPathModeAuto(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Short path - as is", "test.sg", "test.sg:1:9"},
		{"Long absolute path - basename", "/very/long/absolute/path/to/some/nested/directory/file.sg", "file.sg:1:9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			fileID := fs.AddVirtual(tt.path, []byte("let x = 42\n"))
			bag := diag.NewBag(10)
			bag.Add(newDiag(fs, fileID, diag.SevWarning, diag.LexUnknownChar,
				source.Span{File: fileID, Start: 8, End: 10}, "Test warning"))

			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})

			if !strings.HasPrefix(buf.String(), tt.expected) {
				t.Errorf("expected output to start with %q, got:\n%s", tt.expected, buf.String())
			}
		})
	}
}

func TestPrettySnippetUnderline(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("u.sg", []byte("let a = 1;\nlet recieve_Data = 2;\nlet b = 3;\n"))
	bag := diag.NewBag(1)
	bag.Add(newDiag(fs, fileID, diag.SevWarning, diag.SpellMisspelling,
		source.Span{File: fileID, Start: 15, End: 27}, `"recieve" is misspelled; did you mean "receive"?`))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename})

	want := `u.sg:2:5: WARNING SPL9001: "recieve" is misspelled; did you mean "receive"?
1 | let a = 1;
2 | let recieve_Data = 2;
  |     ^~~~~~~~~~~~
3 | let b = 3;
`
	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyWideCharacters(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("w.sg", []byte("// 日本 helo\nx"))
	bag := diag.NewBag(1)
	bag.Add(newDiag(fs, fileID, diag.SevWarning, diag.SpellMisspelling,
		source.Span{File: fileID, Start: 10, End: 14}, `"helo" is misspelled`))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	if !strings.Contains(buf.String(), "  |         ^~~~\n") {
		t.Errorf("caret must account for double-width runes:\n%s", buf.String())
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sg", []byte("import core::util\n"))

	primary := source.Span{File: fileID, Start: 6, End: 10}
	d := newDiag(fs, fileID, diag.SevWarning, diag.SynUnmatchedClose, primary, "unexpected token")
	d = d.WithNote(source.Span{File: fileID, Start: 11, End: 15}, "remove trailing identifier")
	d = d.WithFix("insert semicolon", diag.FixEdit{Span: source.Span{File: fileID, Start: 10, End: 10}, NewText: ";"})

	bag := diag.NewBag(4)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true, ShowFixes: true})
	output := buf.String()

	for _, want := range []string{
		"note: test.sg:1:12: remove trailing identifier",
		"fix #1: insert semicolon",
		`edit test.sg:1:11-1:11 apply=";"`,
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestPrettyFixPreview(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("example.sg", []byte("let a = 42 // missing semicolon"))

	insertSpan := source.Span{File: fileID, Start: 10, End: 10}
	d := newDiag(fs, fileID, diag.SevWarning, diag.LexUnknownChar, insertSpan, "missing semicolon")
	d = d.WithFix("insert semicolon", diag.FixEdit{Span: insertSpan, NewText: ";"})
	bag := diag.NewBag(2)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowFixes: true, ShowPreview: true})
	output := buf.String()

	for _, want := range []string{"preview:", "- let a = 42 // missing semicolon", "+ let a = 42; // missing semicolon"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestPrettyWithoutFile(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.IOLoadFailed, source.Span{}, "open missing.sg: no such file").At("missing.sg", source.LineCol{}))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	want := "missing.sg:0:0: ERROR IO4001: open missing.sg: no such file\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.sg", []byte("helo"))
	bag := diag.NewBag(1)
	bag.Add(newDiag(fs, fileID, diag.SevError, diag.SpellMisspelling, source.Span{File: fileID, Start: 0, End: 4}, "x"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})

	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("plain output has escape codes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("colored output lacks escape codes: %q", colored.String())
	}
}

func TestShort(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("s.sg", []byte("x\n  helo"))
	bag := diag.NewBag(2)
	bag.Add(newDiag(fs, fileID, diag.SevWarning, diag.SpellMisspelling, source.Span{File: fileID, Start: 4, End: 8}, `"helo" is misspelled`))

	var buf bytes.Buffer
	Short(&buf, bag, fs, PathModeAuto)
	if got, want := buf.String(), "s.sg:2:3: \"helo\" is misspelled\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseFormatAndPathMode(t *testing.T) {
	for _, s := range []string{"pretty", "short", "JSON", "sarif", "msgpack"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
	if m, err := ParsePathMode("rel"); err != nil || m != PathModeRelative {
		t.Errorf("ParsePathMode(rel) = %v, %v", m, err)
	}
	if _, err := ParsePathMode("weird"); err == nil {
		t.Error("expected error for weird path mode")
	}
}
