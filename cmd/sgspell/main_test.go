package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sgspell/internal/config"
	"sgspell/internal/diag"
	"sgspell/internal/fix"
	"sgspell/internal/source"
)

const misspelledSource = "// we recieve data\nlet x = 1;\n"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitThenCheck(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.sg", misspelledSource)
	writeSource(t, dir, "b.sg", "let y = 2;\n")

	out, _, err := execute(t, "init", "--color", "off", dir)
	require.NoError(t, err)
	assert.Contains(t, out, config.FileName)
	assert.FileExists(t, filepath.Join(dir, config.FileName))

	_, _, err = execute(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	out, _, err = execute(t, "check", "--color", "off", "--ui", "off", "--format", "short", "--fail-on", "error", dir)
	require.NoError(t, err)
	assert.Contains(t, out, `"recieve" is misspelled; did you mean "receive"?`)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, ":2:1:")

	_, _, err = execute(t, "check", "--color", "off", "--ui", "off", "--format", "short", "--fail-on", "warning", dir)
	var exit exitError
	require.True(t, errors.As(err, &exit), "expected exit error, got %v", err)
	assert.Equal(t, 1, exit.code)
}

func TestCheckJSONOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "a.sg", misspelledSource)

	out, _, err := execute(t, "check", "--color", "off", "--ui", "off", "--format", "json", "--fail-on", "never", path)
	require.NoError(t, err)

	var doc struct {
		Diagnostics []struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Diagnostics, 1)
	assert.Equal(t, diag.SpellMisspelling.ID(), doc.Diagnostics[0].Code)
}

func TestFixDryRunLeavesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "a.sg", misspelledSource)

	out, _, err := execute(t, "fix", "--dry-run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Would apply 1 fix(es):")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, misspelledSource, string(got))
}

func TestVersionJSON(t *testing.T) {
	out, _, err := execute(t, "version", "--format", "json", "--hash")
	require.NoError(t, err)

	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "sgspell", payload.Tool)
	assert.NotEmpty(t, payload.Version)
	assert.NotEmpty(t, payload.GitCommit)
}

func TestParseFailOn(t *testing.T) {
	sev, ok, err := parseFailOn("warning")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, diag.SevWarning, sev)

	_, ok, err = parseFailOn("NEVER")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = parseFailOn("fatal")
	assert.Error(t, err)
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := readUIMode("sometimes")
	assert.Error(t, err)
	assert.True(t, shouldUseTUI(uiModeOn))
	assert.False(t, shouldUseTUI(uiModeOff))
}

func newCheckerCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addCheckerFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestApplyCheckerFlags(t *testing.T) {
	cfg := config.Default()
	cmd := newCheckerCommand(t, "--locale", "uk", "--severity", "error", "--only", "comments,identifiers", "--ignore", "teh", "--all")
	require.NoError(t, applyCheckerFlags(cmd, &cfg))

	assert.Equal(t, "uk", cfg.Locale)
	assert.Equal(t, diag.SevError, cfg.FindingSeverity())
	assert.Equal(t, config.CheckConfig{Comments: true, Identifiers: true, All: true}, cfg.Check)
	assert.Equal(t, []string{"teh"}, cfg.Ignore)
}

func TestApplyCheckerFlagsKeepsConfigWhenUnset(t *testing.T) {
	cfg := config.Default()
	cfg.Locale = "US"
	cmd := newCheckerCommand(t)
	require.NoError(t, applyCheckerFlags(cmd, &cfg))
	assert.Equal(t, "US", cfg.Locale)
	assert.Equal(t, config.Default().Check, cfg.Check)
}

func TestApplyCheckerFlagsRejectsBadValues(t *testing.T) {
	cfg := config.Default()
	err := applyCheckerFlags(newCheckerCommand(t, "--only", "docs"), &cfg)
	assert.ErrorContains(t, err, "--only")

	cfg = config.Default()
	err = applyCheckerFlags(newCheckerCommand(t, "--locale", "fr"), &cfg)
	assert.Error(t, err)
}

func TestHandleApplyResult(t *testing.T) {
	var buf bytes.Buffer
	res := &fix.ApplyResult{
		Applied:     []fix.AppliedFix{{ID: "a.sg:2:1", Title: "replace with receive", Code: diag.SpellMisspelling, EditCount: 1}},
		Skipped:     []fix.SkippedFix{{ID: "b.sg:1:1", Reason: "target file is virtual"}},
		FileChanges: []fix.FileChange{{Path: "a.sg", EditCount: 1}},
	}
	require.NoError(t, handleApplyResult(&buf, res, nil, false))
	out := buf.String()
	assert.Contains(t, out, "Applied 1 fix(es):")
	assert.Contains(t, out, "a.sg:2:1 [SPL9001] replace with receive (1 edits)")
	assert.Contains(t, out, "Updated files:")
	assert.Contains(t, out, "[b.sg:1:1]: target file is virtual")

	buf.Reset()
	require.NoError(t, handleApplyResult(&buf, &fix.ApplyResult{}, fix.ErrNoFixes, false))
	assert.Equal(t, "No applicable fixes found.\n", buf.String())
}

func TestSummaryLine(t *testing.T) {
	bag := diag.NewBag(1)
	assert.Equal(t, "checked 1 file, no misspellings found", summaryLine(1, bag))
	bag.Add(diag.New(diag.SevWarning, diag.SpellMisspelling, source.Span{}, "x"))
	bag.Add(diag.New(diag.SevWarning, diag.SpellMisspelling, source.Span{}, "y"))
	assert.Equal(t, "checked 3 files, 1 diagnostics (1 more not shown)", summaryLine(3, bag))
}

func TestSettingsFingerprintTracksOptions(t *testing.T) {
	cfg := config.Default()
	cmd := newCheckerCommand(t)
	cmd.PersistentFlags().Int("max-diagnostics", 100, "")
	opts, err := driverOptions(cmd, cfg, nil)
	require.NoError(t, err)
	base := settingsFingerprint(cfg, opts)

	cfg.Ignore = []string{"teh"}
	assert.NotEqual(t, base, settingsFingerprint(cfg, opts))

	cfg = config.Default()
	opts.Check.Identifiers = false
	assert.NotEqual(t, base, settingsFingerprint(cfg, opts))
}
