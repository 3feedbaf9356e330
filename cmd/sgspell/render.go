package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sgspell/internal/diag"
	"sgspell/internal/diagfmt"
	"sgspell/internal/source"
	"sgspell/internal/version"
)

// renderOptions collects the output flags of the check command.
type renderOptions struct {
	format    diagfmt.Format
	pathMode  diagfmt.PathMode
	color     bool
	withNotes bool
	showFixes bool
	preview   bool
	args      []string
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif|msgpack)")
	cmd.Flags().String("path-mode", "auto", "how file paths are printed (auto|absolute|relative|basename)")
	cmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	cmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	cmd.Flags().Bool("preview", false, "preview fixed lines in output")
}

func readRenderOptions(cmd *cobra.Command, out *os.File, args []string) (renderOptions, error) {
	var opts renderOptions
	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return opts, fmt.Errorf("failed to get format flag: %w", err)
	}
	if opts.format, err = diagfmt.ParseFormat(formatStr); err != nil {
		return opts, err
	}
	pathModeStr, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return opts, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if opts.pathMode, err = diagfmt.ParsePathMode(pathModeStr); err != nil {
		return opts, err
	}
	if opts.withNotes, err = cmd.Flags().GetBool("with-notes"); err != nil {
		return opts, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return opts, fmt.Errorf("failed to get suggest flag: %w", err)
	}
	if opts.preview, err = cmd.Flags().GetBool("preview"); err != nil {
		return opts, fmt.Errorf("failed to get preview flag: %w", err)
	}
	opts.showFixes = suggest || opts.preview
	if opts.color, err = useColor(cmd, out); err != nil {
		return opts, err
	}
	opts.args = args
	return opts, nil
}

// renderDiagnostics writes bag in the selected format.
func renderDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts renderOptions) error {
	switch opts.format {
	case diagfmt.FormatPretty:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:       opts.color,
			Context:     1,
			PathMode:    opts.pathMode,
			ShowNotes:   opts.withNotes,
			ShowFixes:   opts.showFixes,
			ShowPreview: opts.preview,
		})
		return nil
	case diagfmt.FormatShort:
		diagfmt.Short(w, bag, fs, opts.pathMode)
		return nil
	case diagfmt.FormatJSON, diagfmt.FormatMsgpack:
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         opts.pathMode,
			IncludeNotes:     opts.withNotes,
			IncludeFixes:     opts.showFixes,
			IncludePreviews:  opts.preview,
		}
		if opts.format == diagfmt.FormatMsgpack {
			return diagfmt.Msgpack(w, bag, fs, jsonOpts)
		}
		return diagfmt.JSON(w, bag, fs, jsonOpts)
	case diagfmt.FormatSarif:
		return diagfmt.Sarif(w, bag, fs, diagfmt.SarifRunMeta{
			ToolName:       "sgspell",
			ToolVersion:    version.String(),
			InvocationArgs: opts.args,
			PathMode:       opts.pathMode,
		})
	default:
		return fmt.Errorf("unknown format: %s", opts.format)
	}
}

// summaryLine describes a finished run for pretty output.
func summaryLine(files int, bag *diag.Bag) string {
	noun := "files"
	if files == 1 {
		noun = "file"
	}
	switch {
	case bag.Len() == 0:
		return fmt.Sprintf("checked %d %s, no misspellings found", files, noun)
	case bag.Dropped() > 0:
		return fmt.Sprintf("checked %d %s, %d diagnostics (%d more not shown)", files, noun, bag.Len(), bag.Dropped())
	default:
		return fmt.Sprintf("checked %d %s, %d diagnostics", files, noun, bag.Len())
	}
}
