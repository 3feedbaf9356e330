package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sgspell/internal/diag"
	"sgspell/internal/driver"
	"sgspell/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] [file.sg|directory]...",
	Short: "Apply suggested spelling corrections",
	Long: `Check the given files and directories, then rewrite every misspelling that comes
with an unambiguous correction. Identifiers are never rewritten.`,
	RunE: runFix,
}

func init() {
	addCheckerFlags(fixCmd)
	fixCmd.Flags().Bool("once", false, "apply only the first available fix")
	fixCmd.Flags().Bool("dry-run", false, "print what would change without writing files")
	fixCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runFix(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}
	for _, arg := range args {
		if arg == "-" {
			return errors.New("fix: standard input cannot be rewritten")
		}
	}

	once, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	applyOpts := fix.ApplyOptions{Mode: fix.ApplyModeAll, DryRun: dryRun}
	if once {
		applyOpts.Mode = fix.ApplyModeOnce
	}

	cfg, err := loadConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if err = applyCheckerFlags(cmd, &cfg); err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd, cfg, logger)
	if err != nil {
		return err
	}
	// every finding is needed to collect its fix
	opts.MaxDiagnostics = 0

	baseDir, err := os.Getwd()
	if err != nil {
		return err
	}
	checked, err := driver.CheckPaths(cmd.Context(), args, baseDir, opts, jobs, nil)
	if err != nil {
		return fmt.Errorf("fix: check failed: %w", err)
	}

	var diagnostics []diag.Diagnostic
	for _, f := range checked.Files {
		if f.Bag == nil {
			continue
		}
		f.Bag.Sort()
		diagnostics = append(diagnostics, f.Bag.Items()...)
	}

	res, applyErr := fix.Apply(checked.FileSet, diagnostics, applyOpts)
	return handleApplyResult(cmd.OutOrStdout(), res, applyErr, dryRun)
}

func handleApplyResult(out io.Writer, res *fix.ApplyResult, applyErr error, dryRun bool) error {
	if res == nil {
		return applyErr
	}

	if len(res.Applied) > 0 {
		verb := "Applied"
		if dryRun {
			verb = "Would apply"
		}
		fmt.Fprintf(out, "%s %d fix(es):\n", verb, len(res.Applied))
		for _, item := range res.Applied {
			fmt.Fprintf(out, "  %s [%s] %s (%d edits)\n", item.ID, item.Code.ID(), item.Title, item.EditCount)
		}
	}

	if len(res.FileChanges) > 0 {
		if dryRun {
			fmt.Fprintln(out, "Files that would change:")
		} else {
			fmt.Fprintln(out, "Updated files:")
		}
		for _, change := range res.FileChanges {
			fmt.Fprintf(out, "  %s (%d edits)\n", change.Path, change.EditCount)
		}
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintln(out, "Skipped fixes:")
		for _, skip := range res.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if skip.Title != "" {
				fmt.Fprintf(out, "  %s [%s]: %s\n", skip.Title, id, skip.Reason)
			} else {
				fmt.Fprintf(out, "  [%s]: %s\n", id, skip.Reason)
			}
		}
	}

	if errors.Is(applyErr, fix.ErrNoFixes) {
		fmt.Fprintln(out, "No applicable fixes found.")
		return nil
	}
	return applyErr
}
