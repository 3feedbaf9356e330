package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"sgspell/internal/config"
	"sgspell/internal/diag"
	"sgspell/internal/diagfmt"
	"sgspell/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.sg|directory|-]...",
	Short: "Check surge sources for misspellings",
	Long: `Check comments, string literals and identifiers of the given files and of all
*.sg files within the given directories. With no argument the current directory
is checked; "-" reads a single source from standard input.`,
	RunE: runCheck,
}

func init() {
	addRenderFlags(checkCmd)
	addCheckerFlags(checkCmd)
	checkCmd.Flags().String("fail-on", "error", "lowest severity that makes the run fail (info|warning|error|never)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().String("ui", "auto", "progress view for multi-file runs (auto|on|off)")
	checkCmd.Flags().Bool("cache", false, "reuse results of unchanged files from the disk cache")
	checkCmd.Flags().String("stdin-name", "<stdin>", "file name reported for standard input")
}

// runCheck executes the "check" command: it resolves the configuration, checks
// every target, renders the diagnostics and fails the run when a finding
// reaches the --fail-on severity.
func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	failOnStr, err := cmd.Flags().GetString("fail-on")
	if err != nil {
		return fmt.Errorf("failed to get fail-on flag: %w", err)
	}
	failOn, failEnabled, err := parseFailOn(failOnStr)
	if err != nil {
		return err
	}
	render, err := readRenderOptions(cmd, os.Stdout, args)
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
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
	if cfg.Path != "" {
		level.Debug(logger).Log("msg", "using configuration", "path", cfg.Path)
	}
	opts, err := driverOptions(cmd, cfg, logger)
	if err != nil {
		return err
	}

	var (
		bag    *diag.Bag
		result *driver.RunResult
		files  int
	)
	if len(args) == 1 && args[0] == "-" {
		res, err := checkStdin(cmd, cmd.InOrStdin(), opts)
		if err != nil {
			return err
		}
		bag = res.Bag
		result = &driver.RunResult{FileSet: res.FileSet, Files: []driver.FileResult{{
			Path: res.File.Path, FileID: res.File.ID, Loaded: true, Bag: res.Bag, Timing: res.Timing,
		}}}
		files = 1
	} else {
		if result, err = checkPaths(cmd, args, cfg, opts, quiet); err != nil {
			return err
		}
		bag = result.Bag(opts.MaxDiagnostics)
		files = len(result.Files)
	}

	bag.Sort()
	if err = renderDiagnostics(cmd.OutOrStdout(), bag, result.FileSet, render); err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}
	if render.format == diagfmt.FormatPretty && !quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), summaryLine(files, bag))
	}
	if showTimings {
		fmt.Fprint(cmd.ErrOrStderr(), result.Timing().Summary())
	}

	if failEnabled && bag.HasAtLeast(failOn) {
		return exitError{code: 1}
	}
	return nil
}

func checkStdin(cmd *cobra.Command, in io.Reader, opts driver.Options) (*driver.Result, error) {
	name, err := cmd.Flags().GetString("stdin-name")
	if err != nil {
		return nil, fmt.Errorf("failed to get stdin-name flag: %w", err)
	}
	src, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read standard input: %w", err)
	}
	return driver.CheckSource(name, src, opts)
}

func checkPaths(cmd *cobra.Command, paths []string, cfg config.Config, opts driver.Options, quiet bool) (*driver.RunResult, error) {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return nil, fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return nil, err
	}
	withCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if withCache {
		cache, cacheErr := driver.OpenDiskCache("sgspell")
		if cacheErr != nil {
			level.Warn(opts.Logger).Log("msg", "disk cache disabled", "err", cacheErr)
		} else {
			opts.Cache = cache
			opts.CacheKey = settingsFingerprint(cfg, opts)
		}
	}

	baseDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	files, err := driver.ListFiles(paths, opts.Exclude)
	if err != nil {
		return nil, err
	}
	if !quiet && len(files) > 1 && shouldUseTUI(mode) {
		title := "sgspell check " + displayTargets(paths)
		return runCheckWithUI(cmd.Context(), title, files, paths, baseDir, opts, jobs)
	}
	return driver.CheckPaths(cmd.Context(), paths, baseDir, opts, jobs, nil)
}

func displayTargets(paths []string) string {
	if len(paths) == 1 {
		return filepath.ToSlash(paths[0])
	}
	return fmt.Sprintf("%s (+%d)", filepath.ToSlash(paths[0]), len(paths)-1)
}
