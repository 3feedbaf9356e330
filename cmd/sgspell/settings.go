package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"

	"sgspell/internal/config"
	"sgspell/internal/diag"
	"sgspell/internal/driver"
	"sgspell/internal/observ"
	"sgspell/internal/spell"
	"sgspell/internal/version"
)

// addCheckerFlags registers the flags shared by commands that run the checker.
func addCheckerFlags(cmd *cobra.Command) {
	cmd.Flags().String("locale", "", "regional spelling rules (US|UK), overrides the config file")
	cmd.Flags().String("severity", "", "severity of findings (info|warning|error), overrides the config file")
	cmd.Flags().StringSlice("only", nil, "check only these sources (comments,strings,identifiers)")
	cmd.Flags().StringSlice("ignore", nil, "additional words that are never reported")
	cmd.Flags().Bool("all", false, "report every misspelling of a fragment instead of the first")
	cmd.Flags().Int("max-tokens", 0, "stop lexing a file after this many tokens (0=unlimited)")
}

// loadConfig reads --config when given, otherwise discovers the nearest file
// above target.
func loadConfig(cmd *cobra.Command, target string) (config.Config, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if explicit != "" {
		return config.Load(explicit)
	}
	if target == "" || target == "-" {
		target = "."
	}
	return config.Discover(target)
}

// applyCheckerFlags overrides cfg with the command line.
func applyCheckerFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("locale") {
		locale, err := flags.GetString("locale")
		if err != nil {
			return err
		}
		cfg.Locale = locale
	}
	if flags.Changed("severity") {
		sev, err := flags.GetString("severity")
		if err != nil {
			return err
		}
		cfg.Severity = sev
	}
	if flags.Changed("only") {
		only, err := flags.GetStringSlice("only")
		if err != nil {
			return err
		}
		check := config.CheckConfig{All: cfg.Check.All}
		for _, src := range only {
			switch strings.ToLower(strings.TrimSpace(src)) {
			case "comments", "comment":
				check.Comments = true
			case "strings", "string":
				check.Strings = true
			case "identifiers", "identifier", "idents":
				check.Identifiers = true
			default:
				return fmt.Errorf("invalid --only value %q (expected comments|strings|identifiers)", src)
			}
		}
		cfg.Check = check
	}
	ignore, err := flags.GetStringSlice("ignore")
	if err != nil {
		return err
	}
	cfg.Ignore = append(cfg.Ignore, ignore...)
	all, err := flags.GetBool("all")
	if err != nil {
		return err
	}
	if all {
		cfg.Check.All = true
	}
	return cfg.Validate()
}

// newLogger builds the stderr logger from --log-level; --quiet silences it.
func newLogger(cmd *cobra.Command) (log.Logger, error) {
	lvl, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if quiet && !cmd.Root().PersistentFlags().Changed("log-level") {
		lvl = "none"
	}
	return observ.NewLogger(os.Stderr, lvl)
}

// driverOptions compiles the oracle for cfg and assembles the run options.
func driverOptions(cmd *cobra.Command, cfg config.Config, logger log.Logger) (driver.Options, error) {
	dict, err := cfg.DictionaryOptions()
	if err != nil {
		return driver.Options{}, err
	}
	oracle, err := spell.NewMisspellOracle(dict)
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to build dictionary: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	maxTokens, err := cmd.Flags().GetInt("max-tokens")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-tokens flag: %w", err)
	}

	opts := driver.DefaultOptions(oracle)
	opts.Check = cfg.CheckerOptions()
	opts.Severity = cfg.FindingSeverity()
	opts.MaxDiagnostics = maxDiagnostics
	opts.MaxTokens = maxTokens
	opts.Exclude = cfg.Excluded
	opts.Logger = logger
	return opts, nil
}

// settingsFingerprint hashes everything that changes a file's findings.
func settingsFingerprint(cfg config.Config, opts driver.Options) driver.Digest {
	ignore := append([]string(nil), cfg.Ignore...)
	sort.Strings(ignore)
	typos := make([]string, 0, len(cfg.Corrections))
	for typo, fix := range cfg.Corrections {
		typos = append(typos, typo+"="+fix)
	}
	sort.Strings(typos)
	return driver.Fingerprint(
		version.String(),
		cfg.Locale,
		strconv.Itoa(cfg.MinWordLength),
		strings.Join(ignore, ","),
		strings.Join(typos, ","),
		fmt.Sprintf("%+v", opts.Check),
		opts.Severity.String(),
		strconv.Itoa(opts.MaxDiagnostics),
		strconv.Itoa(opts.MaxTokens),
	)
}

// parseFailOn maps --fail-on to the lowest severity that fails the run.
// ok is false for "never".
func parseFailOn(s string) (sev diag.Severity, ok bool, err error) {
	if strings.EqualFold(strings.TrimSpace(s), "never") {
		return 0, false, nil
	}
	sev, err = diag.ParseSeverity(s)
	if err != nil {
		return 0, false, fmt.Errorf("invalid --fail-on value %q (expected info|warning|error|never)", s)
	}
	return sev, true, nil
}
