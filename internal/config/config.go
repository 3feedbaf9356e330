package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"sgspell/internal/diag"
	"sgspell/internal/spell"
)

// FileName is the configuration file looked up by Find.
const FileName = ".sgspell.toml"

var (
	// ErrNotFound is returned by Find when no configuration file exists up to the filesystem root.
	ErrNotFound = errors.New("no " + FileName + " found")
	// ErrExists is returned by WriteDefault when the file is already there.
	ErrExists = errors.New(FileName + " already exists")
)

// CheckConfig is the [check] table.
type CheckConfig struct {
	Comments    bool `toml:"comments"`
	Strings     bool `toml:"strings"`
	Identifiers bool `toml:"identifiers"`
	All         bool `toml:"all"`
}

// Config is the decoded file. Path and Root are empty for defaults.
type Config struct {
	Path string `toml:"-"`
	Root string `toml:"-"`

	Locale        string            `toml:"locale"`
	MinWordLength int               `toml:"min_word_length"`
	Ignore        []string          `toml:"ignore"`
	Exclude       []string          `toml:"exclude"`
	Severity      string            `toml:"severity"`
	Corrections   map[string]string `toml:"corrections"`
	Check         CheckConfig       `toml:"check"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		MinWordLength: spell.DefaultMinWordLength,
		Ignore:        []string{},
		Exclude:       []string{},
		Severity:      "warning",
		Corrections:   map[string]string{},
		Check:         CheckConfig{Comments: true, Strings: true, Identifiers: true},
	}
}

// Find walks up from startDir to locate FileName.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrNotFound
}

// Load decodes path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	cfg.Root = filepath.Dir(path)
	return cfg, nil
}

// Discover loads the nearest configuration above startDir, or the defaults
// when there is none.
func Discover(startDir string) (Config, error) {
	path, err := Find(startDir)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

// Validate checks values the decoder cannot.
func (c Config) Validate() error {
	if _, err := spell.ParseLocale(c.Locale); err != nil {
		return err
	}
	if c.MinWordLength < 0 {
		return fmt.Errorf("min_word_length must not be negative, got %d", c.MinWordLength)
	}
	if _, err := diag.ParseSeverity(c.Severity); err != nil {
		return err
	}
	for _, pattern := range c.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
	}
	for typo, fix := range c.Corrections {
		if strings.TrimSpace(typo) == "" || strings.TrimSpace(fix) == "" {
			return fmt.Errorf("corrections: empty entry %q = %q", typo, fix)
		}
	}
	return nil
}

// DictionaryOptions converts the dictionary settings.
func (c Config) DictionaryOptions() (spell.DictionaryOptions, error) {
	locale, err := spell.ParseLocale(c.Locale)
	if err != nil {
		return spell.DictionaryOptions{}, err
	}
	return spell.DictionaryOptions{
		Locale:        locale,
		MinWordLength: c.MinWordLength,
		Ignore:        c.Ignore,
		Corrections:   c.Corrections,
	}, nil
}

// CheckerOptions converts the [check] table.
func (c Config) CheckerOptions() spell.Options {
	return spell.Options{
		Comments:         c.Check.Comments,
		Strings:          c.Check.Strings,
		Identifiers:      c.Check.Identifiers,
		ResumeAfterMatch: c.Check.All,
	}
}

// FindingSeverity returns the severity spelling findings are reported with.
func (c Config) FindingSeverity() diag.Severity {
	sev, err := diag.ParseSeverity(c.Severity)
	if err != nil {
		return diag.SevWarning
	}
	return sev
}

// Excluded reports whether rel, a slash path relative to the checked root,
// matches one of the exclude globs. A pattern without a slash is matched
// against the base name; "dir/**" excludes everything below dir.
func (c Config) Excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range c.Exclude {
		if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
			if rel == prefix || strings.HasPrefix(rel, prefix+"/") {
				return true
			}
			continue
		}
		target := rel
		if !strings.Contains(pattern, "/") {
			target = filepath.Base(rel)
		}
		if ok, _ := filepath.Match(pattern, target); ok {
			return true
		}
	}
	return false
}

// WriteDefault writes the default configuration into dir and returns its path.
func WriteDefault(dir string, force bool) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return path, ErrExists
	}
	var buf bytes.Buffer
	buf.WriteString("# sgspell configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(Default()); err != nil {
		return path, fmt.Errorf("%s: failed to encode TOML: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return path, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
