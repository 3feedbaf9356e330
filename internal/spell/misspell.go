package spell

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/golangci/misspell"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Locale selects the regional spelling rules layered over the main dictionary.
type Locale string

const (
	LocaleDefault Locale = ""
	LocaleUS      Locale = "US"
	LocaleUK      Locale = "UK"
)

// ParseLocale accepts "", us/american and uk/gb/british in any case.
func ParseLocale(s string) (Locale, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return LocaleDefault, nil
	case "US", "AMERICAN":
		return LocaleUS, nil
	case "UK", "GB", "BRITISH":
		return LocaleUK, nil
	}
	return LocaleDefault, fmt.Errorf("unknown locale %q (expected US or UK)", s)
}

// DefaultMinWordLength skips one and two letter words.
const DefaultMinWordLength = 3

// DictionaryOptions tunes the misspelling dictionary.
type DictionaryOptions struct {
	Locale        Locale
	MinWordLength int
	// Ignore lists words that are never reported, case-insensitive.
	Ignore []string
	// Corrections adds typo -> fix rules.
	Corrections map[string]string
}

// MisspellOracle answers lookups from the github.com/golangci/misspell
// dictionary of common misspellings.
type MisspellOracle struct {
	replacer *misspell.Replacer
	minLen   int
}

// NewMisspellOracle compiles the dictionary for opts.
func NewMisspellOracle(opts DictionaryOptions) (*MisspellOracle, error) {
	r := misspell.New()
	switch opts.Locale {
	case LocaleDefault:
	case LocaleUS:
		r.AddRuleList(misspell.DictAmerican)
	case LocaleUK:
		r.AddRuleList(misspell.DictBritish)
	default:
		return nil, fmt.Errorf("unknown locale %q", opts.Locale)
	}

	if len(opts.Corrections) > 0 {
		typos := make([]string, 0, len(opts.Corrections))
		for typo := range opts.Corrections {
			typos = append(typos, typo)
		}
		sort.Strings(typos)
		rules := make([]string, 0, 2*len(typos))
		for _, typo := range typos {
			fix := strings.ToLower(strings.TrimSpace(opts.Corrections[typo]))
			typo = strings.ToLower(strings.TrimSpace(typo))
			if typo == "" || fix == "" || typo == fix {
				return nil, fmt.Errorf("invalid correction %q -> %q", typo, fix)
			}
			rules = append(rules, typo, fix)
		}
		r.AddRuleList(rules)
	}
	if len(opts.Ignore) > 0 {
		r.RemoveRule(opts.Ignore)
	}
	r.Compile()

	minLen := opts.MinWordLength
	if minLen <= 0 {
		minLen = DefaultMinWordLength
	}
	return &MisspellOracle{
		replacer: r,
		minLen:   minLen,
	}, nil
}

// FirstMisspelling scans letter runs of text from byte offset start.
func (o *MisspellOracle) FirstMisspelling(text string, start int) (Range, bool) {
	if start < 0 || start >= len(text) {
		return Range{}, false
	}
	for i := start; i < len(text); {
		r, sz := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsLetter(r) {
			i += sz
			continue
		}
		j := i + sz
		for j < len(text) {
			r2, sz2 := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsLetter(r2) {
				break
			}
			j += sz2
		}
		word := text[i:j]
		if utf8.RuneCountInString(word) >= o.minLen {
			if _, ok := o.lookup(word); ok {
				return Range{Start: i, Len: j - i}, true
			}
		}
		i = j
	}
	return Range{}, false
}

// Suggest returns the dictionary correction cased like the original word.
func (o *MisspellOracle) Suggest(text string, r Range) (string, bool) {
	if !r.within(text) {
		return "", false
	}
	word := text[r.Start:r.End()]
	fix, ok := o.lookup(word)
	if !ok {
		return "", false
	}
	return o.recase(word, fix), true
}

func (o *MisspellOracle) lookup(word string) (string, bool) {
	_, diffs := o.replacer.Replace(strings.ToLower(word))
	if len(diffs) == 0 {
		return "", false
	}
	return diffs[0].Corrected, true
}

// recase copies the casing style of word onto fix. Casers are stateful, so
// each call builds its own.
func (o *MisspellOracle) recase(word, fix string) string {
	switch {
	case isAllUpper(word) && utf8.RuneCountInString(word) > 1:
		return cases.Upper(language.Und).String(fix)
	case startsUpper(word):
		return cases.Title(language.Und).String(fix)
	}
	return fix
}

func isAllUpper(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return s != ""
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
