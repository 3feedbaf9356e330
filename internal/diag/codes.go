package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenLimit               Code = 1005
	LexUnterminatedInterp       Code = 1006

	// syntax tree grouping
	SynUnclosedGroup  Code = 2001
	SynUnmatchedClose Code = 2002

	// files and configuration
	IOLoadFailed    Code = 4001
	IOConfigInvalid Code = 4002

	// spelling
	SpellMisspelling Code = 9001
)

// SpellingCategory is the fixed label every spelling finding is tagged with.
const SpellingCategory = "spelling"

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed number literal",
	LexTokenLimit:               "Token limit exceeded",
	LexUnterminatedInterp:       "Unterminated string interpolation",
	SynUnclosedGroup:            "Unclosed delimiter",
	SynUnmatchedClose:           "Unmatched closing delimiter",
	IOLoadFailed:                "File could not be read",
	IOConfigInvalid:             "Invalid configuration",
	SpellMisspelling:            "Misspelled word",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("SPL%04d", ic)
	}
	return "E0000"
}

// Category groups codes for filtering and SARIF rule metadata.
func (c Code) Category() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return "lexical"
	case ic >= 2000 && ic < 3000:
		return "syntax"
	case ic >= 4000 && ic < 5000:
		return "io"
	case ic >= 9000 && ic < 10000:
		return SpellingCategory
	}
	return "unknown"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return c.ID()
}
