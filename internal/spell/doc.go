// Package spell finds misspelled words in comments, string literals and
// identifiers of a grouped token tree.
//
// Text of a token is first normalized into a space separated word sequence
// (Normalize), then handed to an Oracle that locates the first misspelled
// word. Comment findings are reported at the start of the token the comment
// is attached to; findings in a token's own text at the start of its leading
// trivia.
// A comment containing the marker "spellcheck:disable:this" suppresses the
// whole subtree of the token carrying it.
package spell
