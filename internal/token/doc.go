// Package token defines lexical token kinds and trivia for Surge sources.
// Invariants:
//   - Token.Text is exactly the source bytes covered by Token.Span.
//   - Span never includes leading trivia; FullStart does.
//   - Comments never appear in the token stream; they are Leading trivia of
//     the next significant token (or of EOF at the end of a file).
//   - Interpolated strings are split into FStringStart, StringSegment,
//     LBrace ... RBrace and FStringEnd tokens.
package token
