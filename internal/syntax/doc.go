// Package syntax groups a flat token stream into a shallow tree.
//
// The tree is not a full parse. Bracketed groups ( ( [ { and f" ) own their
// contents and their closer, and the first token of a statement owns the rest
// of that statement. Every token of the stream, EOF included, appears in the
// tree exactly once, and a pre-order walk visits tokens in source order.
package syntax
