// Package diag defines the diagnostic model shared by the lexer, the tree
// builder, the spelling checker and the driver.
//
// # Purpose
//
//   - Provide deterministic, serialisable records for findings.
//   - Offer light-weight sinks (Reporter, Bag) so producers emit without
//     coupling to storage or rendering.
//   - Model corrections as structured edits that the fix engine can apply.
//
// # Scope
//
// Package diag does no formatting or IO. Rendering lives in internal/diagfmt,
// applying fixes lives in internal/fix.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error.
//   - Code – compact numeric identifier with a stable string form (LEX1002, SPL9001).
//   - Message – short human text. Spelling messages carry the [spelling] tag.
//   - Path/Pos – the file path and resolved 1-based line/column. Pos is (0,0)
//     when the producer could not resolve the offset; such diagnostics are
//     still emitted.
//   - Primary – the byte span the diagnostic is anchored to.
//   - Notes, Fixes – optional context and edits.
//
// # Emitting diagnostics
//
// Producers build through NewReportBuilder (or ReportError/ReportWarning) and
// call Emit, or call Reporter.Report directly. Emission is immediate; nothing in
// this package buffers or deduplicates except Bag, which is a sink chosen by the
// caller.
package diag
