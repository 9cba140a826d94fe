// Package loader parses the tab-separated network model file format: an
// ordered sequence of named tables (INTERFACES_TABLE, NODES_TABLE,
// DEMANDS_TABLE, optional RSVP_LSP_TABLE), each a header line, a
// tab-separated column line, and data rows, separated from neighboring
// tables by a blank line.
//
// No repo in the retrieval pack imports a dedicated TSV/CSV library, so
// this package uses the standard library's encoding/csv with Comma set to
// '\t' — the direct, idiomatic answer for a well-understood tabular format
// stdlib already parses correctly (including quoting), rather than a
// hand-rolled split-by-tab that would reimplement what csv.Reader gives
// for free.
package loader
