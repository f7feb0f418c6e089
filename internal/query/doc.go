// Package query sorts, filters and deduplicates record slices.
//
// # Overview
//
// The package is generic over the record type. Callers describe their columns once in
// a Registry and then drive it with plain values that round-trip through the UI:
//
//   - SortSpec: ordered sort keys, earlier keys take priority
//   - FilterSpec: column key to Constraint, combined with logical AND
//
// No state lives in the engine. Every call returns a new slice and leaves the input
// untouched, so the same records can be re-derived for every sort or filter change.
//
// # Column Kinds
//
// Each column declares how it is compared:
//
//   - String: locale-aware collation (golang.org/x/text/collate)
//   - Bool: false orders before true
//   - Dimension: "WxH" text, compared by width then height
//   - Number: numeric order
//
// Comparators are resolved once per SortKey. An unknown key returns
// ErrUnsupportedColumn before any record is touched.
//
// # Filtering
//
// String columns accept Contains constraints (case-insensitive, Unicode case folding).
// Bool columns accept TriState (All/YES/NO) and Exact constraints. A constraint with
// an empty value places no restriction on its column, so a FilterSpec of empty or
// All values is the identity.
//
// # Stability
//
// Sort is stable: records that compare equal on every key keep their input order.
// Sorting an already sorted slice with the same spec returns the same order.
package query
