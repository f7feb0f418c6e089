// Package tables defines the four memreport tables: their columns, default sorts,
// filter controls, cell formatting and summary rows.
//
// Views are package-level values built once at init. Their column keys are fixed, so
// MustApply treats an unknown sort or filter key as a programming error.
package tables
