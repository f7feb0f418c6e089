// Package ui provides the terminal user interface for memscope.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds one pane per table view from the
// tables package; each pane wraps a bubbles table and keeps its own sort spec,
// filter spec and selected column. Panes never parse: they are handed a
// memreport.Result after a load commits and re-run the query whenever the user
// changes a sort or filter.
//
// # Layout
//
//   - Header: report path, line count, load spinner, last error and notices
//   - Command bar: key hints for the focused pane, or the active prompt
//   - Tabs: Summary, Textures and Static Meshes
//   - Content: titled boxes, one per pane; the Textures tab stacks the texture
//     group totals above the texture list
//
// Tab and shift+tab move focus through the panes in order; the tab strip follows
// the focused pane.
//
// # Sorting and Filtering
//
// "s" makes the selected column the primary sort key (again to flip direction),
// "S" appends it as a secondary key and "x" drops back to the table's default
// sort. Panes store the effective sort returned by the query so the header
// markers always show the order actually applied.
//
// "/" opens a text prompt for the selected column and filters as you type; esc
// restores the previous filter. "f" cycles All, YES and NO on bool columns and
// "c" clears every filter on the pane.
//
// # Loading
//
// Loads run as commands. state.Store.Begin cancels the previous load and hands
// out a generation; Commit drops results from superseded generations, so the
// last file requested is the one shown. A failed load keeps the previous tables
// and shows the error in the header. When Options.Watch is set, changes to the
// loaded file on disk trigger a reload.
//
// # External Dependencies
//
//   - state.Store: load coordination and the committed Result
//   - tables: column definitions, default sorts and summary rows
//   - prefs: persisted theme choice
package ui
