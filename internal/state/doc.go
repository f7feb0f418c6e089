// Package state holds the currently loaded report and arbitrates between
// overlapping loads.
//
// Opening a file while another is still being read must not let the slower read
// overwrite the newer one. Every Begin bumps a generation counter and cancels the
// previous load's context; Commit accepts only the current generation:
//
//	gen, ctx := store.Begin(parent, path)
//	lines, err := linereader.ReadFile(ctx, path, opts)
//	...
//	store.Commit(gen, result, stamp, err) // false when a newer Begin happened
//
// A failed load keeps the previous result on screen and records the error, the
// same way a failed poll keeps the previous queue.
package state
