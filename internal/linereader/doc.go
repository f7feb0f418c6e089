// Package linereader splits a report into lines by reading it in large sequential
// chunks.
//
// Each chunk is appended to a carry buffer; complete "\n"-terminated lines are
// emitted and the unterminated remainder waits for the next chunk, so a line that
// straddles a chunk boundary comes out whole. At EOF a non-empty remainder becomes
// the final line. A trailing "\r" is removed from every line.
//
// Input is decoded before splitting. A UTF-8 or UTF-16 byte order mark selects the
// encoding; input without one is treated as UTF-8.
//
// Read checks its context between chunks. Cancellation and I/O errors return no
// lines at all, never a partial prefix.
package linereader
