package linereader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultChunkSize is used when Options.ChunkSize is not positive.
const DefaultChunkSize = 4 << 20

// Options tune a read.
type Options struct {
	// ChunkSize is the number of decoded bytes requested per read.
	ChunkSize int
	// Progress, when set, receives the cumulative decoded byte count after each chunk.
	Progress func(read int64)
}

func (o Options) chunkSize() int {
	if o.ChunkSize > 0 {
		return o.ChunkSize
	}
	return DefaultChunkSize
}

// ReadFile opens path and returns its lines.
func ReadFile(ctx context.Context, path string, opts Options) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer file.Close()
	return Read(ctx, file, opts)
}

// Read decodes r and splits it into lines in file order.
func Read(ctx context.Context, r io.Reader, opts Options) ([]string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	src := transform.NewReader(r, decoder)

	chunk := make([]byte, opts.chunkSize())
	var (
		carry []byte
		lines []string
		total int64
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := io.ReadFull(src, chunk)
		if n > 0 {
			total += int64(n)
			carry = append(carry, chunk[:n]...)
			lines, carry = splitComplete(lines, carry)
			if opts.Progress != nil {
				opts.Progress(total)
			}
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read chunk: %w", err)
		}
	}
	if len(carry) > 0 {
		lines = append(lines, string(trimCR(carry)))
	}
	return lines, nil
}

// splitComplete appends every "\n"-terminated line in buf to lines and returns the
// unterminated remainder, moved to the front of buf.
func splitComplete(lines []string, buf []byte) ([]string, []byte) {
	rest := buf
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			break
		}
		lines = append(lines, string(trimCR(rest[:i])))
		rest = rest[i+1:]
	}
	return lines, append(buf[:0], rest...)
}

func trimCR(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\r' {
		return b[:n-1]
	}
	return b
}
