package linereader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line no newline", "abc", []string{"abc"}},
		{"single line with newline", "abc\n", []string{"abc"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n\r\nc", []string{"a", "b", "", "c"}},
		{"lone newline", "\n", []string{""}},
		{"trailing cr at eof", "a\r", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(context.Background(), strings.NewReader(tt.input), Options{})
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Read() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadChunkBoundaries(t *testing.T) {
	input := "MemReport: Begin command \"ListTextures\"\r\nrow one\r\n\r\nrow two is longer than a chunk\nlast"
	want := []string{"MemReport: Begin command \"ListTextures\"", "row one", "", "row two is longer than a chunk", "last"}

	for _, size := range []int{1, 2, 3, 5, 7, 16, 1024} {
		got, err := Read(context.Background(), strings.NewReader(input), Options{ChunkSize: size})
		if err != nil {
			t.Fatalf("chunk %d: Read() error = %v", size, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("chunk %d: Read() = %q, want %q", size, got, want)
		}
	}
}

func TestReadSplitsCRLFAcrossChunks(t *testing.T) {
	// "\r" ends the first chunk and "\n" starts the second.
	got, err := Read(context.Background(), iotest.OneByteReader(strings.NewReader("ab\r\ncd")), Options{ChunkSize: 3})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []string{"ab", "cd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Read() = %q, want %q", got, want)
	}
}

func TestReadDecodesByteOrderMarks(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "héllo\nworld"...)},
		{"utf16le bom", []byte{0xFF, 0xFE, 'h', 0, 0xE9, 0, 'l', 0, 'l', 0, 'o', 0, '\r', 0, '\n', 0, 'w', 0, 'o', 0, 'r', 0, 'l', 0, 'd', 0}},
		{"utf16be bom", []byte{0xFE, 0xFF, 0, 'h', 0, 0xE9, 0, 'l', 0, 'l', 0, 'o', 0, '\n', 0, 'w', 0, 'o', 0, 'r', 0, 'l', 0, 'd'}},
	}
	want := []string{"héllo", "world"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(context.Background(), strings.NewReader(string(tt.input)), Options{ChunkSize: 4})
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("Read() = %q, want %q", got, want)
			}
		})
	}
}

func TestReadProgress(t *testing.T) {
	var calls []int64
	_, err := Read(context.Background(), strings.NewReader("0123456789"), Options{
		ChunkSize: 4,
		Progress:  func(n int64) { calls = append(calls, n) },
	})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []int64{4, 8, 10}
	if !reflect.DeepEqual(calls, want) {
		t.Fatalf("progress = %v, want %v", calls, want)
	}
}

func TestReadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lines, err := Read(ctx, strings.NewReader("a\nb\n"), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Read() error = %v, want context.Canceled", err)
	}
	if lines != nil {
		t.Fatalf("Read() lines = %q, want nil", lines)
	}
}

func TestReadCancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	lines, err := Read(ctx, strings.NewReader("a\nb\nc\nd\n"), Options{
		ChunkSize: 2,
		Progress: func(n int64) {
			if n >= 4 {
				cancel()
			}
		},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Read() error = %v, want context.Canceled", err)
	}
	if lines != nil {
		t.Fatalf("Read() lines = %q, want nil", lines)
	}
}

func TestReadError(t *testing.T) {
	boom := errors.New("boom")
	lines, err := Read(context.Background(), iotest.ErrReader(boom), Options{})
	if !errors.Is(err, boom) {
		t.Fatalf("Read() error = %v, want wrapped boom", err)
	}
	if !strings.Contains(err.Error(), "read chunk") {
		t.Fatalf("Read() error = %q, want read chunk prefix", err)
	}
	if lines != nil {
		t.Fatalf("Read() lines = %q, want nil", lines)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.memreport")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadFile(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Fatalf("ReadFile() = %q", got)
	}

	if _, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), Options{}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("ReadFile() missing error = %v, want ErrNotExist", err)
	}
}
