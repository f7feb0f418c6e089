package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/memscope/internal/export"
	"github.com/five82/memscope/internal/memreport"
)

const sampleReport = `MemReport: Begin command "ListTextures nonvt"
Listing all textures.
Cooked/OnDisk: Width x Height (Size in KB, Authored Bias), Current/InMem: Width x Height (Size in KB), Format, LODGroup, Name, Streaming, UnknownRef, VT, Usage Count, NumMips, Uncompressed
2048x2048 (32768 KB, ?), 2048x2048 (32768 KB), PF_FloatRGBA, TEXTUREGROUP_World, /Engine/EngineMaterials/DefaultBloomKernel.DefaultBloomKernel, NO, NO, NO, 0, 1, YES
Total size: InMem= 32.00 MB  OnDisk= 32.00 MB  Count=1
MemReport: End command "ListTextures nonvt"
`

func writeReport(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.ReplaceAll(sampleReport, "\n", "\r\n")), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestCheckExtension(t *testing.T) {
	tests := []struct {
		path string
		ok   bool
	}{
		{"report.memreport", true},
		{"report.MEMREPORT", true},
		{"/tmp/dir/report.txt", true},
		{"report.log", false},
		{"report", false},
		{"report.txt.gz", false},
	}
	for _, tt := range tests {
		err := CheckExtension(tt.path)
		if tt.ok && err != nil {
			t.Fatalf("CheckExtension(%q) = %v, want nil", tt.path, err)
		}
		if !tt.ok && !errors.Is(err, ErrUnsupportedExtension) {
			t.Fatalf("CheckExtension(%q) = %v, want ErrUnsupportedExtension", tt.path, err)
		}
	}
}

func TestLoader_Load(t *testing.T) {
	path := writeReport(t, "r.memreport")

	loader := Loader{ChunkSize: 16, Sections: memreport.DefaultSections()}
	var calls int
	var lastRead, lastTotal int64
	res, stamp, err := loader.Load(context.Background(), path, func(read, total int64) {
		calls++
		lastRead, lastTotal = read, total
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(res.Textures) != 1 || res.Textures[0].Name != "DefaultBloomKernel" {
		t.Fatalf("Textures = %#v", res.Textures)
	}
	if len(res.TextureGroups) != 1 || res.TextureGroups[0].Name != "Total Size" {
		t.Fatalf("TextureGroups = %#v", res.TextureGroups)
	}
	if stamp.IsZero() {
		t.Fatal("stamp is zero")
	}
	if calls < 2 {
		t.Fatalf("progress calls = %d, want one per 16-byte chunk", calls)
	}
	if lastRead != stamp.Size || lastTotal != stamp.Size {
		t.Fatalf("final progress = %d/%d, want %d/%d", lastRead, lastTotal, stamp.Size, stamp.Size)
	}
}

func TestLoader_LoadErrors(t *testing.T) {
	loader := Loader{Sections: memreport.DefaultSections()}

	if _, _, err := loader.Load(context.Background(), "report.csv", nil); !errors.Is(err, ErrUnsupportedExtension) {
		t.Fatalf("Load(csv) = %v, want ErrUnsupportedExtension", err)
	}
	missing := filepath.Join(t.TempDir(), "missing.txt")
	if _, _, err := loader.Load(context.Background(), missing, nil); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) = %v, want ErrNotExist", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, stamp, err := loader.Load(ctx, writeReport(t, "r.txt"), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Load(cancelled) = %v, want context.Canceled", err)
	}
	if stamp.IsZero() {
		t.Fatal("failed read should still report the stamp it saw")
	}
}

func TestRun_Dump(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		Path:       writeReport(t, "r.txt"),
		ConfigPath: filepath.Join(home, "none.toml"),
		Dump:       "json",
		Stdout:     &out,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), `"name": "DefaultBloomKernel"`) {
		t.Fatalf("dump output = %s", out.String())
	}
}

func TestRun_RejectsBeforeReading(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	err := Run(context.Background(), Options{Path: "report.log", ConfigPath: filepath.Join(home, "none.toml")})
	if !errors.Is(err, ErrUnsupportedExtension) {
		t.Fatalf("Run error = %v, want ErrUnsupportedExtension", err)
	}

	err = Run(context.Background(), Options{
		Path:       writeReport(t, "r.txt"),
		ConfigPath: filepath.Join(home, "none.toml"),
		Dump:       "xml",
	})
	if !errors.Is(err, export.ErrUnknownFormat) {
		t.Fatalf("Run error = %v, want ErrUnknownFormat", err)
	}
}

func TestRun_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("chunk_size = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	err := Run(context.Background(), Options{Path: "r.txt", ConfigPath: path})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Run error = %v, want load config error", err)
	}
}
