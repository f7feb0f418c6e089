package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/five82/memscope/internal/linereader"
	"github.com/five82/memscope/internal/memreport"
	"github.com/five82/memscope/internal/state"
)

// ErrUnsupportedExtension is returned for files that are not .txt or .memreport.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

var supportedExtensions = []string{".memreport", ".txt"}

// CheckExtension rejects paths whose extension memscope does not read.
func CheckExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, ok := range supportedExtensions {
		if ext == ok {
			return nil
		}
	}
	return fmt.Errorf("%s (want %s): %w", filepath.Base(path), strings.Join(supportedExtensions, " or "), ErrUnsupportedExtension)
}

// Loader reads and parses report files.
type Loader struct {
	ChunkSize int
	Sections  memreport.Sections
}

// Load reads path and parses it. The stamp is taken before reading so a file
// rewritten mid-read is seen as changed by the watcher; it is also returned with a
// read error so the watcher can tell a failed version from a new one. progress may
// be nil.
func (l Loader) Load(ctx context.Context, path string, progress func(read, total int64)) (memreport.Result, state.Stamp, error) {
	if err := CheckExtension(path); err != nil {
		return memreport.Result{}, state.Stamp{}, err
	}
	stamp, err := state.StatFile(path)
	if err != nil {
		return memreport.Result{}, state.Stamp{}, err
	}

	start := time.Now()
	opts := linereader.Options{ChunkSize: l.ChunkSize}
	if progress != nil {
		opts.Progress = func(read int64) { progress(read, stamp.Size) }
	}
	lines, err := linereader.ReadFile(ctx, path, opts)
	if err != nil {
		return memreport.Result{}, stamp, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	res := memreport.Parse(lines, l.Sections)
	log.Printf("loaded %s: %d lines, %d textures, %d texture groups, %d static meshes in %s",
		path, res.LineCount, len(res.Textures), len(res.TextureGroups), len(res.StaticMeshes),
		time.Since(start).Round(time.Millisecond))
	return res, stamp, nil
}
