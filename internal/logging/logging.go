// Package logging routes the standard logger to a debug file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

const teaPrefix = "memscope"

// Setup configures logging. With an empty filename log output is discarded, since
// the terminal belongs to the TUI. Otherwise the standard logger and Bubble Tea
// both append to filename.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)

	tf, err := tea.LogToFile(filename, teaPrefix)
	if err != nil {
		f.Close()
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("open tea log: %w", err)
	}

	cleanup = func() {
		log.SetOutput(io.Discard)
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}
