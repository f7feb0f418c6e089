package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	cleanup, err := Setup(path)
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	log.Printf("hello from test")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("log file = %q, want it to contain the message", data)
	}
}

func TestSetup_EmptyDiscards(t *testing.T) {
	cleanup, err := Setup("")
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	defer cleanup()
	if w := log.Writer(); w == os.Stderr {
		t.Fatal("log output still on stderr")
	}
}
