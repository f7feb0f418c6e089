package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/memscope/internal/app"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/memscope/config.toml)")
	prefsPath := flag.String("prefs", "", "preferences file path (optional)")
	debugLog := flag.String("debug", "", "write debug log to this file (optional)")
	chunkSize := flag.Int("chunk", 0, "read chunk size in bytes (optional, defaults to 4 MiB)")
	pollSeconds := flag.Int("poll", 0, "file watch interval in seconds (optional, defaults to 2s, negative disables)")
	dump := flag.String("dump", "", "print the parsed report as yaml or json and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: memscope [flags] <file.memreport|file.txt>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("memscope", version)
		return 0
	}

	path := flag.Arg(0)
	if path == "" && *dump != "" {
		fmt.Fprintln(os.Stderr, "memscope: -dump needs a report path")
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		Path:        path,
		ConfigPath:  *configPath,
		PrefsPath:   *prefsPath,
		LogFile:     *debugLog,
		ChunkSize:   *chunkSize,
		PollSeconds: *pollSeconds,
		Dump:        *dump,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "memscope: %v\n", err)
		return 1
	}
	return 0
}
