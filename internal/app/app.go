package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/five82/memscope/internal/config"
	"github.com/five82/memscope/internal/export"
	"github.com/five82/memscope/internal/logging"
	"github.com/five82/memscope/internal/prefs"
	"github.com/five82/memscope/internal/state"
	"github.com/five82/memscope/internal/ui"
)

// Options configure the memscope application.
type Options struct {
	Path        string
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/memscope/prefs.toml
	LogFile     string // overrides log_file from config
	ChunkSize   int    // bytes; zero uses config
	PollSeconds int    // zero uses config, negative disables watching
	Dump        string // yaml or json: print the parsed report and exit
	Stdout      io.Writer
}

// Run loads the report at opts.Path and shows it until the user quits or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.ChunkSize > 0 {
		cfg.ChunkSize = opts.ChunkSize
	}
	if opts.PollSeconds != 0 {
		cfg.PollInterval = config.PollInterval(opts.PollSeconds)
	}
	logFile := cfg.LogFile
	if opts.LogFile != "" {
		logFile = config.ResolveLogFile(opts.LogFile)
	}

	cleanup, err := logging.Setup(logFile)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer cleanup()

	// An empty path starts the viewer with nothing loaded; the user opens a file from the UI.
	if opts.Path != "" {
		if err := CheckExtension(opts.Path); err != nil {
			return err
		}
	}

	loader := Loader{ChunkSize: cfg.ChunkSize, Sections: cfg.Sections}

	if opts.Dump != "" {
		return dump(ctx, loader, opts)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)
	store := &state.Store{}

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Load:      loader.Load,
		Path:      opts.Path,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	if cfg.PollInterval > 0 {
		uiOpts.Watch = func(ctx context.Context, changed func(path string)) {
			StartWatcher(ctx, store, cfg.PollInterval, changed)
		}
	}
	return ui.Run(uiOpts)
}

func dump(ctx context.Context, loader Loader, opts Options) error {
	format, err := export.ParseFormat(opts.Dump)
	if err != nil {
		return err
	}
	res, _, err := loader.Load(ctx, opts.Path, nil)
	if err != nil {
		return err
	}
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	return export.Write(out, res, format)
}
