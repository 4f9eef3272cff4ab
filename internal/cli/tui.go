package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"searchbox/internal/config"
	"searchbox/internal/eventbus"
	"searchbox/internal/history"
	"searchbox/internal/searchapi"
	"searchbox/internal/ui"
)

// runTUI runs the interactive search screen until the user quits
func runTUI(cmd *cobra.Command, opts *options) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fmt.Errorf("searchbox needs an interactive terminal (try 'searchbox history list')")
	}

	closeLog := setupLogging(opts.logFile)
	defer closeLog()

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	client, err := searchapi.New(searchapi.Config{
		Endpoint:   cfg.Search.Endpoint,
		Path:       cfg.Search.Path,
		QueryParam: cfg.Search.QueryParam,
		Timeout:    cfg.Timeout(),
		RateLimit:  cfg.Search.RateLimitPerSec,
		Burst:      cfg.Search.Burst,
	})
	if err != nil {
		return err
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	tracker := history.NewTracker(store, cfg.Storage.HistoryKey)
	model := ui.NewModel(cfg, client, tracker, bus)
	defer model.Unmount()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	log.Printf("Starting searchbox against %s", client.SearchURL(""))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to the log file. The terminal
// belongs to the TUI, so when the file cannot be opened logs are discarded.
func setupLogging(path string) func() {
	if path == "" {
		path = config.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			log.SetOutput(logFile)
			return func() { _ = logFile.Close() }
		}
	}
	log.SetOutput(io.Discard)
	return func() {}
}
