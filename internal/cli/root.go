// Package cli wires the searchbox commands together.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"searchbox/internal/config"
	"searchbox/internal/storage"
)

// options holds the flags shared by every command
type options struct {
	configPath  string
	endpoint    string
	debounce    time.Duration
	backend     string
	storagePath string
	logFile     string
}

// NewRootCommand builds the searchbox command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "searchbox",
		Short:        "Search a remote endpoint as you type",
		SilenceUsage: true, // don't print usage on operational errors
		Long: `searchbox queries a remote search endpoint while you type, lets you pick a
result and keeps every picked result in a local history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (default <user config dir>/searchbox/config.toml)")
	pf.StringVar(&opts.backend, "storage", "", "Storage backend: file, sqlite or memory")
	pf.StringVar(&opts.storagePath, "storage-path", "", "Storage file location")
	pf.StringVar(&opts.logFile, "log-file", "", "Log file (default <user cache dir>/searchbox/searchbox.log)")

	rootCmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "Search endpoint base URL")
	rootCmd.Flags().DurationVar(&opts.debounce, "debounce", 0, "Quiet period before a search fires (e.g. 300ms)")

	rootCmd.AddCommand(newHistoryCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}

// Execute is called by main.go.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *options) configService() config.ConfigService {
	if o.configPath != "" {
		return config.NewConfigServiceAt(o.configPath)
	}
	return config.NewConfigService()
}

// loadConfig reads the config file and applies the flags the user set
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := o.configService().Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Search.Endpoint = o.endpoint
	}
	if flags.Changed("debounce") {
		cfg.Search.DebounceMS = int(o.debounce / time.Millisecond)
	}
	if flags.Changed("storage") {
		cfg.Storage.Backend = o.backend
	}
	if flags.Changed("storage-path") {
		cfg.Storage.Path = o.storagePath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openStorage opens the backend named in cfg
func openStorage(cfg *config.Config) (storage.LocalStorage, error) {
	store, err := storage.Open(storage.Options{
		Backend:     cfg.Storage.Backend,
		Path:        cfg.StoragePath(),
		LockTimeout: cfg.LockTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open %s storage: %w", cfg.Storage.Backend, err)
	}
	return store, nil
}
