package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// HistoryKey is the storage key the search history lives under
const HistoryKey = "searchHistory"

// Config represents the application configuration
type Config struct {
	Version int           `toml:"version"`
	Search  SearchConfig  `toml:"search"`
	Storage StorageConfig `toml:"storage"`
	UI      UISettings    `toml:"ui"`
}

// SearchConfig configures the remote search endpoint
type SearchConfig struct {
	Endpoint        string  `toml:"endpoint"`    // base URL, e.g. http://localhost:8080
	Path            string  `toml:"path"`        // defaults to /api/search
	QueryParam      string  `toml:"query_param"` // defaults to q
	DebounceMS      int     `toml:"debounce_ms"`
	TimeoutMS       int     `toml:"timeout_ms"`
	RateLimitPerSec float64 `toml:"rate_limit_per_sec"` // 0 disables throttling
	Burst           int     `toml:"burst"`
}

// StorageConfig configures where the history is persisted
type StorageConfig struct {
	Backend       string `toml:"backend"` // file, sqlite or memory
	Path          string `toml:"path"`
	HistoryKey    string `toml:"history_key"`
	LockTimeoutMS int    `toml:"lock_timeout_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Placeholder         string `toml:"placeholder"`
	ShowThumbnails      bool   `toml:"show_thumbnails"`
	HistoryDisplayLimit int    `toml:"history_display_limit"` // 0 shows everything
}

// Debounce returns the configured quiet period
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Search.DebounceMS) * time.Millisecond
}

// Timeout returns the HTTP timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Search.TimeoutMS) * time.Millisecond
}

// LockTimeout returns how long storage waits for the file lock
func (c *Config) LockTimeout() time.Duration {
	return time.Duration(c.Storage.LockTimeoutMS) * time.Millisecond
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if c.Search.DebounceMS < 0 {
		return fmt.Errorf("search.debounce_ms must not be negative")
	}
	if c.Search.TimeoutMS < 0 {
		return fmt.Errorf("search.timeout_ms must not be negative")
	}
	switch c.Storage.Backend {
	case "file", "sqlite", "memory":
	default:
		return fmt.Errorf("storage.backend must be file, sqlite or memory, got %q", c.Storage.Backend)
	}
	if c.Storage.HistoryKey == "" {
		return fmt.Errorf("storage.history_key must not be empty")
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service using the default location
func NewConfigService() ConfigService {
	return &configService{filePath: filepath.Join(defaultDir(), "config.toml")}
}

// NewConfigServiceAt creates a config service bound to path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchConfig{
			Endpoint:        "http://localhost:8080",
			Path:            "/api/search",
			QueryParam:      "q",
			DebounceMS:      300,
			TimeoutMS:       10000,
			RateLimitPerSec: 5,
			Burst:           1,
		},
		Storage: StorageConfig{
			Backend:       "file",
			Path:          filepath.Join(defaultDataDir(), "storage.json"),
			HistoryKey:    HistoryKey,
			LockTimeoutMS: 2000,
		},
		UI: UISettings{
			Placeholder:         "Search...",
			ShowThumbnails:      true,
			HistoryDisplayLimit: 10,
		},
	}
}

// applyDefaults fills values a file may have blanked out
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Search.Path == "" {
		c.Search.Path = def.Search.Path
	}
	if c.Search.QueryParam == "" {
		c.Search.QueryParam = def.Search.QueryParam
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	if c.Storage.HistoryKey == "" {
		c.Storage.HistoryKey = def.Storage.HistoryKey
	}
	if c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}
	if c.UI.Placeholder == "" {
		c.UI.Placeholder = def.UI.Placeholder
	}
}

// StoragePath returns the storage location, switching the untouched default
// file name to storage.db for the sqlite backend
func (c *Config) StoragePath() string {
	if c.Storage.Backend == "sqlite" && c.Storage.Path == DefaultConfig().Storage.Path {
		return filepath.Join(defaultDataDir(), "storage.db")
	}
	return c.Storage.Path
}

func defaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "searchbox")
}

func defaultDataDir() string {
	if cacheDir, err := os.UserCacheDir(); err == nil && cacheDir != "" {
		return filepath.Join(cacheDir, "searchbox")
	}
	return defaultDir()
}

// DefaultLogPath is where main writes the log file unless told otherwise
func DefaultLogPath() string {
	return filepath.Join(defaultDataDir(), "searchbox.log")
}
