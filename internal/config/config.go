package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"lotview/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Version    int                `toml:"version"`
	User       UserSettings       `toml:"user"`
	Listing    ListingSettings    `toml:"listing"`
	Storage    StorageSettings    `toml:"storage"`
	Checkpoint CheckpointSettings `toml:"checkpoint"`
	Analytics  AnalyticsSettings  `toml:"analytics"`
	Search     SearchSettings     `toml:"search"`
	Log        LogSettings        `toml:"log"`
}

// UserSettings identifies the logged-in user
type UserSettings struct {
	Login string `toml:"login"`
	ID    int64  `toml:"id"`
}

// ListingSettings selects the listing screen and its backend endpoint
type ListingSettings struct {
	Type         string `toml:"type"`
	MethodServer string `toml:"method_server"`
	ObjServer    string `toml:"obj_server"`
}

// StorageSettings configures the local search history database
type StorageSettings struct {
	HistoryPath string   `toml:"history_path"`
	Timeout     Duration `toml:"timeout"`
}

// CheckpointSettings configures where restorable screen state is kept
type CheckpointSettings struct {
	Backend   string   `toml:"backend"` // file, redis or memory
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	RedisDB   int      `toml:"redis_db"`
	TTL       Duration `toml:"ttl"`
}

// AnalyticsSettings configures the analytics sink
type AnalyticsSettings struct {
	Backend       string `toml:"backend"` // nats, log or noop
	NATSURL       string `toml:"nats_url"`
	SubjectPrefix string `toml:"subject_prefix"`
}

// SearchSettings tunes the search panel
type SearchSettings struct {
	LoadingMinVisible Duration `toml:"loading_min_visible"`
	HistoryDebounce   Duration `toml:"history_debounce"`
	HistoryLimit      int      `toml:"history_limit"`
}

// LogSettings configures the log file
type LogSettings struct {
	Level    string `toml:"level"`
	Encoding string `toml:"encoding"`
	Path     string `toml:"path"`
}

// Duration is a time.Duration that reads and writes as "1.5s" in TOML
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
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

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return &configService{
		filePath: filepath.Join(Dir(), "config.toml"),
	}
}

// NewConfigServiceWithPath creates a config service bound to an explicit file
func NewConfigServiceWithPath(path string) ConfigService {
	return &configService{filePath: path}
}

// Dir returns the lotview configuration directory
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "lotview")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist.
// Environment overrides are applied on top.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Missing keys keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
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

// Validate checks enumerated settings
func (c *Config) Validate() error {
	if _, err := domain.ParseListingType(c.Listing.Type); err != nil {
		return fmt.Errorf("listing.type: %w", err)
	}
	switch c.Checkpoint.Backend {
	case "file", "redis", "memory":
	default:
		return fmt.Errorf("checkpoint.backend: unknown backend %q", c.Checkpoint.Backend)
	}
	switch c.Analytics.Backend {
	case "nats", "log", "noop":
	default:
		return fmt.Errorf("analytics.backend: unknown backend %q", c.Analytics.Backend)
	}
	if c.Search.HistoryLimit < 0 {
		return fmt.Errorf("search.history_limit must not be negative")
	}
	return nil
}

// ApplyEnv overrides settings from LOTVIEW_* environment variables
func ApplyEnv(c *Config) error {
	c.User.Login = envOrDefault("LOTVIEW_USER", c.User.Login)
	if v := os.Getenv("LOTVIEW_USER_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("LOTVIEW_USER_ID: %w", err)
		}
		c.User.ID = id
	}
	c.Listing.Type = envOrDefault("LOTVIEW_LISTING_TYPE", c.Listing.Type)
	c.Analytics.NATSURL = envOrDefault("LOTVIEW_NATS_URL", c.Analytics.NATSURL)
	c.Analytics.Backend = envOrDefault("LOTVIEW_ANALYTICS", c.Analytics.Backend)
	c.Checkpoint.RedisAddr = envOrDefault("LOTVIEW_REDIS_ADDR", c.Checkpoint.RedisAddr)
	c.Checkpoint.Backend = envOrDefault("LOTVIEW_CHECKPOINT", c.Checkpoint.Backend)
	c.Log.Level = envOrDefault("LOTVIEW_LOG_LEVEL", c.Log.Level)
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := Dir()
	return &Config{
		Version: 1,
		Listing: ListingSettings{
			Type:         string(domain.ListingTypeSearch),
			MethodServer: "offers.list",
			ObjServer:    "catalog",
		},
		Storage: StorageSettings{
			HistoryPath: filepath.Join(dir, "history.db"),
			Timeout:     Duration{2 * time.Second},
		},
		Checkpoint: CheckpointSettings{
			Backend:   "file",
			Dir:       filepath.Join(dir, "checkpoints"),
			RedisAddr: "localhost:6379",
			TTL:       Duration{7 * 24 * time.Hour},
		},
		Analytics: AnalyticsSettings{
			Backend:       "log",
			NATSURL:       "nats://127.0.0.1:4222",
			SubjectPrefix: "lotview.analytics",
		},
		Search: SearchSettings{
			LoadingMinVisible: Duration{time.Second},
			HistoryDebounce:   Duration{150 * time.Millisecond},
			HistoryLimit:      50,
		},
		Log: LogSettings{
			Level:    "info",
			Encoding: "json",
			Path:     filepath.Join(dir, "lotview.log"),
		},
	}
}
