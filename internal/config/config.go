package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config is the application configuration, read from
// ~/.bookfinder/config.json when present.
type Config struct {
	// Catalog API
	API APIConfig `json:"api"`

	// UI behaviour
	UI UIConfig `json:"ui"`

	// Logging
	Log LogConfig `json:"log"`
}

// APIConfig holds catalog API settings
type APIConfig struct {
	Endpoint          string  `json:"endpoint"`
	APIKey            string  `json:"api_key,omitempty"`
	Query             string  `json:"query"`       // wildcard query for the catalog batch
	BatchSize         int     `json:"batch_size"`  // volumes fetched on catalog mount
	TimeoutSeconds    int     `json:"timeout_seconds"`
	RequestsPerSecond float64 `json:"requests_per_second"`
}

// UIConfig holds view settings
type UIConfig struct {
	GridSize        int `json:"grid_size"`        // random entries shown with no query
	SuggestionLimit int `json:"suggestion_limit"`
	ToggleThreshold int `json:"toggle_threshold"` // description length that enables Read More
	ClampLines      int `json:"clamp_lines"`      // description lines shown while collapsed
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `json:"level"` // debug, info, warn, error
	Dir   string `json:"dir,omitempty"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Endpoint:          "https://www.googleapis.com/books/v1",
			Query:             ".",
			BatchSize:         40,
			TimeoutSeconds:    30,
			RequestsPerSecond: 2,
		},
		UI: UIConfig{
			GridSize:        4,
			SuggestionLimit: 5,
			ToggleThreshold: 80,
			ClampLines:      3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DataDir returns the directory holding the config file and logs.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bookfinder")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// Load reads config from disk, or returns defaults, then applies
// environment overrides.
func Load() (*Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads config from path. A missing file yields defaults.
// Fields absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()
	cfg.normalize()
	return cfg, nil
}

// Save writes config to path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600) // may hold an API key
}

// ApplyEnv overrides settings from environment variables
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("BOOKFINDER_API_URL")); v != "" {
		c.API.Endpoint = v
	}
	if v := strings.TrimSpace(os.Getenv("BOOKFINDER_API_KEY")); v != "" {
		c.API.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("BOOKFINDER_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	c.API.Endpoint = strings.TrimRight(c.API.Endpoint, "/")
	if c.API.Endpoint == "" {
		c.API.Endpoint = def.API.Endpoint
	}
	if strings.TrimSpace(c.API.Query) == "" {
		c.API.Query = def.API.Query
	}
	if c.API.BatchSize <= 0 {
		c.API.BatchSize = def.API.BatchSize
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = def.API.TimeoutSeconds
	}
	if c.UI.GridSize <= 0 {
		c.UI.GridSize = def.UI.GridSize
	}
	if c.UI.SuggestionLimit <= 0 {
		c.UI.SuggestionLimit = def.UI.SuggestionLimit
	}
	if c.UI.ToggleThreshold <= 0 {
		c.UI.ToggleThreshold = def.UI.ToggleThreshold
	}
	if c.UI.ClampLines <= 0 {
		c.UI.ClampLines = def.UI.ClampLines
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// LogDir returns the log directory, defaulting to DataDir()/logs.
func (c *Config) LogDir() string {
	if c.Log.Dir != "" {
		return c.Log.Dir
	}
	return filepath.Join(DataDir(), "logs")
}
