package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/culturepulse/internal/constants"
)

// Config is the effective culturepulse configuration.
type Config struct {
	// Endpoint is the sheet webhook URL. Empty means submissions are not persisted.
	Endpoint string       `yaml:"endpoint"`
	Model    string       `yaml:"model"`
	APIKey   string       `yaml:"api_key,omitempty"`
	Debug    bool         `yaml:"debug"`
	Server   ServerConfig `yaml:"server"`

	// APIKeySource records where APIKey came from, for doctor and config show.
	APIKeySource string `yaml:"-"`
}

// ServerConfig configures the self-hosted sheet server.
type ServerConfig struct {
	Addr          string `yaml:"addr"`
	Database      string `yaml:"database"`
	RatePerMinute int    `yaml:"rate_per_minute"`
	Burst         int    `yaml:"burst"`
}

const (
	SourceNone    = "none"
	SourceFile    = "config file"
	SourceEnv     = "environment"
	SourceFlag    = "flag"
	SourceKeyring = "keyring"
)

func Default() *Config {
	return &Config{
		Model: constants.DefaultModel,
		Server: ServerConfig{
			Addr:          constants.DefaultServerAddr,
			Database:      constants.DefaultDBPath,
			RatePerMinute: constants.DefaultRatePerMinute,
			Burst:         constants.DefaultRateBurst,
		},
		APIKeySource: SourceNone,
	}
}

// Load reads the YAML file at path and applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ExpandPath(path))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if cfg.APIKey != "" {
			cfg.APIKeySource = SourceFile
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.fillDefaults()
	return cfg, nil
}

// Save writes the configuration to path, creating the directory if needed.
// The API key is never written; it belongs in the keyring.
func (c *Config) Save(path string) error {
	path = ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := *c
	out.APIKey = ""
	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(constants.EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(constants.EnvModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(constants.EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	// GEMINI_API_KEY wins over the generic API_KEY
	if v := os.Getenv(constants.EnvAPIKeyFallback); v != "" {
		c.APIKey = v
		c.APIKeySource = SourceEnv
	}
	if v := os.Getenv(constants.EnvAPIKey); v != "" {
		c.APIKey = v
		c.APIKeySource = SourceEnv
	}
}

func (c *Config) fillDefaults() {
	d := Default()
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	if c.Model == "" {
		c.Model = d.Model
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.Database == "" {
		c.Server.Database = d.Server.Database
	}
	if c.Server.RatePerMinute <= 0 {
		c.Server.RatePerMinute = d.Server.RatePerMinute
	}
	if c.Server.Burst <= 0 {
		c.Server.Burst = d.Server.Burst
	}
}

// ResolveAPIKey falls back to lookup (normally the OS keyring) when no other
// source provided a key. Lookup errors leave the config untouched.
func (c *Config) ResolveAPIKey(lookup func() (string, error)) {
	if c.APIKey != "" || lookup == nil {
		return
	}
	key, err := lookup()
	if err != nil || key == "" {
		return
	}
	c.APIKey = key
	c.APIKeySource = SourceKeyring
}

// MaskedAPIKey returns the key with all but the last four characters hidden.
func (c *Config) MaskedAPIKey() string {
	if c.APIKey == "" {
		return "(not set)"
	}
	if len(c.APIKey) <= 4 {
		return "****"
	}
	return strings.Repeat("*", 8) + c.APIKey[len(c.APIKey)-4:]
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
