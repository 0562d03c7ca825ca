package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds catalog API configuration
type ServerConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"` // Per-request HTTP timeout
}

// CatalogConfig holds catalog sizing
type CatalogConfig struct {
	EntryLimit     int    `mapstructure:"entry_limit"`    // Entries fetched in the single bulk load
	CategoryLimit  int    `mapstructure:"category_limit"` // Types requested for the type picker
	ArtworkBaseURL string `mapstructure:"artwork_base_url"`
}

// CacheConfig holds detail cache configuration
type CacheConfig struct {
	SpillDir string `mapstructure:"spill_dir"` // Empty = memory only
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: "https://pokeapi.co/api/v2",
			Timeout: 30 * time.Second,
		},
		Catalog: CatalogConfig{
			EntryLimit:     1025,
			CategoryLimit:  50,
			ArtworkBaseURL: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork",
		},
		Cache: CacheConfig{
			SpillDir: "",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "dex", "dex.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "dex", "dex.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "dex")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "dex")
	}
}

// LoadConfig loads configuration from file and environment into v.
// An explicit configFile overrides the search path and must exist.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	cfg := DefaultConfig()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides (DEX_SERVER_BASE_URL, ...)
	v.SetEnvPrefix("DEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bindEnvKeys registers every config key so AutomaticEnv values reach Unmarshal
func bindEnvKeys(v *viper.Viper) {
	for _, key := range []string{
		"server.base_url",
		"server.timeout",
		"catalog.entry_limit",
		"catalog.category_limit",
		"catalog.artwork_base_url",
		"cache.spill_dir",
		"logging.file",
		"logging.level",
	} {
		_ = v.BindEnv(key)
	}
}

// Validate checks values that would otherwise fail later in confusing ways
func (c *Config) Validate() error {
	if c.Server.BaseURL == "" {
		return fmt.Errorf("server.base_url must be set")
	}
	if c.Catalog.EntryLimit <= 0 {
		return fmt.Errorf("catalog.entry_limit must be positive, got %d", c.Catalog.EntryLimit)
	}
	if c.Catalog.CategoryLimit <= 0 {
		return fmt.Errorf("catalog.category_limit must be positive, got %d", c.Catalog.CategoryLimit)
	}
	return nil
}

// SaveConfig writes the configuration to the default config file
func SaveConfig(v *viper.Viper, cfg *Config) error {
	configPath := defaultConfigPath()

	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return writeConfig(v, cfg, filepath.Join(configPath, "config.yaml"))
}

func writeConfig(v *viper.Viper, cfg *Config, configFile string) error {
	// Set fields individually to ensure snake_case key names
	v.Set("server.base_url", cfg.Server.BaseURL)
	v.Set("server.timeout", cfg.Server.Timeout.String())
	v.Set("catalog.entry_limit", cfg.Catalog.EntryLimit)
	v.Set("catalog.category_limit", cfg.Catalog.CategoryLimit)
	v.Set("catalog.artwork_base_url", cfg.Catalog.ArtworkBaseURL)
	v.Set("cache.spill_dir", cfg.Cache.SpillDir)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
