package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	defaultListenAddr = ":8793"
	defaultDBFile     = "astroplan.db"
)

// ServerConfig holds settings for the horoscope HTTP API.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr"`
}

// Config is the top-level application configuration.
type Config struct {
	// DBPath is the SQLite database file location.
	DBPath string       `mapstructure:"db_path" yaml:"db_path"`
	Server ServerConfig `mapstructure:"server" yaml:"server"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.astroplan/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".astroplan", "config.yaml")
}

func defaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DBPath: filepath.Join(home, ".astroplan", defaultDBFile),
		Server: ServerConfig{ListenAddr: defaultListenAddr},
	}
}

// Load reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration. The
// ASTROPLAN_DB and ASTROPLAN_ADDR environment variables override the file.
func Load(path string) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ASTROPLAN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ASTROPLAN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	defaults := defaultConfig()
	v.SetDefault("db_path", defaults.DBPath)
	v.SetDefault("server.listen_addr", defaults.Server.ListenAddr)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaults, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the given configuration to a YAML file at path, creating
// parent directories if needed.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("db_path", cfg.DBPath)
	v.Set("server", cfg.Server)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
