// Package config loads lcl's settings from ~/.config/lcl/config.json and
// LCL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. LCL_STORAGE_BACKEND.
const EnvPrefix = "LCL"

// Config holds application configuration.
type Config struct {
	InstallationID string        `mapstructure:"installation_id"`
	Locale         string        `mapstructure:"locale"`
	Catalog        CatalogConfig `mapstructure:"catalog"`
	Storage        StorageConfig `mapstructure:"storage"`
	Render         RenderConfig  `mapstructure:"render"`
	Probe          ProbeConfig   `mapstructure:"probe"`
	Export         ExportConfig  `mapstructure:"export"`
	Log            LogConfig     `mapstructure:"log"`
}

// CatalogConfig locates the bundled command database.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// StorageConfig selects the bookmark backend.
type StorageConfig struct {
	Backend  string `mapstructure:"backend"`
	Path     string `mapstructure:"path"`
	JSONPath string `mapstructure:"json_path"`
}

// RenderConfig controls terminal markdown rendering.
type RenderConfig struct {
	Style string `mapstructure:"style"` // glamour style: auto, dark, light, notty
	Width int    `mapstructure:"width"`
}

// ProbeConfig controls the installed-command probe.
type ProbeConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	Concurrency int  `mapstructure:"concurrency"`
}

// ExportConfig controls bookmark export.
type ExportConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

// Dir returns the configuration directory: ~/.config/lcl
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lcl"), nil
}

// DefaultPath returns the default config file path: ~/.config/lcl/config.json
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("installation_id", "")
	v.SetDefault("locale", "")
	v.SetDefault("catalog.path", filepath.Join(dir, "commands.db"))
	v.SetDefault("storage.backend", "sqlite")
	v.SetDefault("storage.path", filepath.Join(dir, "bookmarks.db"))
	v.SetDefault("storage.json_path", filepath.Join(dir, "bookmarks.json"))
	v.SetDefault("render.style", "auto")
	v.SetDefault("render.width", 100)
	v.SetDefault("probe.enabled", true)
	v.SetDefault("probe.concurrency", 8)
	v.SetDefault("export.base_url", "https://linuxcommandlibrary.com")
	v.SetDefault("log.path", filepath.Join(dir, "lcl.log"))
}

// Load reads config from path (DefaultPath when empty) and the environment.
// Missing files are fine; the file is created with defaults and a fresh
// installation id on first run. Relative paths resolve against the config dir.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("config path: %w", err)
		}
	}
	dir := filepath.Dir(path)

	v := viper.New()
	setDefaults(v, dir)
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Catalog.Path = resolve(dir, cfg.Catalog.Path)
	cfg.Storage.Path = resolve(dir, cfg.Storage.Path)
	cfg.Storage.JSONPath = resolve(dir, cfg.Storage.JSONPath)
	cfg.Log.Path = resolve(dir, cfg.Log.Path)
	if cfg.Probe.Concurrency < 1 {
		cfg.Probe.Concurrency = 1
	}

	if cfg.InstallationID == "" {
		cfg.InstallationID = uuid.NewString()
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create config dir: %w", err)
		}
		// Best effort; without the write a new id is generated next run.
		_ = saveInstallationID(path, cfg.InstallationID)
	}

	return &cfg, nil
}

// saveInstallationID adds id to the file at path. Only keys already in the
// file are written with it, never defaults or environment overrides.
func saveInstallationID(path, id string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	v.Set("installation_id", id)
	return v.WriteConfigAs(path)
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return filepath.Join(dir, p)
}
