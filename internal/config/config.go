package config

import (
	"fmt"
	"os"
	"path/filepath"

	"applauncher/internal/errors"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// Every field has a default, so a missing config file reproduces the
// launcher's fixed behaviour exactly.
type Config struct {
	Directories struct {
		System string `yaml:"system"` // System-wide applications directory
		User   string `yaml:"user"`   // Applications directory relative to the home directory
	} `yaml:"directories"`
	Scan struct {
		Pattern string `yaml:"pattern"` // File name glob for descriptor files
	} `yaml:"scan"`
	Launch struct {
		Shell string `yaml:"shell"` // Interpreter used as "<shell> -c <exec>"
	} `yaml:"launch"`
	Window struct {
		Title  string  `yaml:"title"`
		Width  float32 `yaml:"width"`
		Height float32 `yaml:"height"`
	} `yaml:"window"`
	Debug bool `yaml:"debug"` // Enable debug logging
}

// DefaultPath returns ~/.config/applauncher/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "applauncher", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.NewConfigError("cannot resolve config location", "", errors.ConfigNotFound, err)
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Directories.System != "" {
		cfg.Directories.System = tempCfg.Directories.System
	}
	if tempCfg.Directories.User != "" {
		cfg.Directories.User = tempCfg.Directories.User
	}
	if tempCfg.Scan.Pattern != "" {
		cfg.Scan.Pattern = tempCfg.Scan.Pattern
	}
	if tempCfg.Launch.Shell != "" {
		cfg.Launch.Shell = tempCfg.Launch.Shell
	}
	if tempCfg.Window.Title != "" {
		cfg.Window.Title = tempCfg.Window.Title
	}
	if tempCfg.Window.Width != 0 {
		cfg.Window.Width = tempCfg.Window.Width
	}
	if tempCfg.Window.Height != 0 {
		cfg.Window.Height = tempCfg.Window.Height
	}
	cfg.Debug = tempCfg.Debug

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Directories.System = "/usr/share/applications"
	cfg.Directories.User = filepath.Join(".local", "share", "applications")
	cfg.Scan.Pattern = "*.desktop"
	cfg.Launch.Shell = "/bin/sh"
	cfg.Window.Title = "applauncher"
	cfg.Window.Width = 640
	cfg.Window.Height = 480
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrInvalidConfig
	}

	if c.Directories.System == "" {
		return errors.NewConfigError("system directory is required", "directories.system", errors.InvalidConfig, nil)
	}

	if _, err := glob.Compile(c.Scan.Pattern); c.Scan.Pattern == "" || err != nil {
		return errors.NewConfigError("invalid scan pattern", "scan.pattern", errors.InvalidConfig, err)
	}

	if c.Launch.Shell == "" {
		return errors.NewConfigError("launch shell is required", "launch.shell", errors.InvalidConfig, nil)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.NewConfigError("window dimensions must be positive", "window", errors.InvalidConfig,
			fmt.Errorf("%gx%g", c.Window.Width, c.Window.Height))
	}

	return nil
}

// ApplicationDirs returns the directories to scan, system first. The user
// directory is included only when home resolves; a relative user directory is
// joined onto home.
func (c *Config) ApplicationDirs(home func() (string, error)) ([]string, error) {
	dirs := []string{c.Directories.System}
	if c.Directories.User == "" {
		return dirs, nil
	}
	if filepath.IsAbs(c.Directories.User) {
		return append(dirs, c.Directories.User), nil
	}
	h, err := home()
	if err != nil || h == "" {
		if err == nil {
			err = errors.New("empty home directory")
		}
		return dirs, errors.Wrapf(err, "could not resolve home directory for %s", c.Directories.User)
	}
	return append(dirs, filepath.Join(h, c.Directories.User)), nil
}
