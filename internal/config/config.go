// Package config loads tool configuration from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ProjectRoot     string `yaml:"project_root" validate:"required"`
	BackupRetention int    `yaml:"backup_retention" validate:"min=1,max=500"`
	LogLevel        string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

func Default() Config {
	return Config{
		ProjectRoot:     ".",
		BackupRetention: 20,
		LogLevel:        "info",
	}
}

// Load reads the config file if one exists and applies environment
// overrides. A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	path := configPath()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if root := os.Getenv("WRITERMEM_ROOT"); root != "" {
		cfg.ProjectRoot = root
	}
	if level := os.Getenv("WRITERMEM_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configPath() string {
	if path := os.Getenv("WRITERMEM_CONFIG"); path != "" {
		return path
	}
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "writermem", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "writermem", "config.yaml")
}

// expandTilde expands a leading ~/ to the user's home directory.
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func (c *Config) applyDefaults() {
	if c.ProjectRoot == "" {
		c.ProjectRoot = "."
	}
	c.ProjectRoot = expandTilde(c.ProjectRoot)
	if c.BackupRetention == 0 {
		c.BackupRetention = Default().BackupRetention
	}
	if c.LogLevel == "" {
		c.LogLevel = Default().LogLevel
	}
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
