package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.ProjectRoot != "." {
		t.Errorf("ProjectRoot = %q, want %q", cfg.ProjectRoot, ".")
	}
	if cfg.BackupRetention != 20 {
		t.Errorf("BackupRetention = %d, want 20", cfg.BackupRetention)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("WRITERMEM_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("WRITERMEM_ROOT", "")
	t.Setenv("WRITERMEM_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", *cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "project_root: /tmp/novel\nbackup_retention: 5\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WRITERMEM_CONFIG", path)
	t.Setenv("WRITERMEM_ROOT", "")
	t.Setenv("WRITERMEM_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ProjectRoot != "/tmp/novel" || cfg.BackupRetention != 5 || cfg.LogLevel != "debug" {
		t.Errorf("Load() = %+v", *cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("project_root: /from/file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WRITERMEM_CONFIG", path)
	t.Setenv("WRITERMEM_ROOT", "/from/env")
	t.Setenv("WRITERMEM_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ProjectRoot != "/from/env" {
		t.Errorf("ProjectRoot = %q, want env override", cfg.ProjectRoot)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad log level", "log_level: loud\n"},
		{"retention too high", "backup_retention: 9000\n"},
		{"malformed yaml", "log_level: [unterminated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			t.Setenv("WRITERMEM_CONFIG", path)
			t.Setenv("WRITERMEM_ROOT", "")
			t.Setenv("WRITERMEM_LOG_LEVEL", "")
			if _, err := Load(); err == nil {
				t.Error("Load() accepted invalid config")
			}
		})
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandTilde("~/stories"); got != filepath.Join(home, "stories") {
		t.Errorf("expandTilde(~/stories) = %q", got)
	}
	if got := expandTilde("/abs/path"); got != "/abs/path" {
		t.Errorf("expandTilde(/abs/path) = %q", got)
	}
}
