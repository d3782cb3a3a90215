package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ccollicutt/logproc/pkg/analyzer"
	"github.com/ccollicutt/logproc/pkg/parser"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestDefaultConfig_MatchesPackageDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TimestampLayout != parser.DefaultLayout {
		t.Errorf("TimestampLayout = %q, want %q", cfg.TimestampLayout, parser.DefaultLayout)
	}
	if cfg.Markers.Startup != analyzer.DefaultStartupMarker || cfg.Markers.Shutdown != analyzer.DefaultShutdownMarker {
		t.Errorf("Markers = %+v", cfg.Markers)
	}
	if strings.Join(cfg.Levels, ",") != strings.Join(analyzer.DefaultLevels(), ",") {
		t.Errorf("Levels = %v, want %v", cfg.Levels, analyzer.DefaultLevels())
	}

	cfg.Levels[0] = "TRACE"
	if DefaultConfig().Levels[0] != "INFO" {
		t.Error("mutating a config's levels changed the defaults")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TimestampLayout != DefaultTimestampLayout {
		t.Errorf("TimestampLayout = %q, want %q", cfg.TimestampLayout, DefaultTimestampLayout)
	}
	if len(cfg.Levels) != 3 || cfg.Levels[0] != "INFO" || cfg.Levels[1] != "WARNING" || cfg.Levels[2] != "ERROR" {
		t.Errorf("Levels = %v", cfg.Levels)
	}
	if cfg.Markers.Startup != "System startup" || cfg.Markers.Shutdown != "System shutdown" {
		t.Errorf("Markers = %+v", cfg.Markers)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(DefaultConfig()) error = %v", err)
	}
	if cfg.Location() != time.Local {
		t.Errorf("Location() = %v, want Local", cfg.Location())
	}
}

func TestLoad_NoPath(t *testing.T) {
	cfg, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TimestampLayout != DefaultTimestampLayout {
		t.Errorf("TimestampLayout = %q, want default", cfg.TimestampLayout)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
timestamp_layout: "2006/01/02 15:04:05"
timezone: UTC
levels: [DEBUG, INFO, ERROR]
markers:
  startup: "service started"
  shutdown: "service stopped"
`
	path := writeTempFile(t, "config.yaml", content)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TimestampLayout != "2006/01/02 15:04:05" {
		t.Errorf("TimestampLayout = %q", cfg.TimestampLayout)
	}
	if cfg.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", cfg.Location())
	}
	if len(cfg.Levels) != 3 || cfg.Levels[0] != "DEBUG" {
		t.Errorf("Levels = %v, want [DEBUG INFO ERROR]", cfg.Levels)
	}
	if cfg.Markers.Startup != "service started" || cfg.Markers.Shutdown != "service stopped" {
		t.Errorf("Markers = %+v", cfg.Markers)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "markers:\n  startup: booted\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Markers.Startup != "booted" {
		t.Errorf("Startup = %q, want booted", cfg.Markers.Startup)
	}
	if cfg.Markers.Shutdown != DefaultShutdownMarker {
		t.Errorf("Shutdown = %q, want default", cfg.Markers.Shutdown)
	}
	if len(cfg.Levels) != 3 {
		t.Errorf("Levels = %v, want defaults", cfg.Levels)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	content := `invalid: yaml: content: [`
	path := writeTempFile(t, "invalid.yaml", content)
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv(EnvTimestampLayout, "2006-01-02T15:04:05")
	t.Setenv(EnvTimezone, "UTC")

	path := writeTempFile(t, "config.yaml", "timestamp_layout: \"2006\"\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TimestampLayout != "2006-01-02T15:04:05" {
		t.Errorf("TimestampLayout = %q, want env override", cfg.TimestampLayout)
	}
	if cfg.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", cfg.Location())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:    "empty layout",
			modify:  func(c *Config) { c.TimestampLayout = "" },
			wantErr: "timestamp_layout",
		},
		{
			name:    "unknown timezone",
			modify:  func(c *Config) { c.Timezone = "Mars/Olympus_Mons" },
			wantErr: "timezone",
		},
		{
			name:    "no levels",
			modify:  func(c *Config) { c.Levels = nil },
			wantErr: "at least one level",
		},
		{
			name:    "empty level",
			modify:  func(c *Config) { c.Levels = []string{"INFO", ""} },
			wantErr: "must not be empty",
		},
		{
			name:    "lowercase level",
			modify:  func(c *Config) { c.Levels = []string{"info"} },
			wantErr: "uppercase",
		},
		{
			name:    "level with space",
			modify:  func(c *Config) { c.Levels = []string{"NOT ICE"} },
			wantErr: "whitespace",
		},
		{
			name:    "duplicate level",
			modify:  func(c *Config) { c.Levels = []string{"INFO", "INFO"} },
			wantErr: "duplicate",
		},
		{
			name:    "empty startup marker",
			modify:  func(c *Config) { c.Markers.Startup = "" },
			wantErr: "markers.startup",
		},
		{
			name:    "empty shutdown marker",
			modify:  func(c *Config) { c.Markers.Shutdown = "" },
			wantErr: "markers.shutdown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_EmptyTimezoneIsLocal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timezone = ""
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Location() != time.Local {
		t.Errorf("Location() = %v, want Local", cfg.Location())
	}
}
