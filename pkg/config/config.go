package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
// An empty path skips the file and uses the defaults.
// Environment overrides apply in both cases.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and resolves the timezone.
func Validate(cfg *Config) error {
	if cfg.TimestampLayout == "" {
		return errors.New("timestamp_layout: layout is required")
	}

	loc, err := resolveTimezone(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	cfg.location = loc

	if err := validateLevels(cfg.Levels); err != nil {
		return fmt.Errorf("levels: %w", err)
	}

	if cfg.Markers.Startup == "" {
		return errors.New("markers.startup: marker is required")
	}
	if cfg.Markers.Shutdown == "" {
		return errors.New("markers.shutdown: marker is required")
	}

	return nil
}

func resolveTimezone(name string) (*time.Location, error) {
	switch name {
	case "", "Local":
		return time.Local, nil
	default:
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
		}
		return loc, nil
	}
}

// validateLevels requires uppercase levels: queries are uppercased before
// matching, so a lowercase level could never be listed.
func validateLevels(levels []string) error {
	if len(levels) == 0 {
		return errors.New("at least one level is required")
	}

	seen := make(map[string]bool, len(levels))
	for i, level := range levels {
		if level == "" {
			return fmt.Errorf("[%d]: level must not be empty", i)
		}
		if strings.ContainsAny(level, " \t") {
			return fmt.Errorf("[%d] %q: level must not contain whitespace", i, level)
		}
		if level != strings.ToUpper(level) {
			return fmt.Errorf("[%d] %q: level must be uppercase", i, level)
		}
		if seen[level] {
			return fmt.Errorf("[%d] %q: duplicate level", i, level)
		}
		seen[level] = true
	}

	return nil
}
