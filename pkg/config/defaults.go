package config

import (
	"os"

	"github.com/ccollicutt/logproc/pkg/analyzer"
	"github.com/ccollicutt/logproc/pkg/parser"
)

// Default values for configuration.
const (
	DefaultTimestampLayout = parser.DefaultLayout
	DefaultTimezone        = "Local"
	DefaultStartupMarker   = analyzer.DefaultStartupMarker
	DefaultShutdownMarker  = analyzer.DefaultShutdownMarker
)

// Environment variable names.
const (
	EnvTimestampLayout = "LOGPROC_TIMESTAMP_LAYOUT"
	EnvTimezone        = "LOGPROC_TIMEZONE"
)

// DefaultLevels returns the levels recognized out of the box.
func DefaultLevels() []string {
	return analyzer.DefaultLevels()
}

// DefaultConfig returns a configuration with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		TimestampLayout: DefaultTimestampLayout,
		Timezone:        DefaultTimezone,
		Levels:          DefaultLevels(),
		Markers: MarkerConfig{
			Startup:  DefaultStartupMarker,
			Shutdown: DefaultShutdownMarker,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if layout := os.Getenv(EnvTimestampLayout); layout != "" {
		c.TimestampLayout = layout
	}
	if tz := os.Getenv(EnvTimezone); tz != "" {
		c.Timezone = tz
	}
}
