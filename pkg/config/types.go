// Package config provides configuration loading and validation for logproc.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// TimestampLayout is the Go time layout of the timestamp field.
	// See https://pkg.go.dev/time#pkg-constants for format.
	TimestampLayout string `yaml:"timestamp_layout"`

	// Timezone names the zone timestamps are read and shown in
	// ("Local", "UTC" or an IANA name).
	Timezone string `yaml:"timezone"`

	// Levels are the recognized severity levels, in report order.
	Levels []string `yaml:"levels"`

	// Markers identify the entries used by the uptime report.
	Markers MarkerConfig `yaml:"markers"`

	// location is the resolved Timezone (populated during validation).
	location *time.Location
}

// MarkerConfig holds the message substrings for uptime.
type MarkerConfig struct {
	Startup  string `yaml:"startup"`
	Shutdown string `yaml:"shutdown"`
}

// Location returns the resolved timezone, or time.Local before validation.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}
