package parser

import (
	"fmt"
	"time"
)

// DefaultLayout is the Go layout for YYYY-MM-DD HH:MM:SS.
const DefaultLayout = "2006-01-02 15:04:05"

// TimestampParser parses the timestamp field of a log line.
type TimestampParser struct {
	layout string
	loc    *time.Location
}

// NewTimestampParser creates a parser for the given layout. Times without an
// explicit zone are interpreted in loc; a nil loc means time.Local.
func NewTimestampParser(layout string, loc *time.Location) *TimestampParser {
	if layout == "" {
		layout = DefaultLayout
	}
	if loc == nil {
		loc = time.Local
	}
	return &TimestampParser{
		layout: layout,
		loc:    loc,
	}
}

// Layout returns the layout used for parsing.
func (p *TimestampParser) Layout() string {
	return p.layout
}

// Location returns the location timestamps are interpreted in.
func (p *TimestampParser) Location() *time.Location {
	return p.loc
}

// Parse converts s to a Timestamp.
// On failure it returns an invalid Timestamp and the parse error.
func (p *TimestampParser) Parse(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(p.layout, s, p.loc)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return NewTimestamp(t), nil
}

// Format renders ts with the parser's layout in the parser's location.
func (p *TimestampParser) Format(ts Timestamp) string {
	return ts.Time().In(p.loc).Format(p.layout)
}
