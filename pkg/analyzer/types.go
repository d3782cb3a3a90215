// Package analyzer provides the read-only reports run over parsed log entries.
package analyzer

import (
	"errors"

	"github.com/ccollicutt/logproc/pkg/parser"
)

var (
	// ErrInvalidLevel is returned when a listing asks for an unrecognized level.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrNoEntries is returned when a report needs at least one entry.
	ErrNoEntries = errors.New("no log entries to calculate uptime")

	// ErrNoStartup is returned when no entry carries the startup marker.
	ErrNoStartup = errors.New("no startup log found")
)

// LevelCount is the tally for one recognized level.
type LevelCount struct {
	Level string
	Count int
}

// LevelCounts contains the result of counting entries per level.
type LevelCounts struct {
	// Counts holds one tally per recognized level, in configured order.
	Counts []LevelCount

	// Total is the sum of all tallies.
	Total int

	// Unrecognized is the number of entries whose level matched none.
	Unrecognized int
}

// Count returns the tally for level, or 0 if it is not recognized.
func (c *LevelCounts) Count(level string) int {
	for _, lc := range c.Counts {
		if lc.Level == level {
			return lc.Count
		}
	}
	return 0
}

// Listing contains the entries that matched a level query.
type Listing struct {
	// Level is the normalized (uppercase) level that was queried.
	Level string

	// Entries are the matches in file order.
	Entries []parser.Entry
}

// Uptime contains the result of the uptime calculation.
type Uptime struct {
	// Start is the first entry carrying the startup marker.
	Start parser.Entry

	// End is the first entry carrying the shutdown marker.
	// Only meaningful when ShutdownFound is true.
	End parser.Entry

	// ShutdownFound reports whether a shutdown marker was seen.
	// Without one the end time is the Unix epoch.
	ShutdownFound bool

	// Seconds is the elapsed time between start and end.
	Seconds int64
}

// Clock splits Seconds into hours, minutes and seconds.
// Hours are not capped at 24. Negative durations give negative parts.
func (u *Uptime) Clock() (hours, minutes, seconds int64) {
	return u.Seconds / 3600, (u.Seconds % 3600) / 60, u.Seconds % 60
}

// Negative reports whether the end time precedes the start time.
func (u *Uptime) Negative() bool {
	return u.Seconds < 0
}
