// Package parser provides log file reading and parsing functionality.
package parser

import "time"

// InvalidUnix is the Unix time reported by a Timestamp that failed to parse.
const InvalidUnix int64 = -1

// Timestamp is the parsed time of a log entry. The zero value is invalid.
type Timestamp struct {
	t     time.Time
	valid bool
}

// NewTimestamp returns a valid Timestamp for t, truncated to whole seconds.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.Truncate(time.Second), valid: true}
}

// Valid reports whether the timestamp was parsed successfully.
func (ts Timestamp) Valid() bool {
	return ts.valid
}

// Time returns the parsed time, or time.Unix(InvalidUnix, 0) when invalid.
func (ts Timestamp) Time() time.Time {
	if !ts.valid {
		return time.Unix(InvalidUnix, 0)
	}
	return ts.t
}

// Unix returns the timestamp as seconds since the epoch, or InvalidUnix.
func (ts Timestamp) Unix() int64 {
	if !ts.valid {
		return InvalidUnix
	}
	return ts.t.Unix()
}

// Entry represents a single parsed log line.
type Entry struct {
	// Timestamp is the parsed time, possibly invalid.
	Timestamp Timestamp

	// Level is the severity token exactly as read from the line.
	Level string

	// Message is the remaining free text of the line.
	Message string

	// Source is the file path this line came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}

// Fields holds the raw text fields of a log line before timestamp parsing.
type Fields struct {
	Timestamp string
	Level     string
	Message   string
}
