package parser

import (
	"context"
)

// LogSource provides an iterator over parsed log entries.
// Implementations must be safe for sequential access (not concurrent).
type LogSource interface {
	// Next returns the next parsed entry.
	// Returns io.EOF when no more entries are available.
	// Blank lines and lines with fewer than three fields are skipped.
	Next(ctx context.Context) (*Entry, error)

	// Close releases any resources held by the source.
	Close() error
}
