// Package output renders report results as human-readable text.
package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/logproc/pkg/analyzer"
	"github.com/ccollicutt/logproc/pkg/parser"
)

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Timestamps renders entry times. Defaults to parser.DefaultLayout in
	// time.Local.
	Timestamps *parser.TimestampParser
}

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	if opts.Timestamps == nil {
		opts.Timestamps = parser.NewTimestampParser(parser.DefaultLayout, nil)
	}
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// FormatLevelCounts renders the per-level summary.
func (f *TextFormatter) FormatLevelCounts(ctx context.Context, counts *analyzer.LevelCounts, w io.Writer) error {
	fmt.Fprintln(w, "Log Summary:")
	for _, lc := range counts.Counts {
		fmt.Fprintf(w, "%s: %d messages\n", lc.Level, lc.Count)
	}
	fmt.Fprintln(w)
	return nil
}

// FormatListing renders every entry of a level listing, one per line.
func (f *TextFormatter) FormatListing(ctx context.Context, listing *analyzer.Listing, w io.Writer) error {
	fmt.Fprintf(w, "%s messages:\n", listing.Level)
	for i := range listing.Entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		f.formatEntry(&listing.Entries[i], w)
	}
	fmt.Fprintln(w)
	return nil
}

// FormatUptime renders the uptime as HH:MM:SS.
func (f *TextFormatter) FormatUptime(ctx context.Context, uptime *analyzer.Uptime, w io.Writer) error {
	h, m, s := uptime.Clock()
	fmt.Fprintf(w, "System uptime: %02d:%02d:%02d\n", h, m, s)
	fmt.Fprintln(w)
	return nil
}

func (f *TextFormatter) formatEntry(e *parser.Entry, w io.Writer) {
	// Invalid timestamps show as time.Unix(-1, 0).
	fmt.Fprintf(w, "%s %s %s\n", f.opts.Timestamps.Format(e.Timestamp), e.Level, e.Message)
}
