package analyzer

import (
	"strings"

	"github.com/ccollicutt/logproc/pkg/parser"
)

// Uptime measures the time between the first startup and the first shutdown
// entry. Both are searched from the start of the collection independently.
//
// A missing shutdown uses the Unix epoch as end time and the order of the two
// markers is not checked; see Uptime.ShutdownFound and Uptime.Negative.
func (a *Analyzer) Uptime(entries []parser.Entry) (*Uptime, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	start, ok := findMessage(entries, a.startupMarker)
	if !ok {
		return nil, ErrNoStartup
	}

	result := &Uptime{Start: start}
	var endUnix int64
	if end, ok := findMessage(entries, a.shutdownMarker); ok {
		result.End = end
		result.ShutdownFound = true
		endUnix = end.Timestamp.Unix()
	}

	result.Seconds = endUnix - start.Timestamp.Unix()
	return result, nil
}

func findMessage(entries []parser.Entry, marker string) (parser.Entry, bool) {
	for _, e := range entries {
		if strings.Contains(e.Message, marker) {
			return e, true
		}
	}
	return parser.Entry{}, false
}
