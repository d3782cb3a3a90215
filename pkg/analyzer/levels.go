package analyzer

import (
	"fmt"
	"strings"

	"github.com/ccollicutt/logproc/pkg/parser"
)

// CountLevels tallies entries per recognized level.
// Matching is exact and case-sensitive.
func (a *Analyzer) CountLevels(entries []parser.Entry) *LevelCounts {
	counts := make([]LevelCount, len(a.levels))
	index := make(map[string]int, len(a.levels))
	for i, l := range a.levels {
		counts[i].Level = l
		index[l] = i
	}

	result := &LevelCounts{Counts: counts}
	for _, e := range entries {
		i, ok := index[e.Level]
		if !ok {
			result.Unrecognized++
			continue
		}
		counts[i].Count++
		result.Total++
	}
	return result
}

// ListByLevel returns the entries whose level equals the query.
//
// Only the query is uppercased; stored levels are compared as read, so an
// entry logged as "info" never matches.
func (a *Analyzer) ListByLevel(entries []parser.Entry, level string) (*Listing, error) {
	normalized := strings.ToUpper(level)
	if !a.isLevel(normalized) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLevel, level)
	}

	listing := &Listing{Level: normalized}
	for _, e := range entries {
		if e.Level == normalized {
			listing.Entries = append(listing.Entries, e)
		}
	}
	return listing, nil
}
