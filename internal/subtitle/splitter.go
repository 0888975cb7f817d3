package subtitle

import (
	"strings"
	"time"
)

// SplitEntry divides an entry's time span evenly across the given text
// units. Boundaries are computed by multiplication from the original
// start, so the produced entries are contiguous, non-overlapping, and
// the last one ends exactly at the original end time.
//
// Indices are left at zero; the track is renumbered on serialization.
func SplitEntry(entry Entry, units []string) []Entry {
	if len(units) == 1 {
		return []Entry{{
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
			Text:      strings.TrimSpace(units[0]),
		}}
	}

	total := entry.EndTime - entry.StartTime
	n := time.Duration(len(units))

	entries := make([]Entry, 0, len(units))
	for i, unit := range units {
		entries = append(entries, Entry{
			StartTime: entry.StartTime + total*time.Duration(i)/n,
			EndTime:   entry.StartTime + total*time.Duration(i+1)/n,
			Text:      unit,
		})
	}

	return entries
}
