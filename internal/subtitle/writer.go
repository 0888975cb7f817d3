package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FormatTrack serializes entries as SRT text. Indices are reassigned
// sequentially from 1; input indices are ignored.
func FormatTrack(entries []Entry) string {
	var sb strings.Builder
	for i, entry := range entries {
		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimestamp(entry.StartTime),
			FormatTimestamp(entry.EndTime)))

		// text
		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// WriteTrack serializes entries to an SRT file, creating the parent
// directory if needed.
func WriteTrack(entries []Entry, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(FormatTrack(entries)), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
