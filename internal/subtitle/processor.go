package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	DefaultMaxLength   = 50
	DefaultMaxDuration = 8 * time.Second
)

// Processor re-segments a whole SRT track: cues whose text exceeds
// MaxLength runes are split into smaller cues whose timestamps evenly
// subdivide the original span, and the result is renumbered from 1.
type Processor struct {
	// rune limit per cue; the effective split gate
	MaxLength int

	// carried as policy but not used to gate splitting on its own:
	// every cue runs through the segmenter, and a cue that fits in
	// one unit passes through unchanged
	MaxDuration time.Duration

	Segmenter *Segmenter
}

func NewProcessor() *Processor {
	return &Processor{
		MaxLength:   DefaultMaxLength,
		MaxDuration: DefaultMaxDuration,
		Segmenter:   NewSegmenter(),
	}
}

// Process parses raw SRT text, re-segments every cue, and serializes
// the renumbered result. A failure on any cue rejects the whole track.
func (p *Processor) Process(raw string) (string, error) {
	entries, err := ParseTrack(raw)
	if err != nil {
		return "", err
	}

	var out []Entry
	for _, entry := range entries {
		units := p.Segmenter.Segment(entry.Text, p.MaxLength)
		out = append(out, SplitEntry(entry, units)...)
	}

	return FormatTrack(out), nil
}

// ProcessFile runs Process on an SRT file and writes the result next
// to it as <base>_processed.srt, returning the new path. Nothing is
// written unless the whole track processed successfully.
func (p *Processor) ProcessFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read subtitle file: %w", err)
	}

	processed, err := p.Process(string(raw))
	if err != nil {
		return "", fmt.Errorf("failed to process %s: %w", filepath.Base(path), err)
	}

	ext := filepath.Ext(path)
	outPath := strings.TrimSuffix(path, ext) + "_processed" + ext

	if err := os.WriteFile(outPath, []byte(processed), 0644); err != nil {
		return "", fmt.Errorf("failed to write processed subtitle: %w", err)
	}

	return outPath, nil
}
