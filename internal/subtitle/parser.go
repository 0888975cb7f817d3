package subtitle

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type parseState int

const (
	stateIndex parseState = iota
	stateTimeRange
	stateText
)

// ParseTrack reads an SRT track into entries. A cue record is an index
// line, a time-range line, one or more text lines, then a blank line.
// Stray non-digit lines between records are skipped; an index line not
// followed by a time-range line fails with ErrMalformedTrack.
//
// Multi-line cue text is joined with a single space.
func ParseTrack(raw string) ([]Entry, error) {
	var entries []Entry

	state := stateIndex
	var current Entry
	var textLines []string

	flush := func() error {
		if len(textLines) == 0 {
			return fmt.Errorf("%w: cue %d has no text", ErrMalformedTrack, current.Index)
		}
		current.Text = strings.Join(textLines, " ")
		entries = append(entries, current)
		current = Entry{}
		textLines = nil
		return nil
	}

	scanner := bufio.NewScanner(strings.NewReader(raw))
	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimSpace(line)

		switch state {
		case stateIndex:
			if !isDigits(line) {
				continue
			}
			index, _ := strconv.Atoi(line)
			current = Entry{Index: index}
			state = stateTimeRange

		case stateTimeRange:
			start, end, err := parseTimeRange(line)
			if err != nil {
				return nil, fmt.Errorf("cue %d at line %d: %w", current.Index, lineNum, err)
			}
			if start >= end {
				return nil, fmt.Errorf(
					"%w: cue %d has inverted time range %s --> %s",
					ErrMalformedTrack,
					current.Index,
					FormatTimestamp(start),
					FormatTimestamp(end),
				)
			}
			current.StartTime = start
			current.EndTime = end
			state = stateText

		case stateText:
			if line == "" {
				if err := flush(); err != nil {
					return nil, err
				}
				state = stateIndex
				continue
			}
			textLines = append(textLines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading track: %w", err)
	}

	switch state {
	case stateTimeRange:
		return nil, fmt.Errorf("%w: cue %d missing time range", ErrMalformedTrack, current.Index)
	case stateText:
		if err := flush(); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

func parseTimeRange(line string) (start, end time.Duration, err error) {
	parts := strings.Split(line, " --> ")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: expected time range, got %q", ErrMalformedTrack, line)
	}

	start, err = ParseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	end, err = ParseTimestamp(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
