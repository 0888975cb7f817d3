package subtitle

import (
	"errors"
	"time"
)

// represents single subtitle entry
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

var (
	// timestamp field does not match HH:MM:SS,mmm
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// structurally invalid cue record
	ErrMalformedTrack = errors.New("malformed track")
)
