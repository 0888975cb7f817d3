package subtitle

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"00:00:00,000", 0},
		{"00:00:01,000", time.Second},
		{"00:01:02,003", time.Minute + 2*time.Second + 3*time.Millisecond},
		{"01:30:45,500", time.Hour + 30*time.Minute + 45*time.Second + 500*time.Millisecond},
		{"99:59:59,999", 99*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimestampMalformed(t *testing.T) {
	inputs := []string{
		"",
		"00:00:00",
		"00:00:00.000",
		"0:00:00,000",
		"00:00:00,00",
		"00:00:00,0000",
		"00-00-00,000",
		"aa:bb:cc,ddd",
		"00:00:00,000 extra",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimestamp(input)
			if err == nil {
				t.Fatalf("ParseTimestamp(%q) succeeded, want error", input)
			}
			if !errors.Is(err, ErrMalformedTimestamp) {
				t.Errorf("ParseTimestamp(%q) error = %v, want ErrMalformedTimestamp", input, err)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "00:00:00,000"},
		{time.Second, "00:00:01,000"},
		{time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond, "01:02:03,004"},
		{10*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond, "10:59:59,999"},
		// sub-millisecond precision is truncated
		{time.Second + 500*time.Microsecond, "00:00:01,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatTimestamp(tt.input)
			if got != tt.want {
				t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	durations := []time.Duration{
		0,
		time.Millisecond,
		999 * time.Millisecond,
		time.Second,
		time.Minute + 500*time.Millisecond,
		time.Hour,
		2*time.Hour + 46*time.Minute + 40*time.Second,
		8*time.Second + 8*time.Second/3, // truncated to whole ms by Format
	}

	for _, d := range durations {
		want := d.Truncate(time.Millisecond)
		got, err := ParseTimestamp(FormatTimestamp(d))
		if err != nil {
			t.Fatalf("round trip of %v failed: %v", d, err)
		}
		if got != want {
			t.Errorf("round trip of %v = %v, want %v", d, got, want)
		}
	}
}
