package caption

import (
	"math"
	"testing"
)

func TestToSeconds(t *testing.T) {
	tests := []struct {
		timestamp string
		want      float64
	}{
		{"00:00:00,000", 0},
		{"00:00:10,500", 10.5},
		{"00:01:01,250", 61.25},
		{"01:00:00,000", 3600},
		{"02:30:15,083", 9015.083},
		{"00:00:05.250", 5.25}, // dot decimal accepted
	}

	for _, tt := range tests {
		got, err := ToSeconds(tt.timestamp)
		if err != nil {
			t.Errorf("ToSeconds(%q) unexpected error: %v", tt.timestamp, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ToSeconds(%q) = %f, want %f", tt.timestamp, got, tt.want)
		}
	}
}

func TestToSeconds_Malformed(t *testing.T) {
	for _, timestamp := range []string{"", "10,500", "00:00", "aa:bb:cc,ddd", "00:00:xx,000"} {
		if _, err := ToSeconds(timestamp); err == nil {
			t.Errorf("ToSeconds(%q) expected error, got nil", timestamp)
		}
	}
}

func TestFromSeconds(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{10.5, "00:00:10,500"},
		{15.0, "00:00:15,000"},
		{3600, "01:00:00,000"},
		{3661.25, "01:01:01,250"},
		{7200.083, "02:00:00,083"},
	}

	for _, tt := range tests {
		got := FromSeconds(tt.seconds)
		if got != tt.want {
			t.Errorf("FromSeconds(%f) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

// Rounding near a field boundary must carry into the next field: the
// seconds value 60 never appears on the wire.
func TestFromSeconds_CarryAtBoundaries(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{59.9996, "00:01:00,000"},
		{59.9994, "00:00:59,999"},
		{3599.9996, "01:00:00,000"},
		{3659.9996, "01:01:00,000"},
		{86399.9999, "24:00:00,000"},
	}

	for _, tt := range tests {
		got := FromSeconds(tt.seconds)
		if got != tt.want {
			t.Errorf("FromSeconds(%f) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestTimecodeRoundTrip(t *testing.T) {
	for _, timestamp := range []string{"00:00:00,000", "00:12:34,567", "01:02:03,004", "10:59:59,999"} {
		sec, err := ToSeconds(timestamp)
		if err != nil {
			t.Fatalf("ToSeconds(%q): %v", timestamp, err)
		}
		if got := FromSeconds(sec); got != timestamp {
			t.Errorf("FromSeconds(ToSeconds(%q)) = %q", timestamp, got)
		}
	}
}
