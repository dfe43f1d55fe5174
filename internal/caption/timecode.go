package caption

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToSeconds converts an HH:MM:SS,mmm timestamp to seconds. A dot decimal
// separator is accepted as well, so WebVTT-style values parse too.
func ToSeconds(timestamp string) (float64, error) {
	parts := strings.Split(strings.Replace(timestamp, ",", ".", 1), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed timestamp %q", timestamp)
	}

	hours, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp %q: %w", timestamp, err)
	}
	minutes, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp %q: %w", timestamp, err)
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp %q: %w", timestamp, err)
	}

	return hours*3600 + minutes*60 + seconds, nil
}

// FromSeconds converts seconds to the HH:MM:SS,mmm wire format. This is
// the single source of truth for the comma-decimal timestamp; the VTT
// dot form is derived by replacement at export time.
func FromSeconds(seconds float64) string {
	// Round once to whole milliseconds so a carry propagates through
	// every field; rounding per field can leave a seconds value of 60.
	totalMillis := int64(math.Round(math.Abs(seconds) * 1000))
	hours := totalMillis / 3600000
	minutes := totalMillis % 3600000 / 60000
	secs := totalMillis % 60000 / 1000
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
