package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeOfDay возвращается при некорректной строке времени
var ErrInvalidTimeOfDay = errors.New("invalid time of day, expected HH:MM or HH:MM:SS")

// TimeOfDay represents a moment within a day as minutes since local midnight.
// Values normally fall in [0, 1439], but a close/end time of an overnight
// span is kept as a value >= 1440 so that arithmetic stays monotonic.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" (seconds are truncated)
// into minutes since midnight. "24:00" is accepted as a midnight close
// (1440): some operating-hours feeds use it instead of "00:00".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return TimeOfDay(h*60 + m), nil
}

// Clock renders the time as "HH:MM" wrapped back into a 0-23:59 display,
// even when the internal value exceeds 1440 for overnight spans.
func (t TimeOfDay) Clock() string {
	m := int(t) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Minutes returns the raw minute value without wrapping.
func (t TimeOfDay) Minutes() int {
	return int(t)
}
