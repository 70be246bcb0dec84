package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
		{"18:30:00", 1110}, // секунды отбрасываются
		{" 10:00 ", 600},
		{"24:00", 1440}, // закрытие в полночь
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.minutes, got.Minutes(), tt.input)
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	for _, input := range []string{"", "10", "25:00", "24:30", "10:60", "ab:cd", "10:00:00:00"} {
		_, err := ParseTimeOfDay(input)
		assert.ErrorIs(t, err, ErrInvalidTimeOfDay, input)
	}
}

func TestTimeOfDay_Clock(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay(545).Clock())
	// Значения за полночью заворачиваются только при отображении
	assert.Equal(t, "02:00", TimeOfDay(1560).Clock())
	assert.Equal(t, "00:00", TimeOfDay(1440).Clock())
}

func TestOperatingWindow_Normalized(t *testing.T) {
	w := OperatingWindow{Open: TimeOfDay(1320), Close: TimeOfDay(120)} // 22:00-02:00
	n := w.Normalized()

	assert.Equal(t, TimeOfDay(1320), n.Open)
	assert.Equal(t, TimeOfDay(1560), n.Close)

	// Обычное окно не меняется
	day := OperatingWindow{Open: TimeOfDay(540), Close: TimeOfDay(1320)}
	assert.Equal(t, day, day.Normalized())
}
