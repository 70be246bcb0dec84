package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	// Секунды отбрасываются
	ts, err = NewTimeStringFromString("23:00:00")
	require.NoError(t, err)
	assert.Equal(t, "23:00", ts.String())

	for _, input := range []string{"", "9", "24:00", "10:60", "xx:yy"} {
		_, err := NewTimeStringFromString(input)
		assert.ErrorIs(t, err, ErrInvalidTimeString, input)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("10:45").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 645, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	// Переход через полночь заворачивается
	assert.Equal(t, TimeString("00:30"), ts)

	ts, err = TimeString("10:00").AddMinutes(-90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:30"), ts)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 2, 15, 18, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:45"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	_, err = TimeString("garbage").Value()
	assert.Error(t, err)
}
