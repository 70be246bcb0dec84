package bondsports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlot_DefaultTimes(t *testing.T) {
	// Отсутствующее время платформа трактует как полночь
	slot := Slot{SpaceID: 42}
	assert.Equal(t, "00:00", slot.Start())
	assert.Equal(t, "00:00", slot.End())

	slot = Slot{StartTime: "10:00:00", EndTime: "11:30:00"}
	assert.Equal(t, "10:00:00", slot.Start())
	assert.Equal(t, "11:30:00", slot.End())
}

func TestTokenCredentials(t *testing.T) {
	creds := TokenCredentials("session-token")
	assert.Equal(t, "session-token", creds.SessionToken)
	assert.Empty(t, creds.AccessToken)
}
