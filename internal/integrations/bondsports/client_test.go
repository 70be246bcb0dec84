package bondsports

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, 5*time.Second, nopLogger{}, nil)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "user@example.com", payload["email"])
		assert.Equal(t, "secret", payload["password"])
		assert.Equal(t, "consumer", payload["platform"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"credentials": map[string]string{
				"accessToken":  "access-1",
				"userIdToken":  "id-1",
				"username":     "user@example.com",
				"refreshToken": "refresh-1",
			},
		})
	}))
	defer server.Close()

	creds, err := newTestClient(server.URL).Login(context.Background(), "user@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "access-1", creds.AccessToken)
	assert.Equal(t, "id-1", creds.IDToken)
	assert.Equal(t, "user@example.com", creds.Username)
	assert.Equal(t, "refresh-1", creds.RefreshToken)
}

func TestClient_Login_WrongPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Login(context.Background(), "user@example.com", "wrong")

	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestClient_Login_NoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"credentials": map[string]string{}})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Login(context.Background(), "user@example.com", "secret")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GetFacility(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/venues/502", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"id":       502,
				"name":     "Socceroof Wall Street",
				"timezone": "America/New_York",
			},
		})
	}))
	defer server.Close()

	facility, err := newTestClient(server.URL).GetFacility(context.Background(), 502)

	require.NoError(t, err)
	assert.Equal(t, int64(502), facility.ID)
	assert.Equal(t, "America/New_York", facility.Timezone)
}

func TestClient_GetFacility_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetFacility(context.Background(), 999)

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestClient_GetResource_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetResource(context.Background(), 999)

	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestClient_GetFacilityResources_QueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/resources/organization/450/facility/502/resources", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "space", query.Get("resourceTypes"))
		assert.Equal(t, "true", query.Get("includeActivityTimes"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"id": 1001, "name": "Field 1", "activityTimes": []map[string]interface{}{
					{"dayOfWeek": 2, "open": "09:00:00", "close": "23:00:00"},
				}},
			},
		})
	}))
	defer server.Close()

	resources, err := newTestClient(server.URL).GetFacilityResources(context.Background(), 450, 502)

	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "Field 1", resources[0].Name)
	require.Len(t, resources[0].ActivityTimes, 1)
	assert.Equal(t, 2, resources[0].ActivityTimes[0].DayOfWeek)
}

func TestClient_GetVenueSlots_AuthHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/venues/502/slots", r.URL.Path)
		assert.Equal(t, "access-1", r.Header.Get("x-bonduseraccesstoken"))
		assert.Equal(t, "id-1", r.Header.Get("x-bonduseridtoken"))
		assert.Equal(t, "user@example.com", r.Header.Get("x-bonduserusername"))
		assert.Equal(t, "2026-02-15", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2026-02-15", r.URL.Query().Get("endDate"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"id": 1, "spaceId": 1001, "startTime": "10:00:00", "endTime": "11:00:00"},
			},
		})
	}))
	defer server.Close()

	creds := &Credentials{AccessToken: "access-1", IDToken: "id-1", Username: "user@example.com"}
	slots, err := newTestClient(server.URL).GetVenueSlots(context.Background(), creds, 502, "2026-02-15", "2026-02-15")

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, int64(1001), slots[0].SpaceID)
}

func TestClient_GetVenueSlots_SessionTokenBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// SSO-аккаунт: сырой токен сессии уходит как Bearer
		assert.Equal(t, "Bearer session-1", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("x-bonduseraccesstoken"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": []map[string]interface{}{}})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetVenueSlots(context.Background(), TokenCredentials("session-1"), 502, "", "")

	require.NoError(t, err)
}

func TestClient_GetVenueSlots_NilCredentials(t *testing.T) {
	_, err := newTestClient("http://unused").GetVenueSlots(context.Background(), nil, 502, "", "")

	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestClient_GetVenueSlots_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetVenueSlots(context.Background(), TokenCredentials("stale"), 502, "", "")

	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestClient_CheckAvailability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v4/online-rentals/organization/450/facility/502/check-availability", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, []interface{}{"2026-02-15"}, payload["days"])
		assert.Equal(t, float64(4), payload["sport"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"2026-02-15": []map[string]interface{}{
					{"parentId": 1001, "open": "10:00:00", "close": "10:30:00", "isClosed": false},
					{"parentId": 1001, "open": "10:30:00", "close": "11:00:00", "isClosed": true},
				},
			},
		})
	}))
	defer server.Close()

	grid, err := newTestClient(server.URL).CheckAvailability(
		context.Background(), TokenCredentials("session-1"), 450, 502, []string{"2026-02-15"}, 4)

	require.NoError(t, err)
	require.Len(t, grid["2026-02-15"], 2)
	assert.False(t, grid["2026-02-15"][0].IsClosed)
	assert.True(t, grid["2026-02-15"][1].IsClosed)
}

func TestLoginCredentialsSource_CachesAndInvalidates(t *testing.T) {
	logins := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logins++
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"credentials": map[string]string{"accessToken": "access-1"},
		})
	}))
	defer server.Close()

	source := NewLoginCredentialsSource(newTestClient(server.URL), "user@example.com", "secret")

	_, err := source.Credentials(context.Background())
	require.NoError(t, err)
	_, err = source.Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, logins)

	source.Invalidate()
	_, err = source.Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, logins)
}
