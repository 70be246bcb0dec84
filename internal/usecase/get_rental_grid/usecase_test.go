package get_rental_grid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SRF-AvailabilityService/internal/integrations/bondsports"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeClient struct {
	resources []bondsports.Resource
	grid      map[string][]bondsports.GridSlot
	gridErr   error
	gridCalls int
}

func (c *fakeClient) GetFacilityResources(ctx context.Context, orgID, facilityID int64) ([]bondsports.Resource, error) {
	return c.resources, nil
}

func (c *fakeClient) CheckAvailability(ctx context.Context, creds *bondsports.Credentials, orgID, facilityID int64, dates []string, sport int) (map[string][]bondsports.GridSlot, error) {
	c.gridCalls++
	return c.grid, c.gridErr
}

type fakeCredsSource struct {
	creds       *bondsports.Credentials
	invalidated int
}

func (s *fakeCredsSource) Credentials(ctx context.Context) (*bondsports.Credentials, error) {
	return s.creds, nil
}

func (s *fakeCredsSource) Invalidate() {
	s.invalidated++
}

var testDate = time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)

func TestExecute_GroupsOpenCells(t *testing.T) {
	client := &fakeClient{
		resources: []bondsports.Resource{{ID: 1001, Name: "Field 1"}},
		grid: map[string][]bondsports.GridSlot{
			"2026-02-15": {
				{ParentID: 1001, Open: "10:00:00", Close: "10:30:00", IsClosed: false},
				{ParentID: 1001, Open: "10:30:00", Close: "11:00:00", IsClosed: false},
				{ParentID: 1001, Open: "11:00:00", Close: "11:30:00", IsClosed: true},
				{ParentID: 1001, Open: "14:00:00", Close: "14:30:00", IsClosed: false},
			},
		},
	}
	uc := NewUseCase(client, &fakeCredsSource{creds: bondsports.TokenCredentials("token")}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityKey: "wall-street",
		Dates:       []time.Time{testDate},
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	require.Len(t, resp.Days[0].Resources, 1)

	res := resp.Days[0].Resources[0]
	assert.Equal(t, int64(1001), res.ResourceID)
	assert.Equal(t, "Field 1", res.ResourceName)
	require.Len(t, res.Blocks, 2)
	assert.Equal(t, Block{Start: "10:00", End: "11:00", DurationMinutes: 60}, res.Blocks[0])
	assert.Equal(t, Block{Start: "14:00", End: "14:30", DurationMinutes: 30}, res.Blocks[1])
	assert.Equal(t, 90, res.TotalOpenMinutes)
}

func TestExecute_SplitsResources(t *testing.T) {
	client := &fakeClient{
		grid: map[string][]bondsports.GridSlot{
			"2026-02-15": {
				{ParentID: 1002, Open: "10:00:00", Close: "10:30:00"},
				{ParentID: 1001, Open: "10:00:00", Close: "10:30:00"},
			},
		},
	}
	uc := NewUseCase(client, &fakeCredsSource{creds: bondsports.TokenCredentials("token")}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityKey: "wall-street",
		Dates:       []time.Time{testDate},
	})

	require.NoError(t, err)
	resources := resp.Days[0].Resources
	require.Len(t, resources, 2)
	// Сортировка по ID поля
	assert.Equal(t, int64(1001), resources[0].ResourceID)
	assert.Equal(t, int64(1002), resources[1].ResourceID)
}

func TestExecute_RetriesAfterAuthFailure(t *testing.T) {
	client := &fakeClient{gridErr: bondsports.ErrAuthFailed}
	source := &fakeCredsSource{creds: bondsports.TokenCredentials("stale")}
	uc := NewUseCase(client, source, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		FacilityKey: "wall-street",
		Dates:       []time.Time{testDate},
	})

	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, 1, source.invalidated)
	assert.Equal(t, 2, client.gridCalls)
}

func TestExecute_UnknownFacility(t *testing.T) {
	uc := NewUseCase(&fakeClient{}, &fakeCredsSource{creds: bondsports.TokenCredentials("token")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		FacilityKey: "nowhere",
		Dates:       []time.Time{testDate},
	})

	assert.ErrorIs(t, err, ErrUnknownFacility)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeClient{}, &fakeCredsSource{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FacilityKey: "wall-street"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	tooMany := make([]time.Time, maxDatesPerRequest+1)
	for i := range tooMany {
		tooMany[i] = testDate.AddDate(0, 0, i)
	}
	_, err = uc.Execute(context.Background(), &Request{FacilityKey: "wall-street", Dates: tooMany})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
