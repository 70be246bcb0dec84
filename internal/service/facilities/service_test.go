package facilities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SRF-AvailabilityService/internal/integrations/bondsports"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeClient struct {
	facility    *bondsports.Facility
	facilityErr error

	resources    []bondsports.Resource
	resourcesErr error

	resource    *bondsports.Resource
	resourceErr error

	packages    []bondsports.Package
	packagesErr error
}

func (c *fakeClient) GetFacility(ctx context.Context, facilityID int64) (*bondsports.Facility, error) {
	return c.facility, c.facilityErr
}

func (c *fakeClient) GetFacilityResources(ctx context.Context, orgID, facilityID int64) ([]bondsports.Resource, error) {
	return c.resources, c.resourcesErr
}

func (c *fakeClient) GetResource(ctx context.Context, resourceID int64) (*bondsports.Resource, error) {
	return c.resource, c.resourceErr
}

func (c *fakeClient) GetResourcePackages(ctx context.Context, resourceID int64) ([]bondsports.Package, error) {
	return c.packages, c.packagesErr
}

func TestGetFacilityInfo(t *testing.T) {
	client := &fakeClient{
		facility: &bondsports.Facility{ID: 502, Name: "Socceroof Wall Street", Timezone: "America/New_York"},
		resources: []bondsports.Resource{
			{ID: 1001, Name: "Field 1", ResourceType: "space"},
			{ID: 1002, Name: "Field 2", ResourceType: "space"},
		},
	}
	svc := NewService(client, nopLogger{})

	info, err := svc.GetFacilityInfo(context.Background(), "wall-street")

	require.NoError(t, err)
	assert.Equal(t, "wall-street", info.Key)
	assert.Equal(t, int64(502), info.FacilityID)
	assert.Equal(t, int64(450), info.OrganizationID)
	assert.Equal(t, "America/New_York", info.Timezone)
	assert.NotEmpty(t, info.BookingURL)
	assert.Len(t, info.Resources, 2)
}

func TestGetFacilityInfo_UnknownKey(t *testing.T) {
	svc := NewService(&fakeClient{}, nopLogger{})

	_, err := svc.GetFacilityInfo(context.Background(), "nowhere")

	assert.ErrorIs(t, err, ErrUnknownFacility)
}

func TestGetFacilityInfo_NotFoundOnPlatform(t *testing.T) {
	client := &fakeClient{facilityErr: bondsports.ErrFacilityNotFound}
	svc := NewService(client, nopLogger{})

	_, err := svc.GetFacilityInfo(context.Background(), "wall-street")

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestListResources_Filter(t *testing.T) {
	client := &fakeClient{
		resources: []bondsports.Resource{
			{ID: 1001, Name: "Field 1"},
			{ID: 1002, Name: "Field 2"},
			{ID: 1003, Name: "Rooftop"},
		},
	}
	svc := NewService(client, nopLogger{})

	// Частичное совпадение без учета регистра
	resources, err := svc.ListResources(context.Background(), "wall-street", "FIELD")

	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, "Field 1", resources[0].Name)

	all, err := svc.ListResources(context.Background(), "wall-street", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetOperatingHours(t *testing.T) {
	client := &fakeClient{
		resource: &bondsports.Resource{
			ID:   1001,
			Name: "Field 1",
			ActivityTimes: []bondsports.ActivityTime{
				{DayOfWeek: 8, Open: "10:00:00", Close: "20:00:00"}, // Sunday
				{DayOfWeek: 2, Open: "09:00:00", Close: "23:00:00"}, // Monday
			},
		},
	}
	svc := NewService(client, nopLogger{})

	hours, err := svc.GetOperatingHours(context.Background(), "wall-street", 1001)

	require.NoError(t, err)
	assert.Equal(t, int64(1001), hours.ResourceID)
	require.Len(t, hours.Hours, 2)
	// Понедельник идет первым
	assert.Equal(t, "Monday", hours.Hours[0].Day)
	assert.Equal(t, "09:00", hours.Hours[0].Open.String())
	assert.Equal(t, "Sunday", hours.Hours[1].Day)
}

func TestGetOperatingHours_MidnightClose(t *testing.T) {
	client := &fakeClient{
		resource: &bondsports.Resource{
			ID:   1001,
			Name: "Field 1",
			ActivityTimes: []bondsports.ActivityTime{
				{DayOfWeek: 2, Open: "09:00:00", Close: "24:00:00"},
			},
		},
	}
	svc := NewService(client, nopLogger{})

	hours, err := svc.GetOperatingHours(context.Background(), "wall-street", 1001)

	require.NoError(t, err)
	// Закрытие "24:00" не выкидывает день, а отдается как "00:00"
	require.Len(t, hours.Hours, 1)
	assert.Equal(t, "Monday", hours.Hours[0].Day)
	assert.Equal(t, "00:00", hours.Hours[0].Close.String())
}

func TestGetOperatingHours_ResourceNotFound(t *testing.T) {
	client := &fakeClient{resourceErr: bondsports.ErrResourceNotFound}
	svc := NewService(client, nopLogger{})

	_, err := svc.GetOperatingHours(context.Background(), "wall-street", 999)

	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestGetResourcePackages(t *testing.T) {
	client := &fakeClient{
		packages: []bondsports.Package{
			{Name: "1 hour rental", Price: 220, DurationMinutes: 60},
		},
	}
	svc := NewService(client, nopLogger{})

	packages, err := svc.GetResourcePackages(context.Background(), "wall-street", 1001)

	require.NoError(t, err)
	require.Len(t, packages.Packages, 1)
	assert.Equal(t, 220.0, packages.Packages[0].Price)
}
