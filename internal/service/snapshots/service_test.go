package snapshots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
	snapshotStorage "github.com/m04kA/SRF-AvailabilityService/internal/infra/storage/snapshot"
	"github.com/m04kA/SRF-AvailabilityService/internal/service/snapshots/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	snapshot *domain.AvailabilitySnapshot
	list     []*domain.AvailabilitySnapshot
	purged   int64

	getErr error

	lastFilter domain.SnapshotFilter
	lastBefore time.Time
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.AvailabilitySnapshot, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.snapshot, nil
}

func (r *fakeRepo) ListWithFilter(ctx context.Context, filter domain.SnapshotFilter) ([]*domain.AvailabilitySnapshot, error) {
	r.lastFilter = filter
	return r.list, nil
}

func (r *fakeRepo) PurgeBefore(ctx context.Context, before time.Time) (int64, error) {
	r.lastBefore = before
	return r.purged, nil
}

func sampleSnapshot() *domain.AvailabilitySnapshot {
	return &domain.AvailabilitySnapshot{
		ID:             7,
		FacilityKey:    "wall-street",
		FacilityID:     502,
		OrganizationID: 450,
		ResourceID:     1001,
		ResourceName:   "Field 1",
		Date:           time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		WindowOpen:     domain.TimeOfDay(540),  // 09:00
		WindowClose:    domain.TimeOfDay(1320), // 22:00
		MinDuration:    60,
		BookedCount:    2,
		Blocks: []domain.FreeBlock{
			{Start: domain.TimeOfDay(540), End: domain.TimeOfDay(600), DurationMinutes: 60},
			{Start: domain.TimeOfDay(720), End: domain.TimeOfDay(900), DurationMinutes: 180},
		},
		CreatedAt: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{snapshot: sampleSnapshot()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-02-15", resp.Date)
	assert.Equal(t, "09:00", resp.WindowOpen)
	assert.Equal(t, "22:00", resp.WindowClose)
	assert.Equal(t, 240, resp.TotalFreeMinutes)
	require.Len(t, resp.Blocks, 2)
	assert.Equal(t, "12:00", resp.Blocks[1].Start)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{getErr: snapshotStorage.ErrSnapshotNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 7)

	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList(t *testing.T) {
	repo := &fakeRepo{list: []*domain.AvailabilitySnapshot{sampleSnapshot()}}
	svc := NewService(repo, nopLogger{})

	resourceID := int64(1001)
	resp, err := svc.List(context.Background(), &models.ListSnapshotsRequest{
		FacilityKey: "wall-street",
		ResourceID:  &resourceID,
		Limit:       10,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Snapshots, 1)
	assert.Equal(t, "wall-street", repo.lastFilter.FacilityKey)
	require.NotNil(t, repo.lastFilter.ResourceID)
	assert.Equal(t, int64(1001), *repo.lastFilter.ResourceID)
	assert.Equal(t, uint64(10), repo.lastFilter.Limit)
}

func TestList_UnknownFacility(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListSnapshotsRequest{FacilityKey: "nowhere"})

	assert.ErrorIs(t, err, ErrUnknownFacility)
}

func TestPurgeBefore(t *testing.T) {
	repo := &fakeRepo{purged: 12}
	svc := NewService(repo, nopLogger{})

	before := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	resp, err := svc.PurgeBefore(context.Background(), before)

	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.Deleted)
	assert.Equal(t, before, repo.lastBefore)
}

func TestPurgeBefore_ZeroTime(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.PurgeBefore(context.Background(), time.Time{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
