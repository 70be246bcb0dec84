package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
	"github.com/m04kA/SRF-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SRF-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с историей расчётов доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория снапшотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет снапшот вместе со свободными блоками
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Вызывается usecase-ом внутри сериализуемой транзакции, чтобы заголовок
// и блоки записывались атомарно
func (r *Repository) Create(ctx context.Context, snap *domain.AvailabilitySnapshot) (*domain.AvailabilitySnapshot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_snapshots").
		Columns(
			"facility_key",
			"facility_id",
			"organization_id",
			"resource_id",
			"resource_name",
			"snapshot_date",
			"window_open_minutes",
			"window_close_minutes",
			"min_duration_minutes",
			"booked_count",
		).
		Values(
			snap.FacilityKey,
			snap.FacilityID,
			snap.OrganizationID,
			snap.ResourceID,
			snap.ResourceName,
			snap.Date,
			snap.WindowOpen.Minutes(),
			snap.WindowClose.Minutes(),
			snap.MinDuration,
			snap.BookedCount,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&snap.ID,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	snap.CreatedAt = createdAt.Time

	if len(snap.Blocks) == 0 {
		return snap, nil
	}

	insertBuilder := psqlbuilder.Insert("snapshot_blocks").
		Columns("snapshot_id", "start_minutes", "end_minutes", "duration_minutes")
	for _, b := range snap.Blocks {
		insertBuilder = insertBuilder.Values(snap.ID, b.Start.Minutes(), b.End.Minutes(), b.DurationMinutes)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build blocks insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute blocks insert: %v", ErrExecQuery, err)
	}

	return snap, nil
}

// GetByID получает снапшот по ID вместе со свободными блоками
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilitySnapshot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := snapshotColumns().
		From("availability_snapshots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	snap, err := scanSnapshot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan snapshot: %v", ErrScanRow, err)
	}

	if err := r.loadBlocks(ctx, executor, snap); err != nil {
		return nil, err
	}

	return snap, nil
}

// ListWithFilter получает снапшоты с фильтрацией по ресурсу и дате
// Блоки подгружаются для каждого снапшота
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.SnapshotFilter) ([]*domain.AvailabilitySnapshot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := snapshotColumns().
		From("availability_snapshots").
		Where(squirrel.Eq{"facility_key": filter.FacilityKey})

	// Фильтрация по ресурсу (если указан)
	if filter.ResourceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"resource_id": *filter.ResourceID})
	}

	// Фильтрация по дате расчёта (если указана)
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"snapshot_date": *filter.Date})
	}

	selectBuilder = selectBuilder.OrderBy("created_at DESC, id DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	snapshots := make([]*domain.AvailabilitySnapshot, 0)
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan snapshot: %v", ErrScanRow, err)
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrExecQuery, err)
	}

	for _, snap := range snapshots {
		if err := r.loadBlocks(ctx, executor, snap); err != nil {
			return nil, err
		}
	}

	return snapshots, nil
}

// PurgeBefore удаляет снапшоты, созданные раньше указанной даты
// Возвращает количество удалённых снапшотов
// Блоки удаляются каскадно (FK с ON DELETE CASCADE)
func (r *Repository) PurgeBefore(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_snapshots").
		Where(squirrel.Lt{"created_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeBefore - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeBefore - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeBefore - rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func snapshotColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"facility_key",
		"facility_id",
		"organization_id",
		"resource_id",
		"resource_name",
		"snapshot_date",
		"window_open_minutes",
		"window_close_minutes",
		"min_duration_minutes",
		"booked_count",
		"created_at",
	)
}

func scanSnapshot(row rowScanner) (*domain.AvailabilitySnapshot, error) {
	var snap domain.AvailabilitySnapshot
	var openMinutes, closeMinutes int
	var createdAt sql.NullTime

	err := row.Scan(
		&snap.ID,
		&snap.FacilityKey,
		&snap.FacilityID,
		&snap.OrganizationID,
		&snap.ResourceID,
		&snap.ResourceName,
		&snap.Date,
		&openMinutes,
		&closeMinutes,
		&snap.MinDuration,
		&snap.BookedCount,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	snap.WindowOpen = domain.TimeOfDay(openMinutes)
	snap.WindowClose = domain.TimeOfDay(closeMinutes)
	snap.CreatedAt = createdAt.Time

	return &snap, nil
}

func (r *Repository) loadBlocks(ctx context.Context, executor DBExecutor, snap *domain.AvailabilitySnapshot) error {
	query, args, err := psqlbuilder.Select(
		"start_minutes",
		"end_minutes",
		"duration_minutes",
	).
		From("snapshot_blocks").
		Where(squirrel.Eq{"snapshot_id": snap.ID}).
		OrderBy("start_minutes ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadBlocks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	snap.Blocks = make([]domain.FreeBlock, 0)
	for rows.Next() {
		var start, end, duration int
		if err := rows.Scan(&start, &end, &duration); err != nil {
			return fmt.Errorf("%w: loadBlocks - scan block: %v", ErrScanRow, err)
		}
		snap.Blocks = append(snap.Blocks, domain.FreeBlock{
			Start:           domain.TimeOfDay(start),
			End:             domain.TimeOfDay(end),
			DurationMinutes: duration,
		})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadBlocks - rows error: %v", ErrExecQuery, err)
	}

	return nil
}
