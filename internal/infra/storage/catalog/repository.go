package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avpetrov/PT-BookingService/internal/domain"
	"github.com/avpetrov/PT-BookingService/pkg/psqlbuilder"
	"github.com/avpetrov/PT-BookingService/pkg/txmanager"
)

// Repository репозиторий каталога: тренер, услуги и рабочие часы.
// Каталог read-only, наполняется миграциями.
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetTrainer получает профиль тренера. В системе ровно один тренер.
func (r *Repository) GetTrainer(ctx context.Context) (*domain.Trainer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"timezone",
		"cancel_cutoff_hours",
		"created_at",
		"updated_at",
	).
		From("trainers").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTrainer - build select query: %v", ErrBuildQuery, err)
	}

	var trainer domain.Trainer
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&trainer.ID,
		&trainer.Name,
		&trainer.Timezone,
		&trainer.CancelCutoffHours,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTrainer - scan trainer: %v", ErrScanRow, err)
	}

	trainer.CreatedAt = createdAt.Time
	trainer.UpdatedAt = updatedAt.Time

	return &trainer, nil
}

// ListSessionTypes получает все услуги тренера в порядке их идентификаторов
func (r *Repository) ListSessionTypes(ctx context.Context) ([]*domain.SessionType, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"price",
		"currency",
		"created_at",
		"updated_at",
	).
		From("session_types").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSessionTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSessionTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sessionTypes := make([]*domain.SessionType, 0)

	for rows.Next() {
		var st domain.SessionType
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&st.ID,
			&st.Name,
			&st.DurationMinutes,
			&st.Price,
			&st.Currency,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListSessionTypes - scan row: %v", ErrScanRow, err)
		}

		st.CreatedAt = createdAt.Time
		st.UpdatedAt = updatedAt.Time

		sessionTypes = append(sessionTypes, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSessionTypes - rows error: %v", ErrScanRow, err)
	}

	return sessionTypes, nil
}

// GetSessionType получает услугу по ID
func (r *Repository) GetSessionType(ctx context.Context, id int64) (*domain.SessionType, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"price",
		"currency",
		"created_at",
		"updated_at",
	).
		From("session_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSessionType - build select query: %v", ErrBuildQuery, err)
	}

	var st domain.SessionType
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&st.ID,
		&st.Name,
		&st.DurationMinutes,
		&st.Price,
		&st.Currency,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSessionTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSessionType - scan session type: %v", ErrScanRow, err)
	}

	st.CreatedAt = createdAt.Time
	st.UpdatedAt = updatedAt.Time

	return &st, nil
}

// ListWorkingHours получает недельное расписание тренера.
// На каждый рабочий день недели не больше одной строки (уникальный индекс в схеме).
func (r *Repository) ListWorkingHours(ctx context.Context) ([]*domain.WorkingHours, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"day_of_week",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("working_hours").
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	workingHours := make([]*domain.WorkingHours, 0)

	for rows.Next() {
		var wh domain.WorkingHours
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&wh.ID,
			&wh.DayOfWeek,
			&wh.StartTime,
			&wh.EndTime,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListWorkingHours - scan row: %v", ErrScanRow, err)
		}

		wh.CreatedAt = createdAt.Time
		wh.UpdatedAt = updatedAt.Time

		workingHours = append(workingHours, &wh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - rows error: %v", ErrScanRow, err)
	}

	return workingHours, nil
}

// GetWorkingHoursForDay получает строку расписания на день недели (0=Sunday..6=Saturday).
// ErrWorkingHoursNotFound означает нерабочий день.
func (r *Repository) GetWorkingHoursForDay(ctx context.Context, dayOfWeek int) (*domain.WorkingHours, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"day_of_week",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("working_hours").
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHoursForDay - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.WorkingHours
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&wh.DayOfWeek,
		&wh.StartTime,
		&wh.EndTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHoursForDay - scan working hours: %v", ErrScanRow, err)
	}

	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return &wh, nil
}
