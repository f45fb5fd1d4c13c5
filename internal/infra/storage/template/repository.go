package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotService/pkg/psqlbuilder"
)

const tableName = "therapist_schedule_templates"

// Repository репозиторий шаблонов расписания терапевтов (один шаблон на терапевта)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает шаблон или полностью заменяет существующий шаблон терапевта
func (r *Repository) Upsert(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"therapist_id",
			"duration_minutes",
			"gap_minutes",
			"addon_minutes",
			"include_addon",
			"start_time",
			"end_time",
			"weekdays",
		).
		Values(
			tpl.TherapistID,
			tpl.DurationMinutes,
			tpl.GapMinutes,
			tpl.AddonMinutes,
			tpl.IncludeAddon,
			tpl.StartTime,
			tpl.EndTime,
			pq.StringArray(tpl.Weekdays),
		).
		Suffix(`ON CONFLICT (therapist_id) DO UPDATE SET
			duration_minutes = EXCLUDED.duration_minutes,
			gap_minutes = EXCLUDED.gap_minutes,
			addon_minutes = EXCLUDED.addon_minutes,
			include_addon = EXCLUDED.include_addon,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			weekdays = EXCLUDED.weekdays,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tpl.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	tpl.CreatedAt = createdAt.Time
	tpl.UpdatedAt = updatedAt.Time

	return tpl, nil
}

// GetByTherapistID получает шаблон терапевта
func (r *Repository) GetByTherapistID(ctx context.Context, therapistID int64) (*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"therapist_id",
		"duration_minutes",
		"gap_minutes",
		"addon_minutes",
		"include_addon",
		"start_time",
		"end_time",
		"weekdays",
		"created_at",
		"updated_at",
	).
		From(tableName).
		Where(squirrel.Eq{"therapist_id": therapistID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTherapistID - build select query: %v", ErrBuildQuery, err)
	}

	var tpl domain.ScheduleTemplate
	var weekdays pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tpl.ID,
		&tpl.TherapistID,
		&tpl.DurationMinutes,
		&tpl.GapMinutes,
		&tpl.AddonMinutes,
		&tpl.IncludeAddon,
		&tpl.StartTime,
		&tpl.EndTime,
		&weekdays,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTherapistID - scan template: %v", ErrScanRow, err)
	}

	tpl.Weekdays = []string(weekdays)
	tpl.CreatedAt = createdAt.Time
	tpl.UpdatedAt = updatedAt.Time

	return &tpl, nil
}
