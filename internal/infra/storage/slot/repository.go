package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotService/pkg/psqlbuilder"
)

const tableName = "therapist_slots"

var selectColumns = []string{
	"id",
	"therapist_id",
	"slot_date",
	"start_time",
	"end_time",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий слотов календаря терапевтов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// InsertIfAbsent сохраняет слот, если слота с тем же (therapist_id, slot_date, start_time) еще нет.
// Возвращает false без ошибки, если слот уже существует; существующая запись не изменяется.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) InsertIfAbsent(ctx context.Context, slot *domain.Slot) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"therapist_id",
			"slot_date",
			"start_time",
			"end_time",
			"status",
		).
		Values(
			slot.TherapistID,
			slot.SlotDate,
			slot.StartTime,
			slot.EndTime,
			slot.Status,
		).
		Suffix("ON CONFLICT (therapist_id, slot_date, start_time) DO NOTHING RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: InsertIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	// DO NOTHING не возвращает строк
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: InsertIfAbsent - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return true, nil
}

// ListByTherapistAndDate возвращает слоты терапевта за день, отсортированные по времени начала
func (r *Repository) ListByTherapistAndDate(ctx context.Context, therapistID int64, date time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{
			"therapist_id": therapistID,
			"slot_date":    domain.DateOnly(date),
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTherapistAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTherapistAndDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// ListByTherapistAndRange возвращает слоты терапевта в диапазоне дат [from, to] включительно
func (r *Repository) ListByTherapistAndRange(ctx context.Context, therapistID int64, from, to time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"therapist_id": therapistID}).
		Where(squirrel.GtOrEq{"slot_date": domain.DateOnly(from)}).
		Where(squirrel.LtOrEq{"slot_date": domain.DateOnly(to)}).
		OrderBy("slot_date ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTherapistAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTherapistAndRange - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var slot domain.Slot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.TherapistID,
			&slot.SlotDate,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
