package slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func testSlot() *domain.Slot {
	return &domain.Slot{
		TherapistID: 7,
		SlotDate:    time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC),
		StartTime:   "08:00",
		EndTime:     "09:00",
		Status:      domain.SlotStatusAvailable,
	}
}

func TestRepository_InsertIfAbsent_Created(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()
	slot := testSlot()

	mock.ExpectQuery(`INSERT INTO therapist_slots .* ON CONFLICT \(therapist_id, slot_date, start_time\) DO NOTHING`).
		WithArgs(int64(7), slot.SlotDate, "08:00", "09:00", "available").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

	created, err := repo.InsertIfAbsent(context.Background(), slot)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(11), slot.ID)
	assert.Equal(t, now, slot.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertIfAbsent_AlreadyExists(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO therapist_slots`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}))

	slot := testSlot()
	created, err := repo.InsertIfAbsent(context.Background(), slot)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Zero(t, slot.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertIfAbsent_Error(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO therapist_slots`).WillReturnError(errors.New("connection reset"))

	_, err := repo.InsertIfAbsent(context.Background(), testSlot())

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_ListByTherapistAndDate(t *testing.T) {
	repo, mock := newRepo(t)
	day := time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := sqlmock.NewRows(selectColumns).
		AddRow(int64(1), int64(7), day, "08:00:00", "09:00:00", "available", now, now).
		AddRow(int64(2), int64(7), day, "08:30:00", "09:30:00", "booked", now, now)

	mock.ExpectQuery(`SELECT .* FROM therapist_slots WHERE .* ORDER BY start_time ASC`).
		WithArgs(day, int64(7)).
		WillReturnRows(rows)

	slots, err := repo.ListByTherapistAndDate(context.Background(), 7, day.Add(13*time.Hour))

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("08:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), slots[1].EndTime)
	assert.Equal(t, domain.SlotStatusBooked, slots[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByTherapistAndRange(t *testing.T) {
	repo, mock := newRepo(t)
	from := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 6)

	mock.ExpectQuery(`SELECT .* FROM therapist_slots WHERE therapist_id = \$1 AND slot_date >= \$2 AND slot_date <= \$3 ORDER BY slot_date ASC, start_time ASC`).
		WithArgs(int64(7), from, to).
		WillReturnRows(sqlmock.NewRows(selectColumns))

	slots, err := repo.ListByTherapistAndRange(context.Background(), 7, from, to)

	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByTherapistAndDate_QueryError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("boom"))

	_, err := repo.ListByTherapistAndDate(context.Background(), 7, time.Now())

	assert.ErrorIs(t, err, ErrExecQuery)
}
