package slot

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

var columns = []string{"id", "professional_id", "service_id", "start_time", "end_time", "is_available", "created_at"}

func TestRepository_GetInRange(t *testing.T) {
	repo, mock := newMock(t)

	from := time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	start := time.Date(2026, 1, 27, 11, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(columns).
		AddRow(1, 7, nil, start, start.Add(15*time.Minute), true, start).
		AddRow(2, 7, 3, start.Add(15*time.Minute), start.Add(30*time.Minute), false, start)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, professional_id, service_id, start_time, end_time, is_available, created_at FROM slots " +
			"WHERE professional_id = $1 AND start_time >= $2 AND start_time <= $3 " +
			"AND (service_id = $4 OR service_id IS NULL) ORDER BY start_time ASC",
	)).
		WithArgs(int64(7), from, to, int64(3)).
		WillReturnRows(rows)

	slots, err := repo.GetInRange(context.Background(), domain.SlotFilter{
		ProfessionalID: 7,
		From:           from,
		To:             to,
		ServiceID:      ptr.Ptr(int64(3)),
	})

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Nil(t, slots[0].ServiceID)
	assert.Equal(t, int64(3), *slots[1].ServiceID)
	assert.False(t, slots[1].IsAvailable)
	assert.Equal(t, start, slots[0].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetInRange_AvailabilityFilter(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("AND is_available = $4 ORDER BY start_time ASC")).
		WithArgs(int64(7), sqlmock.AnyArg(), sqlmock.AnyArg(), false).
		WillReturnRows(sqlmock.NewRows(columns))

	slots, err := repo.GetInRange(context.Background(), domain.SlotFilter{
		ProfessionalID: 7,
		From:           time.Now(),
		To:             time.Now().Add(time.Hour),
		IsAvailable:    ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetInRange_QueryError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))

	_, err := repo.GetInRange(context.Background(), domain.SlotFilter{ProfessionalID: 1})

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByProfessionalAndStarts(t *testing.T) {
	repo, mock := newMock(t)

	s1 := time.Date(2026, 1, 27, 11, 0, 0, 0, time.UTC)
	s2 := s1.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE professional_id = $1 AND start_time IN ($2,$3)")).
		WithArgs(int64(7), s1, s2).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(10, 7, nil, s1, s1.Add(time.Hour), true, s1))

	slots, err := repo.GetByProfessionalAndStarts(context.Background(), 7, []time.Time{s1, s2})

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, int64(10), slots[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByProfessionalAndStarts_Empty(t *testing.T) {
	repo, mock := newMock(t)

	slots, err := repo.GetByProfessionalAndStarts(context.Background(), 7, nil)

	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateBatch(t *testing.T) {
	repo, mock := newMock(t)

	s1 := time.Date(2026, 1, 27, 11, 0, 0, 0, time.UTC)
	s2 := s1.Add(time.Hour)
	created := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO slots (professional_id,service_id,start_time,end_time,is_available) " +
			"VALUES ($1,$2,$3,$4,$5),($6,$7,$8,$9,$10) RETURNING id, start_time, created_at",
	)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_time", "created_at"}).
			AddRow(21, s1, created).
			AddRow(22, s2, created))

	slots := []*domain.BaseSlot{
		{ProfessionalID: 7, StartTime: s1, EndTime: s1.Add(time.Hour), IsAvailable: true},
		{ProfessionalID: 7, StartTime: s2, EndTime: s2.Add(time.Hour), IsAvailable: true},
	}

	result, err := repo.CreateBatch(context.Background(), slots)

	require.NoError(t, err)
	assert.Equal(t, int64(21), result[0].ID)
	assert.Equal(t, int64(22), result[1].ID)
	assert.Equal(t, created, result[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateBatch_Duplicate(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO slots").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	start := time.Date(2026, 1, 27, 11, 0, 0, 0, time.UTC)
	_, err := repo.CreateBatch(context.Background(), []*domain.BaseSlot{
		{ProfessionalID: 7, StartTime: start, EndTime: start.Add(time.Hour), IsAvailable: true},
	})

	assert.ErrorIs(t, err, ErrDuplicateSlot)
}

func TestRepository_CreateBatch_OtherError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO slots").WillReturnError(errors.New("disk full"))

	start := time.Date(2026, 1, 27, 11, 0, 0, 0, time.UTC)
	_, err := repo.CreateBatch(context.Background(), []*domain.BaseSlot{
		{ProfessionalID: 7, StartTime: start, EndTime: start.Add(time.Hour), IsAvailable: true},
	})

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrDuplicateSlot)
}
