package availability

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByProfessional(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, professional_id, company_id, day_of_week, start_time, end_time FROM availabilities " +
			"WHERE company_id = $1 AND professional_id = $2 ORDER BY day_of_week ASC, start_time ASC",
	)).
		WithArgs(int64(1), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "professional_id", "company_id", "day_of_week", "start_time", "end_time"}).
			AddRow(1, 7, 1, 2, "08:00:00", "12:00:00").
			AddRow(2, 7, 1, 2, "14:00:00", "18:00:00"))

	rules, err := repo.GetByProfessional(context.Background(), 7, 1)

	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, 2, rules[0].DayOfWeek)
	assert.Equal(t, "08:00", rules[0].StartTime.String())
	assert.Equal(t, "18:00", rules[1].EndTime.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByProfessional_BadTime(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "professional_id", "company_id", "day_of_week", "start_time", "end_time"}).
			AddRow(1, 7, 1, 2, "8 am", "12:00:00"))

	_, err = NewRepository(db).GetByProfessional(context.Background(), 7, 1)

	assert.ErrorIs(t, err, ErrScanRow)
}

func TestRepository_GetByProfessional_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("timeout"))

	_, err = NewRepository(db).GetByProfessional(context.Background(), 7, 1)

	assert.ErrorIs(t, err, ErrExecQuery)
}
