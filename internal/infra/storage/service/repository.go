package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий услуг компаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу компании. Услуга другой компании считается не найденной.
func (r *Repository) GetByID(ctx context.Context, companyID, serviceID int64) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select("id", "company_id", "name", "price", "duration_minutes").
		From("services").
		Where(squirrel.Eq{
			"id":         serviceID,
			"company_id": companyID,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s        domain.Service
		duration sql.NullInt64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CompanyID, &s.Name, &s.Price, &duration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}

	if duration.Valid {
		d := int(duration.Int64)
		s.DurationMinutes = &d
	}

	return &s, nil
}
