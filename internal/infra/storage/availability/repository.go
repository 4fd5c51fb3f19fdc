package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий недельных правил доступности специалистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessional получает все правила специалиста в рамках компании,
// отсортированные по дню недели и времени начала
func (r *Repository) GetByProfessional(ctx context.Context, professionalID, companyID int64) ([]*domain.AvailabilityRule, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"company_id",
		"day_of_week",
		"start_time",
		"end_time",
	).
		From("availabilities").
		Where(squirrel.Eq{
			"professional_id": professionalID,
			"company_id":      companyID,
		}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		var rule domain.AvailabilityRule
		err := rows.Scan(
			&rule.ID,
			&rule.ProfessionalID,
			&rule.CompanyID,
			&rule.DayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByProfessional - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
