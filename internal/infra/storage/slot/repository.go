package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникального ограничения
const pgUniqueViolation = "23505"

var slotColumns = []string{
	"id",
	"professional_id",
	"service_id",
	"start_time",
	"end_time",
	"is_available",
	"created_at",
}

// Repository репозиторий для работы со слотами специалистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetInRange получает слоты специалиста, начинающиеся в диапазоне [From, To]
// Поддерживает фильтрацию по:
// - доступности (IsAvailable) - опционально
// - услуге (ServiceID) - слоты этой услуги ИЛИ слоты без привязки к услуге
//
// Результат отсортирован по времени начала (ASC)
func (r *Repository) GetInRange(ctx context.Context, filter domain.SlotFilter) ([]*domain.BaseSlot, error) {
	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"professional_id": filter.ProfessionalID}).
		Where(squirrel.GtOrEq{"start_time": filter.From.UTC()}).
		Where(squirrel.LtOrEq{"start_time": filter.To.UTC()})

	// Фильтрация по доступности
	if filter.IsAvailable != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": *filter.IsAvailable})
	}

	// Слоты конкретной услуги или общие слоты специалиста
	if filter.ServiceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"service_id": *filter.ServiceID},
			squirrel.Eq{"service_id": nil},
		})
	}

	query, args, err := selectBuilder.OrderBy("start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetByProfessionalAndStarts получает слоты специалиста с указанными моментами начала
// (независимо от доступности и услуги). Используется как повторная проверка существования
// перед вставкой новых слотов.
func (r *Repository) GetByProfessionalAndStarts(ctx context.Context, professionalID int64, starts []time.Time) ([]*domain.BaseSlot, error) {
	if len(starts) == 0 {
		return []*domain.BaseSlot{}, nil
	}

	utcStarts := make([]time.Time, len(starts))
	for i, s := range starts {
		utcStarts[i] = s.UTC()
	}

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"start_time": utcStarts}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndStarts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndStarts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// CreateBatch создает слоты одним INSERT и проставляет им ID и created_at.
// Если хотя бы один слот нарушает уникальность (professional_id, start_time),
// ни один слот не создается и возвращается ErrDuplicateSlot.
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.BaseSlot) ([]*domain.BaseSlot, error) {
	if len(slots) == 0 {
		return slots, nil
	}

	insertBuilder := psqlbuilder.Insert("slots").
		Columns(
			"professional_id",
			"service_id",
			"start_time",
			"end_time",
			"is_available",
		)

	byStart := make(map[time.Time]*domain.BaseSlot, len(slots))
	for _, s := range slots {
		start := s.StartTime.UTC()
		insertBuilder = insertBuilder.Values(
			s.ProfessionalID,
			s.ServiceID,
			start,
			s.EndTime.UTC(),
			s.IsAvailable,
		)
		byStart[start] = s
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, start_time, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: CreateBatch: %v", ErrDuplicateSlot, err)
		}
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        int64
			start     time.Time
			createdAt sql.NullTime
		)
		if err := rows.Scan(&id, &start, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan returning: %v", ErrScanRow, err)
		}
		if s, ok := byStart[start.UTC()]; ok {
			s.ID = id
			s.CreatedAt = createdAt.Time
		}
	}

	// Ошибка уникальности может прийти и во время чтения RETURNING
	if err := rows.Err(); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: CreateBatch: %v", ErrDuplicateSlot, err)
		}
		return nil, fmt.Errorf("%w: CreateBatch - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.BaseSlot, error) {
	slots := make([]*domain.BaseSlot, 0)

	for rows.Next() {
		var (
			s         domain.BaseSlot
			serviceID sql.NullInt64
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&s.ID,
			&s.ProfessionalID,
			&serviceID,
			&s.StartTime,
			&s.EndTime,
			&s.IsAvailable,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		if serviceID.Valid {
			id := serviceID.Int64
			s.ServiceID = &id
		}
		s.StartTime = s.StartTime.UTC()
		s.EndTime = s.EndTime.UTC()
		s.CreatedAt = createdAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
