package service

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Repository источник данных об услугах (PostgreSQL)
type Repository interface {
	GetByID(ctx context.Context, companyID, serviceID int64) (*domain.Service, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
}
