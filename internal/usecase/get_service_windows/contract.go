package get_service_windows

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/materializer"
)

// ProfessionalRepository интерфейс репозитория специалистов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, companyID, serviceID int64) (*domain.Service, error)
}

// AvailabilityRepository интерфейс репозитория правил доступности
type AvailabilityRepository interface {
	GetByProfessional(ctx context.Context, professionalID, companyID int64) ([]*domain.AvailabilityRule, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetInRange(ctx context.Context, filter domain.SlotFilter) ([]*domain.BaseSlot, error)
}

// Materializer присваивает виртуальным слотам постоянные ID
type Materializer interface {
	Materialize(ctx context.Context, req materializer.Request) ([]domain.Window, materializer.Result)
}

// Metrics счетчик выданных окон
type Metrics interface {
	AddWindows(operation string, n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
