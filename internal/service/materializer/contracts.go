package materializer

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByProfessionalAndStarts(ctx context.Context, professionalID int64, starts []time.Time) ([]*domain.BaseSlot, error)
	CreateBatch(ctx context.Context, slots []*domain.BaseSlot) ([]*domain.BaseSlot, error)
}

// Metrics счетчики результатов материализации
type Metrics interface {
	AddMaterialized(result string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
