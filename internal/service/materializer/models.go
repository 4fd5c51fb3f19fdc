package materializer

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request входные данные для материализации окон
type Request struct {
	ProfessionalID int64
	ServiceID      *int64
	// Existing доступные сохраненные слоты специалиста в запрошенном диапазоне
	Existing []*domain.BaseSlot
	Windows  []domain.Window
}

// Result сколько слотов получили ID и каким способом
type Result struct {
	Matched            int // найдены среди Existing
	Existing           int // найдены повторной проверкой перед вставкой
	Inserted           int // созданы
	DuplicateRecovered int // созданы параллельным запросом, ID взят у победителя
	Degraded           int // остались виртуальными из-за ошибки хранилища
	Booked             int // оказались заняты при повторной проверке
	Dropped            int // окна, убранные из-за занятых слотов
}
