package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса на получение доступных слотов специалиста
type Request struct {
	CompanyID      int64     // ID компании
	ProfessionalID int64     // ID специалиста
	ServiceID      *int64    // ID услуги (опционально)
	From           time.Time // начало диапазона
	To             time.Time // конец диапазона
	FromDateOnly   bool      // From задан датой без времени
	ToDateOnly     bool      // To задан датой без времени
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ProfessionalID int64
	ServiceID      *int64
	// Generated true, если слоты сгенерированы из правил доступности и не сохранены
	Generated bool
	Slots     []Slot
}

// Slot модель доступного слота
type Slot struct {
	Ref         domain.SlotRef
	ServiceID   *int64
	StartTime   time.Time
	EndTime     time.Time
	IsAvailable bool
}
