package get_composed_windows

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/usecase/common"
)

// Request модель запроса окон, собранных из сохраненных базовых слотов
type Request struct {
	CompanyID      int64
	ProfessionalID int64
	ServiceID      int64
	From           time.Time
	To             time.Time
	FromDateOnly   bool // From задан датой без времени: начало дня в часовом поясе запроса
	ToDateOnly     bool // To задан датой без времени: конец дня в часовом поясе запроса
	Options        common.Options
}

// Response модель ответа
type Response struct {
	Service  *domain.Service
	Timezone string
	Windows  []domain.Window
}
