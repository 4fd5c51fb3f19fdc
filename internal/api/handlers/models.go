package handlers

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ServiceModel услуга в ответах API
type ServiceModel struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// WindowModel окно записи в ответах API
type WindowModel struct {
	StartTime string           `json:"startTime"`
	EndTime   string           `json:"endTime"`
	Label     string           `json:"label"`
	SlotIDs   []domain.SlotRef `json:"slotIds"`
}

// WindowsResponse ответ с окнами записи на услугу
type WindowsResponse struct {
	Service  ServiceModel  `json:"service"`
	Timezone string        `json:"timezone"`
	Slots    []WindowModel `json:"slots"`
}

// FromDomainService конвертирует услугу
func FromDomainService(s *domain.Service) ServiceModel {
	model := ServiceModel{
		ID:    s.ID,
		Name:  s.Name,
		Price: s.Price,
	}
	if s.DurationMinutes != nil {
		model.DurationMinutes = *s.DurationMinutes
	}
	return model
}

// FromDomainWindows конвертирует окна, моменты времени в UTC RFC3339
func FromDomainWindows(windows []domain.Window) []WindowModel {
	out := make([]WindowModel, len(windows))
	for i, w := range windows {
		out[i] = WindowModel{
			StartTime: FormatInstant(w.StartTime),
			EndTime:   FormatInstant(w.EndTime),
			Label:     w.Label,
			SlotIDs:   w.SlotRefs,
		}
	}
	return out
}

// FormatInstant форматирует момент времени в каноническом UTC виде
func FormatInstant(t time.Time) string {
	return t.UTC().Format(domain.InstantFormat)
}
