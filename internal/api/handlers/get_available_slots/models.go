package get_available_slots

import (
	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProfessionalID int64           `json:"professionalId"`
	ServiceID      *int64          `json:"serviceId,omitempty"`
	Generated      bool            `json:"generated"`
	Slots          []AvailableSlot `json:"slots"`
}

// AvailableSlot модель слота
type AvailableSlot struct {
	ID          domain.SlotRef `json:"id"`
	ServiceID   *int64         `json:"serviceId,omitempty"`
	StartTime   string         `json:"startTime"`
	EndTime     string         `json:"endTime"`
	IsAvailable bool           `json:"isAvailable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:          slot.Ref,
			ServiceID:   slot.ServiceID,
			StartTime:   handlers.FormatInstant(slot.StartTime),
			EndTime:     handlers.FormatInstant(slot.EndTime),
			IsAvailable: slot.IsAvailable,
		}
	}

	return &AvailableSlotsResponse{
		ProfessionalID: resp.ProfessionalID,
		ServiceID:      resp.ServiceID,
		Generated:      resp.Generated,
		Slots:          slots,
	}
}
