package get_available_slots

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCompanyID      = "некорректный ID компании"
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgInvalidServiceID      = "некорректный ID услуги"
	msgInvalidRange          = "параметры from и to обязательны в формате ISO-8601"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/professionals/{professionalId}/available-slots
// Query params: from, to (required, ISO-8601), serviceId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathID(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	professionalID, err := handlers.PathID(r, "professionalId")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	query := r.URL.Query()

	serviceID, err := handlers.QueryID(query, "serviceId")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	rng, err := handlers.QueryRange(query)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		CompanyID:      companyID,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		From:           rng.From,
		To:             rng.To,
		FromDateOnly:   rng.FromDateOnly,
		ToDateOnly:     rng.ToDateOnly,
	})
	if err != nil {
		status := handlers.RespondUseCaseError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /available-slots - Failed to get slots: company_id=%d, professional_id=%d, error=%v",
				companyID, professionalID, err)
		} else {
			h.logger.Warn("GET /available-slots - Rejected: company_id=%d, professional_id=%d, status=%d, error=%v",
				companyID, professionalID, status, err)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: company_id=%d, professional_id=%d, slots_count=%d, generated=%t",
		companyID, professionalID, len(result.Slots), result.Generated)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
