package get_composed_windows

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getComposedWindows "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_composed_windows"
)

const (
	msgInvalidCompanyID      = "некорректный ID компании"
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgMissingServiceID      = "ID услуги обязателен"
	msgInvalidServiceID      = "некорректный ID услуги"
	msgInvalidRange          = "параметры from и to обязательны в формате ISO-8601"
	msgInvalidOptions        = "slotStepMinutes и minLeadMinutes должны быть целыми числами"
)

type Handler struct {
	useCase GetComposedWindowsUseCase
	logger  Logger
}

func NewHandler(useCase GetComposedWindowsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/professionals/{professionalId}/composed-windows
// Query params: serviceId, from, to (required); slotStepMinutes, minLeadMinutes, closingTime, timezone (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathID(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /composed-windows - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	professionalID, err := handlers.PathID(r, "professionalId")
	if err != nil {
		h.logger.Warn("GET /composed-windows - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	query := r.URL.Query()

	serviceID, err := handlers.QueryID(query, "serviceId")
	if err != nil {
		h.logger.Warn("GET /composed-windows - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}
	if serviceID == nil {
		h.logger.Warn("GET /composed-windows - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	rng, err := handlers.QueryRange(query)
	if err != nil {
		h.logger.Warn("GET /composed-windows - Invalid range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	opts, err := handlers.QueryOptions(query)
	if err != nil {
		h.logger.Warn("GET /composed-windows - Invalid options: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOptions)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getComposedWindows.Request{
		CompanyID:      companyID,
		ProfessionalID: professionalID,
		ServiceID:      *serviceID,
		From:           rng.From,
		To:             rng.To,
		FromDateOnly:   rng.FromDateOnly,
		ToDateOnly:     rng.ToDateOnly,
		Options:        opts,
	})
	if err != nil {
		status := handlers.RespondUseCaseError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /composed-windows - Failed: company_id=%d, professional_id=%d, service_id=%d, error=%v",
				companyID, professionalID, *serviceID, err)
		} else {
			h.logger.Warn("GET /composed-windows - Rejected: company_id=%d, professional_id=%d, service_id=%d, status=%d, error=%v",
				companyID, professionalID, *serviceID, status, err)
		}
		return
	}

	h.logger.Info("GET /composed-windows - Windows retrieved successfully: company_id=%d, professional_id=%d, service_id=%d, windows_count=%d",
		companyID, professionalID, *serviceID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
