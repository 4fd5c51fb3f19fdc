package handlers

import (
	"encoding/json"
	"net/http"
)

// Стабильные машиночитаемые причины ошибок
const (
	ReasonInvalidInput           = "invalid_input"
	ReasonRangeTooLarge          = "range_too_large"
	ReasonProfessionalNotFound   = "professional_not_found"
	ReasonServiceNotFound        = "service_not_found"
	ReasonServiceDurationMissing = "service_duration_missing"
	ReasonInvalidClosingTime     = "invalid_closing_time"
	ReasonUnknownTimezone        = "unknown_timezone"
	ReasonNotFound               = "not_found"
	ReasonInternal               = "internal_error"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// RespondJSON отправляет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError отправляет ошибку в едином формате
func RespondError(w http.ResponseWriter, status int, reason, message string) {
	RespondJSON(w, status, ErrorResponse{
		Code:    status,
		Reason:  reason,
		Message: message,
	})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, ReasonInvalidInput, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, reason, message string) {
	RespondError(w, http.StatusNotFound, reason, message)
}

// RespondUnprocessable 422
func RespondUnprocessable(w http.ResponseWriter, reason, message string) {
	RespondError(w, http.StatusUnprocessableEntity, reason, message)
}

// RespondInternalError 500, детали ошибки только в логах
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, ReasonInternal, msgInternalError)
}
