package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/usecase/common"
)

const (
	msgInvalidInput           = "некорректные параметры запроса"
	msgRangeTooLarge          = "слишком большой диапазон дат"
	msgProfessionalNotFound   = "специалист не найден"
	msgServiceNotFound        = "услуга не найдена"
	msgServiceDurationMissing = "у услуги не задана длительность"
	msgInvalidClosingTime     = "некорректное время закрытия, ожидается HH:MM"
	msgUnknownTimezone        = "неизвестный часовой пояс"
)

// RespondUseCaseError отправляет ответ для ошибки use case и возвращает HTTP статус
func RespondUseCaseError(w http.ResponseWriter, err error) int {
	switch {
	case errors.Is(err, common.ErrRangeTooLarge):
		RespondError(w, http.StatusBadRequest, ReasonRangeTooLarge, msgRangeTooLarge)
		return http.StatusBadRequest

	case errors.Is(err, common.ErrInvalidInput):
		RespondBadRequest(w, msgInvalidInput)
		return http.StatusBadRequest

	case errors.Is(err, common.ErrProfessionalNotFound):
		RespondNotFound(w, ReasonProfessionalNotFound, msgProfessionalNotFound)
		return http.StatusNotFound

	case errors.Is(err, common.ErrServiceNotFound):
		RespondNotFound(w, ReasonServiceNotFound, msgServiceNotFound)
		return http.StatusNotFound

	case errors.Is(err, common.ErrServiceDurationMissing):
		RespondUnprocessable(w, ReasonServiceDurationMissing, msgServiceDurationMissing)
		return http.StatusUnprocessableEntity

	case errors.Is(err, common.ErrInvalidClosingTime):
		RespondUnprocessable(w, ReasonInvalidClosingTime, msgInvalidClosingTime)
		return http.StatusUnprocessableEntity

	case errors.Is(err, common.ErrUnknownTimezone):
		RespondUnprocessable(w, ReasonUnknownTimezone, msgUnknownTimezone)
		return http.StatusUnprocessableEntity

	default:
		RespondInternalError(w)
		return http.StatusInternalServerError
	}
}
