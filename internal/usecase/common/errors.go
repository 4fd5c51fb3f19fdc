package common

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRangeTooLarge возвращается, когда запрошенный диапазон превышает допустимый
	ErrRangeTooLarge = errors.New("requested range is too large")

	// ErrProfessionalNotFound возвращается, когда специалист не найден или не принадлежит компании
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в компании
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceDurationMissing возвращается, когда у услуги не задана длительность
	ErrServiceDurationMissing = errors.New("service duration missing")

	// ErrInvalidClosingTime возвращается при некорректном времени закрытия
	ErrInvalidClosingTime = errors.New("invalid closing time")

	// ErrUnknownTimezone возвращается при неизвестном часовом поясе
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
