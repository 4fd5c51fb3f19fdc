package common

import (
	"fmt"
	"time"
)

// ValidateIDs проверяет идентификаторы компании и специалиста
func ValidateIDs(companyID, professionalID int64) error {
	if companyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}
	if professionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	return nil
}

// LocalizeRange переносит границы, заданные датой без времени, в часовой пояс loc:
// from становится началом этого дня, to его последней секундой.
// Дата берется из календарных полей значения (парсер отдает ее как полночь UTC).
func LocalizeRange(from, to time.Time, fromDateOnly, toDateOnly bool, loc *time.Location) (time.Time, time.Time) {
	if fromDateOnly {
		y, m, d := from.Date()
		from = time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	if toDateOnly {
		y, m, d := to.Date()
		to = time.Date(y, m, d, 23, 59, 59, 0, loc)
	}
	return from, to
}

// ValidateRange проверяет диапазон [from, to]. maxDays <= 0 отключает ограничение длины.
func ValidateRange(from, to time.Time, maxDays int) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}
	if maxDays > 0 && to.Sub(from) > time.Duration(maxDays)*24*time.Hour {
		return fmt.Errorf("%w: at most %d days per request", ErrRangeTooLarge, maxDays)
	}
	return nil
}
