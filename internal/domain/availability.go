package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// AvailabilityRule represents a recurring weekly block of a professional
// DayOfWeek follows time.Weekday numbering: 0 = Sunday ... 6 = Saturday
type AvailabilityRule struct {
	ID             int64
	ProfessionalID int64
	CompanyID      int64
	DayOfWeek      int
	StartTime      types.TimeString // local wall-clock
	EndTime        types.TimeString // local wall-clock
}

// Matches returns true if the rule applies to the given weekday
func (r *AvailabilityRule) Matches(weekday time.Weekday) bool {
	return r.DayOfWeek == int(weekday)
}

// LatestEnd returns the maximum end time across rules and false if rules is empty
func LatestEnd(rules []*AvailabilityRule) (types.TimeString, bool) {
	if len(rules) == 0 {
		return types.TimeString{}, false
	}
	latest := rules[0].EndTime
	for _, r := range rules[1:] {
		if r.EndTime.IsAfter(latest) {
			latest = r.EndTime
		}
	}
	return latest, true
}
