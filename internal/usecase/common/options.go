package common

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Defaults значения параметров расписания по умолчанию (из конфигурации)
type Defaults struct {
	SlotStepMinutes int
	MinLeadMinutes  int
	Timezone        string
	ClosingTime     types.TimeString // если у специалиста нет правил доступности
	MaxRangeDays    int
}

// DefaultDefaults значения по умолчанию без конфигурации
func DefaultDefaults() Defaults {
	return Defaults{
		SlotStepMinutes: domain.DefaultSlotStepMinutes,
		MinLeadMinutes:  domain.DefaultMinLeadMinutes,
		Timezone:        domain.DefaultTimezone,
		ClosingTime:     types.MustTimeString(domain.DefaultClosingTime),
		MaxRangeDays:    domain.DefaultMaxRangeDays,
	}
}

// Options параметры расписания из запроса, nil = значение по умолчанию
type Options struct {
	SlotStepMinutes *int
	MinLeadMinutes  *int
	ClosingTime     *string
	Timezone        *string
}

// Resolved итоговые параметры расписания
type Resolved struct {
	SlotStepMinutes int
	MinLeadMinutes  int
	ClosingTime     types.TimeString
	Location        *time.Location
}

// Resolve применяет значения по умолчанию и проверяет параметры запроса.
// Время закрытия по умолчанию: самое позднее окончание среди правил специалиста,
// а если правил нет, то d.ClosingTime.
func (d Defaults) Resolve(opts Options, rules []*domain.AvailabilityRule) (Resolved, error) {
	res := Resolved{
		SlotStepMinutes: d.SlotStepMinutes,
		MinLeadMinutes:  d.MinLeadMinutes,
	}

	if opts.SlotStepMinutes != nil {
		res.SlotStepMinutes = *opts.SlotStepMinutes
	}
	if res.SlotStepMinutes < domain.MinSlotStepMinutes || res.SlotStepMinutes > domain.MaxSlotStepMinutes {
		return Resolved{}, fmt.Errorf("%w: slotStepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}

	if opts.MinLeadMinutes != nil {
		res.MinLeadMinutes = *opts.MinLeadMinutes
	}
	if res.MinLeadMinutes < 0 || res.MinLeadMinutes > domain.MaxLeadMinutes {
		return Resolved{}, fmt.Errorf("%w: minLeadMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxLeadMinutes)
	}

	switch {
	case opts.ClosingTime != nil:
		closing, err := types.NewTimeStringFromString(*opts.ClosingTime)
		if err != nil {
			return Resolved{}, fmt.Errorf("%w: %q", ErrInvalidClosingTime, *opts.ClosingTime)
		}
		res.ClosingTime = closing
	default:
		if latest, ok := domain.LatestEnd(rules); ok {
			res.ClosingTime = latest
		} else {
			res.ClosingTime = d.ClosingTime
		}
	}

	loc, err := d.Location(opts)
	if err != nil {
		return Resolved{}, err
	}
	res.Location = loc

	return res, nil
}

// Location часовой пояс запроса: opts.Timezone или пояс по умолчанию
func (d Defaults) Location(opts Options) (*time.Location, error) {
	tz := d.Timezone
	if opts.Timezone != nil {
		tz = *opts.Timezone
	}
	return LoadLocation(tz)
}

// LoadLocation загружает часовой пояс IANA. Пустое имя не допускается.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownTimezone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}
	return loc, nil
}
