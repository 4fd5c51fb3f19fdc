package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/scheduling"
	"github.com/m04kA/SMC-ScheduleService/internal/usecase/common"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// PathID извлекает положительный int64 из переменной маршрута
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// QueryID извлекает опциональный положительный int64 из query параметров
func QueryID(q url.Values, name string) (*int64, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &id, nil
}

// QueryInt извлекает опциональное целое из query параметров
func QueryInt(q url.Values, name string) (*int, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

// QueryInstant извлекает обязательный момент времени ISO-8601 (дата YYYY-MM-DD тоже допускается)
func QueryInstant(q url.Values, name string) (time.Time, error) {
	raw := q.Get(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	if t, ok := scheduling.ParseInstant(raw); ok {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid %s %q", name, raw)
}

// Range диапазон из query параметров. Границы, заданные датой без времени, помечены:
// их день уточняется в use case по часовому поясу запроса.
type Range struct {
	From         time.Time
	To           time.Time
	FromDateOnly bool
	ToDateOnly   bool
}

// QueryRange извлекает обязательные from и to
func QueryRange(q url.Values) (Range, error) {
	from, err := QueryInstant(q, "from")
	if err != nil {
		return Range{}, err
	}
	to, err := QueryInstant(q, "to")
	if err != nil {
		return Range{}, err
	}
	_, fromDateOnly := parseDateOnly(q.Get("from"))
	_, toDateOnly := parseDateOnly(q.Get("to"))

	return Range{
		From:         from,
		To:           to,
		FromDateOnly: fromDateOnly,
		ToDateOnly:   toDateOnly,
	}, nil
}

func parseDateOnly(raw string) (time.Time, bool) {
	t, err := time.Parse(time.DateOnly, raw)
	return t, err == nil
}

// QueryOptions извлекает параметры расписания slotStepMinutes, minLeadMinutes, closingTime, timezone
func QueryOptions(q url.Values) (common.Options, error) {
	var opts common.Options

	step, err := QueryInt(q, "slotStepMinutes")
	if err != nil {
		return opts, err
	}
	lead, err := QueryInt(q, "minLeadMinutes")
	if err != nil {
		return opts, err
	}
	opts.SlotStepMinutes = step
	opts.MinLeadMinutes = lead

	if v := q.Get("closingTime"); v != "" {
		opts.ClosingTime = ptr.Ptr(v)
	}
	if v := q.Get("timezone"); v != "" {
		opts.Timezone = ptr.Ptr(v)
	}

	return opts, nil
}
