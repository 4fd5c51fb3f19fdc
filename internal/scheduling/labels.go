package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ErrInvalidWindow возвращается при попытке подписать окно с некорректными границами
var ErrInvalidWindow = errors.New("scheduling: invalid window")

// FormatLabel возвращает подпись окна в часовом поясе loc, например "Tue 27/01 08:00-09:00"
func FormatLabel(start, end time.Time, loc *time.Location) (string, error) {
	if loc == nil {
		return "", fmt.Errorf("%w: location is required", ErrInvalidWindow)
	}
	if start.IsZero() || !end.After(start) {
		return "", fmt.Errorf("%w: start=%s end=%s", ErrInvalidWindow, start, end)
	}

	ls := start.In(loc)
	le := end.In(loc)

	return fmt.Sprintf("%s %s-%s", ls.Format("Mon 02/01"), ls.Format(domain.TimeFormat), le.Format(domain.TimeFormat)), nil
}

// LabelWindows проставляет подписи всем окнам
func LabelWindows(windows []domain.Window, loc *time.Location) error {
	for i := range windows {
		label, err := FormatLabel(windows[i].StartTime, windows[i].EndTime, loc)
		if err != nil {
			return err
		}
		windows[i].Label = label
	}
	return nil
}
