package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

func TestFormatLabel(t *testing.T) {
	start := time.Date(2026, 1, 27, 11, 0, 0, 0, time.UTC)

	label, err := FormatLabel(start, start.Add(time.Hour), brt)

	require.NoError(t, err)
	assert.Equal(t, "Tue 27/01 08:00-09:00", label)
}

func TestFormatLabel_InvalidInput(t *testing.T) {
	start := time.Date(2026, 1, 27, 11, 0, 0, 0, time.UTC)

	_, err := FormatLabel(start, start, brt)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = FormatLabel(start, start.Add(time.Hour), nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestLabelWindows(t *testing.T) {
	start := time.Date(2026, 1, 28, 1, 0, 0, 0, time.UTC)
	windows := []domain.Window{
		{StartTime: start, EndTime: start.Add(30 * time.Minute)},
	}

	require.NoError(t, LabelWindows(windows, brt))
	assert.Equal(t, "Tue 27/01 22:00-22:30", windows[0].Label)

	windows = append(windows, domain.Window{StartTime: start, EndTime: start.Add(-time.Minute)})
	assert.ErrorIs(t, LabelWindows(windows, brt), ErrInvalidWindow)
}
