package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

func TestOccupiedSet_MatchesAcrossZones(t *testing.T) {
	busy := time.Date(2026, 1, 27, 12, 0, 0, 0, time.UTC)
	set := NewOccupiedSet([]*domain.BaseSlot{{StartTime: busy}})

	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	assert.True(t, set.Contains(busy.In(saoPaulo)))
	assert.False(t, set.Contains(busy.Add(time.Minute)))

	var empty *OccupiedSet
	assert.False(t, empty.Contains(busy))
	assert.False(t, empty.Overlaps(busy, busy.Add(time.Hour)))
}

func TestOccupiedSet_Overlaps(t *testing.T) {
	booked := time.Date(2026, 1, 27, 11, 30, 0, 0, time.UTC)
	set := NewOccupiedSet([]*domain.BaseSlot{
		{StartTime: booked, EndTime: booked.Add(30 * time.Minute), IsAvailable: false},
		{StartTime: booked.Add(2 * time.Hour), EndTime: booked.Add(3 * time.Hour), IsAvailable: true},
	})

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{name: "covers booked range", start: booked.Add(-30 * time.Minute), end: booked.Add(30 * time.Minute), want: true},
		{name: "starts inside", start: booked.Add(15 * time.Minute), end: booked.Add(75 * time.Minute), want: true},
		{name: "ends at booked start", start: booked.Add(-time.Hour), end: booked, want: false},
		{name: "starts at booked end", start: booked.Add(30 * time.Minute), end: booked.Add(90 * time.Minute), want: false},
		{name: "available row ignored", start: booked.Add(2 * time.Hour), end: booked.Add(3 * time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.Overlaps(tt.start, tt.end))
		})
	}
}

func TestFilterOccupied(t *testing.T) {
	start := time.Date(2026, 1, 27, 11, 0, 0, 0, time.UTC)
	windows := []domain.Window{
		{StartTime: start, EndTime: start.Add(time.Hour)},
		{StartTime: start.Add(time.Hour), EndTime: start.Add(2 * time.Hour)},
		{StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour)},
	}
	set := NewOccupiedSet(nil)
	set.Add(start.Add(time.Hour))
	set.AddRange(start.Add(150*time.Minute), start.Add(165*time.Minute))

	got := FilterOccupied(windows, set)

	require.Len(t, got, 1)
	assert.Equal(t, start, got[0].StartTime)
	assert.Len(t, windows, 3, "input must not be modified")
}
