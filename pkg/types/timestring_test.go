package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "hh:mm", input: "09:30", want: "09:30"},
		{name: "hh:mm:ss", input: "18:00:00", want: "18:00"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "spaces", input: " 07:05 ", want: "07:05"},
		{name: "garbage", input: "nine", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_AddMinutesAndCompare(t *testing.T) {
	start := MustTimeString("17:30")

	end, err := start.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "18:00", end.String())
	assert.True(t, start.IsBefore(end))
	assert.True(t, end.IsAfter(start))
	assert.False(t, end.IsBefore(end))

	_, err = start.AddMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	date := time.Date(2026, 1, 27, 2, 0, 0, 0, time.UTC) // 26/01 23:00 по UTC-3

	got := MustTimeString("08:15").On(date, loc)

	assert.Equal(t, time.Date(2026, 1, 26, 8, 15, 0, 0, loc), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("10:45:00")))
	assert.Equal(t, "10:45", ts.String())

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 6, 5, 0, 0, time.UTC)))
	assert.Equal(t, "06:05", ts.String())

	assert.Error(t, ts.Scan(nil))
	assert.Error(t, ts.Scan(42))

	v, err := MustTimeString("08:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "08:00:00", v)
}
