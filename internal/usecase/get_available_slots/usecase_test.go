package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/usecase/common"
	"github.com/m04kA/SMC-ScheduleService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type fixture struct {
	professionals *usecasetest.Professionals
	services      *usecasetest.Services
	availability  *usecasetest.Availability
	slots         *usecasetest.Slots
	uc            *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		professionals: &usecasetest.Professionals{Items: map[int64]*domain.Professional{
			7: {ID: 7, CompanyID: 1, Name: "Ana"},
		}},
		services: &usecasetest.Services{Items: map[int64]*domain.Service{
			3: {ID: 3, CompanyID: 1, Name: "Haircut", DurationMinutes: ptr.Ptr(60)},
			4: {ID: 4, CompanyID: 1, Name: "Consultation"},
		}},
		availability: &usecasetest.Availability{Rules: []*domain.AvailabilityRule{
			{ProfessionalID: 7, CompanyID: 1, DayOfWeek: int(time.Tuesday),
				StartTime: types.MustTimeString("08:00"), EndTime: types.MustTimeString("10:00")},
		}},
		slots: &usecasetest.Slots{},
	}

	f.uc = NewUseCase(f.professionals, f.services, f.availability, f.slots, common.DefaultDefaults(), usecasetest.NopLogger{}).
		WithTimeProvider(usecasetest.FixedTime{T: time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)})
	return f
}

// вторник 27.01.2026 целиком по UTC
func tuesday() (time.Time, time.Time) {
	return time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 27, 23, 59, 59, 0, time.UTC)
}

func TestExecute_ReturnsPersistedSlots(t *testing.T) {
	f := newFixture()
	start := time.Date(2026, 1, 27, 11, 0, 0, 0, time.UTC)
	id := f.slots.Add(domain.BaseSlot{ProfessionalID: 7, StartTime: start, EndTime: start.Add(time.Hour), IsAvailable: true})
	f.slots.Add(domain.BaseSlot{ProfessionalID: 7, StartTime: start.Add(time.Hour), EndTime: start.Add(2 * time.Hour), IsAvailable: false})

	from, to := tuesday()
	resp, err := f.uc.Execute(context.Background(), &Request{CompanyID: 1, ProfessionalID: 7, From: from, To: to})

	require.NoError(t, err)
	assert.False(t, resp.Generated)
	require.Len(t, resp.Slots, 1)
	refID, ok := resp.Slots[0].Ref.ID()
	assert.True(t, ok)
	assert.Equal(t, id, refID)
}

func TestExecute_GeneratesVirtualSlotsWhenNothingPersisted(t *testing.T) {
	f := newFixture()

	from, to := tuesday()
	resp, err := f.uc.Execute(context.Background(), &Request{CompanyID: 1, ProfessionalID: 7, ServiceID: ptr.Ptr(int64(3)), From: from, To: to})

	require.NoError(t, err)
	assert.True(t, resp.Generated)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "virtual-2026-01-27T11:00:00Z", resp.Slots[0].Ref.String())
	assert.Equal(t, "virtual-2026-01-27T12:00:00Z", resp.Slots[1].Ref.String())
	assert.Equal(t, time.Hour, resp.Slots[0].EndTime.Sub(resp.Slots[0].StartTime))
	assert.Equal(t, 0, f.slots.Len(), "generation path must not persist")
}

func TestExecute_GenerationWithoutServiceUsesSlotStep(t *testing.T) {
	f := newFixture()
	// 08:15 по Сан-Паулу занят
	booked := time.Date(2026, 1, 27, 11, 15, 0, 0, time.UTC)
	f.slots.Add(domain.BaseSlot{ProfessionalID: 7, StartTime: booked, EndTime: booked.Add(15 * time.Minute), IsAvailable: false})

	from, to := tuesday()
	resp, err := f.uc.Execute(context.Background(), &Request{CompanyID: 1, ProfessionalID: 7, From: from, To: to})

	require.NoError(t, err)
	assert.True(t, resp.Generated)
	assert.Len(t, resp.Slots, 7) // 8 четвертей часа минус занятая
	for _, s := range resp.Slots {
		assert.NotEqual(t, booked, s.StartTime)
	}
}

func TestExecute_Errors(t *testing.T) {
	from, to := tuesday()

	tests := []struct {
		name    string
		req     Request
		prepare func(f *fixture)
		wantErr error
	}{
		{
			name:    "invalid company",
			req:     Request{CompanyID: 0, ProfessionalID: 7, From: from, To: to},
			wantErr: common.ErrInvalidInput,
		},
		{
			name:    "inverted range",
			req:     Request{CompanyID: 1, ProfessionalID: 7, From: to, To: from},
			wantErr: common.ErrInvalidInput,
		},
		{
			name:    "range too large",
			req:     Request{CompanyID: 1, ProfessionalID: 7, From: from, To: from.AddDate(0, 3, 0)},
			wantErr: common.ErrRangeTooLarge,
		},
		{
			name:    "professional of another company",
			req:     Request{CompanyID: 2, ProfessionalID: 7, From: from, To: to},
			wantErr: common.ErrProfessionalNotFound,
		},
		{
			name:    "unknown service",
			req:     Request{CompanyID: 1, ProfessionalID: 7, ServiceID: ptr.Ptr(int64(99)), From: from, To: to},
			wantErr: common.ErrServiceNotFound,
		},
		{
			name:    "service without duration",
			req:     Request{CompanyID: 1, ProfessionalID: 7, ServiceID: ptr.Ptr(int64(4)), From: from, To: to},
			wantErr: common.ErrServiceDurationMissing,
		},
		{
			name:    "slots read failure",
			req:     Request{CompanyID: 1, ProfessionalID: 7, From: from, To: to},
			prepare: func(f *fixture) { f.slots.ReadErr = errors.New("db down") },
			wantErr: common.ErrInternal,
		},
		{
			name:    "availability read failure",
			req:     Request{CompanyID: 1, ProfessionalID: 7, From: from, To: to},
			prepare: func(f *fixture) { f.availability.Err = errors.New("db down") },
			wantErr: common.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.prepare != nil {
				tt.prepare(f)
			}
			req := tt.req

			_, err := f.uc.Execute(context.Background(), &req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
