// Package usecasetest содержит хранилища в памяти для тестов use case'ов.
package usecasetest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	professionalRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/service"
	slotRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduling"
)

// Professionals репозиторий специалистов в памяти
type Professionals struct {
	Items map[int64]*domain.Professional
	Err   error
}

func (r *Professionals) GetByID(_ context.Context, id int64) (*domain.Professional, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.Items[id]
	if !ok {
		return nil, professionalRepo.ErrProfessionalNotFound
	}
	return p, nil
}

// Services каталог услуг в памяти
type Services struct {
	Items map[int64]*domain.Service
	Err   error
}

func (r *Services) GetByID(_ context.Context, companyID, serviceID int64) (*domain.Service, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	s, ok := r.Items[serviceID]
	if !ok || s.CompanyID != companyID {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return s, nil
}

// Availability правила доступности в памяти
type Availability struct {
	Rules []*domain.AvailabilityRule
	Err   error
}

func (r *Availability) GetByProfessional(_ context.Context, professionalID, companyID int64) ([]*domain.AvailabilityRule, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*domain.AvailabilityRule, 0)
	for _, rule := range r.Rules {
		if rule.ProfessionalID == professionalID && rule.CompanyID == companyID {
			out = append(out, rule)
		}
	}
	return out, nil
}

// Slots хранилище слотов в памяти с уникальностью (professional_id, start_time)
type Slots struct {
	mu     sync.Mutex
	rows   []*domain.BaseSlot
	nextID int64

	ReadErr   error
	InsertErr error
	Inserts   int
}

// Add сохраняет слот и возвращает его ID
func (r *Slots) Add(slot domain.BaseSlot) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	slot.ID = r.nextID
	slot.StartTime = slot.StartTime.UTC()
	slot.EndTime = slot.EndTime.UTC()
	r.rows = append(r.rows, &slot)
	return slot.ID
}

// Len количество сохраненных слотов
func (r *Slots) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *Slots) GetInRange(_ context.Context, f domain.SlotFilter) ([]*domain.BaseSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ReadErr != nil {
		return nil, r.ReadErr
	}

	out := make([]*domain.BaseSlot, 0)
	for _, s := range r.rows {
		if s.ProfessionalID != f.ProfessionalID || s.StartTime.Before(f.From) || s.StartTime.After(f.To) {
			continue
		}
		if f.IsAvailable != nil && s.IsAvailable != *f.IsAvailable {
			continue
		}
		if f.ServiceID != nil && s.ServiceID != nil && *s.ServiceID != *f.ServiceID {
			continue
		}
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *Slots) GetByProfessionalAndStarts(_ context.Context, professionalID int64, starts []time.Time) ([]*domain.BaseSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ReadErr != nil {
		return nil, r.ReadErr
	}

	wanted := make(map[string]struct{}, len(starts))
	for _, s := range starts {
		wanted[scheduling.InstantKey(s)] = struct{}{}
	}

	out := make([]*domain.BaseSlot, 0)
	for _, s := range r.rows {
		if _, ok := wanted[scheduling.InstantKey(s.StartTime)]; ok && s.ProfessionalID == professionalID {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *Slots) CreateBatch(_ context.Context, slots []*domain.BaseSlot) ([]*domain.BaseSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Inserts++
	if r.InsertErr != nil {
		return nil, r.InsertErr
	}

	for _, s := range slots {
		for _, row := range r.rows {
			if row.ProfessionalID == s.ProfessionalID && row.StartTime.Equal(s.StartTime) {
				return nil, fmt.Errorf("%w: CreateBatch", slotRepo.ErrDuplicateSlot)
			}
		}
	}

	for _, s := range slots {
		r.nextID++
		s.ID = r.nextID
		copied := *s
		copied.StartTime = copied.StartTime.UTC()
		copied.EndTime = copied.EndTime.UTC()
		r.rows = append(r.rows, &copied)
	}
	return slots, nil
}

// FixedTime провайдер времени с фиксированным значением
type FixedTime struct {
	T time.Time
}

func (f FixedTime) Now() time.Time {
	return f.T
}

// NopLogger логгер, который ничего не пишет
type NopLogger struct{}

func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
