package common

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	professionalRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/service"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type professionalStub struct {
	p   *domain.Professional
	err error
}

func (s professionalStub) GetByID(context.Context, int64) (*domain.Professional, error) {
	return s.p, s.err
}

type serviceStub struct {
	s   *domain.Service
	err error
}

func (s serviceStub) GetByID(context.Context, int64, int64) (*domain.Service, error) {
	return s.s, s.err
}

func TestCheckProfessional(t *testing.T) {
	ctx := context.Background()

	p, err := CheckProfessional(ctx, professionalStub{p: &domain.Professional{ID: 7, CompanyID: 1}}, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)

	_, err = CheckProfessional(ctx, professionalStub{p: &domain.Professional{ID: 7, CompanyID: 2}}, 1, 7)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)

	_, err = CheckProfessional(ctx, professionalStub{err: professionalRepo.ErrProfessionalNotFound}, 1, 7)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)

	_, err = CheckProfessional(ctx, professionalStub{err: errors.New("db down")}, 1, 7)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestLoadService(t *testing.T) {
	ctx := context.Background()

	s, err := LoadService(ctx, serviceStub{s: &domain.Service{ID: 3, DurationMinutes: ptr.Ptr(45)}}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 45, *s.DurationMinutes)

	_, err = LoadService(ctx, serviceStub{s: &domain.Service{ID: 3}}, 1, 3)
	assert.ErrorIs(t, err, ErrServiceDurationMissing)

	_, err = LoadService(ctx, serviceStub{s: &domain.Service{ID: 3, DurationMinutes: ptr.Ptr(0)}}, 1, 3)
	assert.ErrorIs(t, err, ErrServiceDurationMissing)

	_, err = LoadService(ctx, serviceStub{err: serviceRepo.ErrServiceNotFound}, 1, 3)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = LoadService(ctx, serviceStub{err: errors.New("db down")}, 1, 3)
	assert.ErrorIs(t, err, ErrInternal)
}
