package common

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	professionalRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/service"
)

// CheckProfessional проверяет, что специалист существует и принадлежит компании
func CheckProfessional(ctx context.Context, repo ProfessionalRepository, companyID, professionalID int64) (*domain.Professional, error) {
	professional, err := repo.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if !professional.BelongsTo(companyID) {
		return nil, fmt.Errorf("%w: professional %d does not belong to company %d", ErrProfessionalNotFound, professionalID, companyID)
	}

	return professional, nil
}

// LoadService получает услугу компании и проверяет, что у нее задана длительность
func LoadService(ctx context.Context, repo ServiceRepository, companyID, serviceID int64) (*domain.Service, error) {
	service, err := repo.GetByID(ctx, companyID, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.HasDuration() {
		return nil, fmt.Errorf("%w: service %d", ErrServiceDurationMissing, serviceID)
	}

	return service, nil
}
