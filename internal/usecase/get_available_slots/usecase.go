package get_available_slots

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduling"
	"github.com/m04kA/SMC-ScheduleService/internal/usecase/common"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// UseCase use case для получения доступных слотов специалиста
type UseCase struct {
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	slotRepo         SlotRepository
	defaults         common.Defaults
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	availabilityRepo AvailabilityRepository,
	slotRepo SlotRepository,
	defaults common.Defaults,
	logger Logger,
) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		slotRepo:         slotRepo,
		defaults:         defaults,
		timeProvider:     &common.RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает сохраненные доступные слоты в диапазоне, а если их нет,
// генерирует виртуальные слоты из правил доступности (без сохранения)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: company=%d, professional=%d, service=%d, from=%s, to=%s",
		req.CompanyID, req.ProfessionalID, ptr.Deref(req.ServiceID, 0), req.From.Format(domain.InstantFormat), req.To.Format(domain.InstantFormat))

	// 1. Даты без времени трактуются в часовом поясе по умолчанию
	loc, err := uc.defaults.Location(common.Options{})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid default timezone: %v", err)
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}
	localized := *req
	localized.From, localized.To = common.LocalizeRange(req.From, req.To, req.FromDateOnly, req.ToDateOnly, loc)
	req = &localized

	// Валидация входных данных
	if err := validateRequest(req, uc.defaults.MaxRangeDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Специалист должен принадлежать компании
	if _, err := common.CheckProfessional(ctx, uc.professionalRepo, req.CompanyID, req.ProfessionalID); err != nil {
		uc.logger.Warn("GetAvailableSlots: professional check failed: %v", err)
		return nil, err
	}

	// 3. Услуга (если указана) определяет длительность генерируемых слотов
	var service *domain.Service
	if req.ServiceID != nil {
		service, err = common.LoadService(ctx, uc.serviceRepo, req.CompanyID, *req.ServiceID)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: service check failed: %v", err)
			return nil, err
		}
	}

	// 4. Сохраненные доступные слоты
	var persisted []*domain.BaseSlot
	persisted, err = uc.slotRepo.GetInRange(ctx, domain.SlotFilter{
		ProfessionalID: req.ProfessionalID,
		From:           req.From,
		To:             req.To,
		IsAvailable:    ptr.Ptr(true),
		ServiceID:      req.ServiceID,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", common.ErrInternal, err)
	}

	if len(persisted) > 0 {
		uc.logger.Info("GetAvailableSlots: returning %d persisted slots for professional=%d", len(persisted), req.ProfessionalID)
		return &Response{
			ProfessionalID: req.ProfessionalID,
			ServiceID:      req.ServiceID,
			Slots:          fromPersisted(persisted),
		}, nil
	}

	// 5. Генерация из правил доступности
	slots, err := uc.generate(ctx, req, service)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: generated %d virtual slots for professional=%d", len(slots), req.ProfessionalID)

	return &Response{
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Generated:      true,
		Slots:          slots,
	}, nil
}

func (uc *UseCase) generate(ctx context.Context, req *Request, service *domain.Service) ([]Slot, error) {
	var (
		rules    []*domain.AvailabilityRule
		occupied []*domain.BaseSlot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rules, err = uc.availabilityRepo.GetByProfessional(gctx, req.ProfessionalID, req.CompanyID)
		if err != nil {
			return fmt.Errorf("%w: failed to get availability: %v", common.ErrInternal, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		occupied, err = uc.slotRepo.GetInRange(gctx, domain.SlotFilter{
			ProfessionalID: req.ProfessionalID,
			From:           req.From,
			To:             req.To,
			IsAvailable:    ptr.Ptr(false),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get occupied slots: %v", common.ErrInternal, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, err
	}

	opts, err := uc.defaults.Resolve(common.Options{}, rules)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid default options: %v", err)
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	duration := opts.SlotStepMinutes
	if service != nil {
		duration = *service.DurationMinutes
	}

	windows := scheduling.GenerateWindows(rules, scheduling.GeneratorParams{
		DurationMinutes: duration,
		SlotStepMinutes: opts.SlotStepMinutes,
		From:            req.From,
		To:              req.To,
		Now:             uc.timeProvider.Now(),
		Location:        opts.Location,
		ClosingTime:     opts.ClosingTime,
		MinLeadMinutes:  opts.MinLeadMinutes,
		Occupied:        scheduling.NewOccupiedSet(occupied),
	})

	slots := make([]Slot, len(windows))
	for i, w := range windows {
		slots[i] = Slot{
			Ref:         w.SlotRefs[0],
			ServiceID:   req.ServiceID,
			StartTime:   w.StartTime,
			EndTime:     w.EndTime,
			IsAvailable: true,
		}
	}
	return slots, nil
}

func fromPersisted(persisted []*domain.BaseSlot) []Slot {
	slots := make([]Slot, len(persisted))
	for i, s := range persisted {
		slots[i] = Slot{
			Ref:         s.Ref(),
			ServiceID:   s.ServiceID,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			IsAvailable: s.IsAvailable,
		}
	}
	return slots
}
