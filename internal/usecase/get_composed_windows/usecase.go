package get_composed_windows

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduling"
	"github.com/m04kA/SMC-ScheduleService/internal/usecase/common"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

const operationName = "composed_windows"

// UseCase use case сборки окон длительности услуги из подряд идущих базовых слотов
type UseCase struct {
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	slotRepo         SlotRepository
	metrics          Metrics
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
	metrics Metrics,
	defaults common.Defaults,
	logger Logger,
) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		slotRepo:         slotRepo,
		metrics:          metrics,
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

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetComposedWindows: company=%d, professional=%d, service=%d, from=%s, to=%s",
		req.CompanyID, req.ProfessionalID, req.ServiceID, req.From.Format(domain.InstantFormat), req.To.Format(domain.InstantFormat))

	loc, err := uc.defaults.Location(req.Options)
	if err != nil {
		uc.logger.Warn("GetComposedWindows: invalid timezone: %v", err)
		return nil, err
	}
	localized := *req
	localized.From, localized.To = common.LocalizeRange(req.From, req.To, req.FromDateOnly, req.ToDateOnly, loc)
	req = &localized

	if err := validateRequest(req, uc.defaults.MaxRangeDays); err != nil {
		uc.logger.Warn("GetComposedWindows: validation failed: %v", err)
		return nil, err
	}

	if _, err := common.CheckProfessional(ctx, uc.professionalRepo, req.CompanyID, req.ProfessionalID); err != nil {
		uc.logger.Warn("GetComposedWindows: professional check failed: %v", err)
		return nil, err
	}

	service, err := common.LoadService(ctx, uc.serviceRepo, req.CompanyID, req.ServiceID)
	if err != nil {
		uc.logger.Warn("GetComposedWindows: service check failed: %v", err)
		return nil, err
	}

	var (
		rules []*domain.AvailabilityRule
		units []*domain.BaseSlot
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
		// недоступные слоты тоже нужны: они разрывают последовательность
		units, err = uc.slotRepo.GetInRange(gctx, domain.SlotFilter{
			ProfessionalID: req.ProfessionalID,
			From:           req.From,
			To:             req.To,
			ServiceID:      ptr.Ptr(service.ID),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get slots: %v", common.ErrInternal, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetComposedWindows: %v", err)
		return nil, err
	}

	opts, err := uc.defaults.Resolve(req.Options, rules)
	if err != nil {
		uc.logger.Warn("GetComposedWindows: invalid options: %v", err)
		return nil, err
	}

	slots := make([]domain.BaseSlot, len(units))
	for i, u := range units {
		slots[i] = *u
	}

	windows := scheduling.BuildWindows(slots, scheduling.BuilderParams{
		DurationMinutes: *service.DurationMinutes,
		SlotStepMinutes: opts.SlotStepMinutes,
		Now:             uc.timeProvider.Now(),
		ClosingTime:     opts.ClosingTime,
		Location:        opts.Location,
		MinLeadMinutes:  opts.MinLeadMinutes,
	})

	if err := scheduling.LabelWindows(windows, opts.Location); err != nil {
		uc.logger.Error("GetComposedWindows: failed to label windows: %v", err)
		return nil, fmt.Errorf("%w: failed to label windows: %v", common.ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.AddWindows(operationName, len(windows))
	}

	uc.logger.Info("GetComposedWindows: %d windows from %d slots for professional=%d", len(windows), len(slots), req.ProfessionalID)

	return &Response{
		Service:  service,
		Timezone: opts.Location.String(),
		Windows:  windows,
	}, nil
}
