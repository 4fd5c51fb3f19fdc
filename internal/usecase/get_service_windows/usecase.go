package get_service_windows

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduling"
	"github.com/m04kA/SMC-ScheduleService/internal/service/materializer"
	"github.com/m04kA/SMC-ScheduleService/internal/usecase/common"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

const operationName = "service_windows"

// UseCase use case получения окон записи на услугу:
// генерация из правил -> фильтр занятых -> материализация -> подписи
type UseCase struct {
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	slotRepo         SlotRepository
	materializer     Materializer
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
	slotMaterializer Materializer,
	metrics Metrics,
	defaults common.Defaults,
	logger Logger,
) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		slotRepo:         slotRepo,
		materializer:     slotMaterializer,
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

// Execute выполняет use case получения окон записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetServiceWindows: company=%d, professional=%d, service=%d, from=%s, to=%s",
		req.CompanyID, req.ProfessionalID, req.ServiceID, req.From.Format(domain.InstantFormat), req.To.Format(domain.InstantFormat))

	// 1. Даты без времени трактуются в часовом поясе запроса
	loc, err := uc.defaults.Location(req.Options)
	if err != nil {
		uc.logger.Warn("GetServiceWindows: invalid timezone: %v", err)
		return nil, err
	}
	localized := *req
	localized.From, localized.To = common.LocalizeRange(req.From, req.To, req.FromDateOnly, req.ToDateOnly, loc)
	req = &localized

	// Валидация входных данных
	if err := validateRequest(req, uc.defaults.MaxRangeDays); err != nil {
		uc.logger.Warn("GetServiceWindows: validation failed: %v", err)
		return nil, err
	}

	// 2. Специалист и услуга компании
	if _, err := common.CheckProfessional(ctx, uc.professionalRepo, req.CompanyID, req.ProfessionalID); err != nil {
		uc.logger.Warn("GetServiceWindows: professional check failed: %v", err)
		return nil, err
	}

	service, err := common.LoadService(ctx, uc.serviceRepo, req.CompanyID, req.ServiceID)
	if err != nil {
		uc.logger.Warn("GetServiceWindows: service check failed: %v", err)
		return nil, err
	}

	// 3. Независимые чтения: правила, занятые слоты, доступные сохраненные слоты
	var (
		rules     []*domain.AvailabilityRule
		occupied  []*domain.BaseSlot
		available []*domain.BaseSlot
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
	g.Go(func() error {
		var err error
		available, err = uc.slotRepo.GetInRange(gctx, domain.SlotFilter{
			ProfessionalID: req.ProfessionalID,
			From:           req.From,
			To:             req.To,
			IsAvailable:    ptr.Ptr(true),
			ServiceID:      ptr.Ptr(service.ID),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get available slots: %v", common.ErrInternal, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetServiceWindows: %v", err)
		return nil, err
	}

	// 4. Параметры расписания (время закрытия по умолчанию зависит от правил)
	opts, err := uc.defaults.Resolve(req.Options, rules)
	if err != nil {
		uc.logger.Warn("GetServiceWindows: invalid options: %v", err)
		return nil, err
	}

	// 5. Генерация окон с учетом занятых слотов
	windows := scheduling.GenerateWindows(rules, scheduling.GeneratorParams{
		DurationMinutes: *service.DurationMinutes,
		SlotStepMinutes: opts.SlotStepMinutes,
		From:            req.From,
		To:              req.To,
		Now:             uc.timeProvider.Now(),
		Location:        opts.Location,
		ClosingTime:     opts.ClosingTime,
		MinLeadMinutes:  opts.MinLeadMinutes,
		Occupied:        scheduling.NewOccupiedSet(occupied),
	})

	// 6. Материализация: виртуальные слоты получают постоянные ID
	windows, _ = uc.materializer.Materialize(ctx, materializer.Request{
		ProfessionalID: req.ProfessionalID,
		ServiceID:      ptr.Ptr(service.ID),
		Existing:       available,
		Windows:        windows,
	})

	virtual := 0
	for i := range windows {
		if windows[i].HasVirtualRefs() {
			virtual++
		}
	}
	if virtual > 0 {
		uc.logger.Warn("GetServiceWindows: %d windows returned with virtual slot ids, professional=%d", virtual, req.ProfessionalID)
	}

	// 7. Подписи в часовом поясе запроса
	if err := scheduling.LabelWindows(windows, opts.Location); err != nil {
		uc.logger.Error("GetServiceWindows: failed to label windows: %v", err)
		return nil, fmt.Errorf("%w: failed to label windows: %v", common.ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.AddWindows(operationName, len(windows))
	}

	uc.logger.Info("GetServiceWindows: %d windows for professional=%d, service=%d", len(windows), req.ProfessionalID, req.ServiceID)

	return &Response{
		Service:  service,
		Timezone: opts.Location.String(),
		Windows:  windows,
	}, nil
}
