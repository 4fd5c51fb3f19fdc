package materializer

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduling"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

// DefaultInsertAttempts сколько раз повторяется вставка после конфликта уникальности
const DefaultInsertAttempts = 3

// Service присваивает виртуальным слотам окон постоянные ID.
//
// Порядок:
//  1. виртуальный слот сопоставляется с доступным сохраненным слотом по каноническому ключу момента начала;
//  2. для оставшихся повторно проверяется существование строк (любой доступности);
//  3. отсутствующие создаются одной пачкой; при конфликте уникальности перечитываются
//     строки победителя и вставка повторяется для остатка;
//  4. при любой другой ошибке хранилища слоты остаются виртуальными, ответ не прерывается.
//
// Окна, слот которых при повторной проверке оказался занят, из результата убираются.
//
// Повторный вызов с теми же окнами не создает новых строк.
type Service struct {
	slotRepo       SlotRepository
	metrics        Metrics
	logger         Logger
	insertAttempts int
}

// NewService создает новый экземпляр сервиса материализации
func NewService(slotRepo SlotRepository, m Metrics, logger Logger) *Service {
	return &Service{
		slotRepo:       slotRepo,
		metrics:        m,
		logger:         logger,
		insertAttempts: DefaultInsertAttempts,
	}
}

// Materialize возвращает копию окон, в которой виртуальные ссылки заменены на сохраненные,
// где это удалось. Окна с занятыми слотами отбрасываются. Входные окна не изменяются.
func (s *Service) Materialize(ctx context.Context, req Request) ([]domain.Window, Result) {
	var result Result
	windows := cloneWindows(req.Windows)

	ids := make(map[string]int64, len(req.Existing))
	for _, slot := range req.Existing {
		if slot == nil || !slot.IsAvailable || slot.ID <= 0 {
			continue
		}
		key := scheduling.InstantKey(slot.StartTime)
		if _, ok := ids[key]; !ok {
			ids[key] = slot.ID
		}
	}

	pending := newPendingSet()
	matched := make(map[string]struct{})
	for _, w := range windows {
		for i, ref := range w.SlotRefs {
			start, virtual := ref.Instant()
			if !virtual {
				continue
			}
			key := scheduling.InstantKey(start)
			if _, ok := ids[key]; ok {
				matched[key] = struct{}{}
				continue
			}
			pending.add(key, &domain.BaseSlot{
				ProfessionalID: req.ProfessionalID,
				ServiceID:      req.ServiceID,
				StartTime:      start,
				EndTime:        refEnd(w, i),
				IsAvailable:    true,
			})
		}
	}
	result.Matched = len(matched)

	booked := make(map[string]struct{})
	if pending.len() > 0 {
		s.reconcile(ctx, req.ProfessionalID, pending, ids, booked, &result)
	}

	out := windows[:0]
	for _, w := range windows {
		keep := true
		for ri, ref := range w.SlotRefs {
			start, virtual := ref.Instant()
			if !virtual {
				continue
			}
			key := scheduling.InstantKey(start)
			if _, ok := booked[key]; ok {
				keep = false
				break
			}
			if id, ok := ids[key]; ok {
				w.SlotRefs[ri] = domain.PersistedRef(id)
			}
		}
		if !keep {
			result.Dropped++
			continue
		}
		out = append(out, w)
	}

	s.record(result)
	s.logger.Info("Materialize: professional=%d matched=%d existing=%d inserted=%d recovered=%d degraded=%d booked=%d dropped=%d",
		req.ProfessionalID, result.Matched, result.Existing, result.Inserted, result.DuplicateRecovered,
		result.Degraded, result.Booked, result.Dropped)

	return out, result
}

// reconcile повторно проверяет существование и создает недостающие слоты
func (s *Service) reconcile(ctx context.Context, professionalID int64, pending *pendingSet, ids map[string]int64, booked map[string]struct{}, result *Result) {
	found, err := s.resolveExisting(ctx, professionalID, pending, ids, booked, result)
	if err != nil {
		s.logger.Error("Materialize: existence check failed for professional=%d: %v", professionalID, err)
		result.Degraded += pending.len()
		return
	}
	result.Existing += found

	for attempt := 1; pending.len() > 0 && attempt <= s.insertAttempts; attempt++ {
		created, err := s.slotRepo.CreateBatch(ctx, pending.slots())
		if err == nil {
			for _, slot := range created {
				if slot.ID <= 0 {
					continue
				}
				key := scheduling.InstantKey(slot.StartTime)
				ids[key] = slot.ID
				pending.remove(key)
				result.Inserted++
			}
			break
		}

		if !errors.Is(err, slotRepo.ErrDuplicateSlot) {
			s.logger.Error("Materialize: insert of %d slots failed for professional=%d: %v", pending.len(), professionalID, err)
			break
		}

		s.logger.Warn("Materialize: concurrent insert detected for professional=%d (attempt %d)", professionalID, attempt)
		recovered, err := s.resolveExisting(ctx, professionalID, pending, ids, booked, result)
		if err != nil {
			s.logger.Error("Materialize: re-read after conflict failed for professional=%d: %v", professionalID, err)
			break
		}
		result.DuplicateRecovered += recovered
	}

	if pending.len() > 0 {
		s.logger.Warn("Materialize: %d slots left virtual for professional=%d", pending.len(), professionalID)
		result.Degraded += pending.len()
	}
}

// resolveExisting забирает из pending слоты, строки которых уже есть в хранилище.
// Доступные строки дают ID, занятые попадают в booked.
func (s *Service) resolveExisting(
	ctx context.Context,
	professionalID int64,
	pending *pendingSet,
	ids map[string]int64,
	booked map[string]struct{},
	result *Result,
) (int, error) {
	rows, err := s.slotRepo.GetByProfessionalAndStarts(ctx, professionalID, pending.starts())
	if err != nil {
		return 0, err
	}

	found := 0
	for _, row := range rows {
		key := scheduling.InstantKey(row.StartTime)
		if !pending.has(key) {
			continue
		}
		if !row.IsAvailable {
			s.logger.Warn("Materialize: slot id=%d at %s was booked concurrently for professional=%d, window dropped",
				row.ID, key, professionalID)
			booked[key] = struct{}{}
			pending.remove(key)
			result.Booked++
			continue
		}
		ids[key] = row.ID
		pending.remove(key)
		found++
	}
	return found, nil
}

func (s *Service) record(r Result) {
	if s.metrics == nil {
		return
	}
	s.metrics.AddMaterialized(metrics.MaterializeMatched, r.Matched)
	s.metrics.AddMaterialized(metrics.MaterializeExisting, r.Existing)
	s.metrics.AddMaterialized(metrics.MaterializeInserted, r.Inserted)
	s.metrics.AddMaterialized(metrics.MaterializeDuplicateRecovered, r.DuplicateRecovered)
	s.metrics.AddMaterialized(metrics.MaterializeDegraded, r.Degraded)
	s.metrics.AddMaterialized(metrics.MaterializeBooked, r.Booked)
}

// refEnd конец i-го слота окна: начало следующего слота или конец окна
func refEnd(w domain.Window, i int) time.Time {
	if i+1 < len(w.SlotRefs) {
		if next, ok := w.SlotRefs[i+1].Instant(); ok {
			return next
		}
	}
	return w.EndTime
}

func cloneWindows(windows []domain.Window) []domain.Window {
	out := make([]domain.Window, len(windows))
	for i, w := range windows {
		out[i] = w
		out[i].SlotRefs = append([]domain.SlotRef(nil), w.SlotRefs...)
	}
	return out
}

// pendingSet слоты, ожидающие ID, в порядке первого появления
type pendingSet struct {
	byKey map[string]*domain.BaseSlot
	order []string
}

func newPendingSet() *pendingSet {
	return &pendingSet{byKey: make(map[string]*domain.BaseSlot)}
}

func (p *pendingSet) add(key string, slot *domain.BaseSlot) {
	if _, ok := p.byKey[key]; ok {
		return
	}
	p.byKey[key] = slot
	p.order = append(p.order, key)
}

func (p *pendingSet) has(key string) bool {
	_, ok := p.byKey[key]
	return ok
}

func (p *pendingSet) remove(key string) {
	delete(p.byKey, key)
}

func (p *pendingSet) len() int {
	return len(p.byKey)
}

func (p *pendingSet) slots() []*domain.BaseSlot {
	out := make([]*domain.BaseSlot, 0, len(p.byKey))
	for _, key := range p.order {
		if slot, ok := p.byKey[key]; ok {
			out = append(out, slot)
		}
	}
	return out
}

func (p *pendingSet) starts() []time.Time {
	out := make([]time.Time, 0, len(p.byKey))
	for _, key := range p.order {
		if slot, ok := p.byKey[key]; ok {
			out = append(out, slot.StartTime)
		}
	}
	return out
}
