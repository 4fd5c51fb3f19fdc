package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BuilderParams параметры сборки окон из базовых слотов
type BuilderParams struct {
	DurationMinutes int              // длительность услуги
	SlotStepMinutes int              // размер базового слота
	Now             time.Time        // текущее время
	ClosingTime     types.TimeString // время закрытия (локальное)
	Location        *time.Location   // часовой пояс, в котором действуют правила
	MinLeadMinutes  int              // минимальное время до начала окна
}

// BuildWindows собирает окна длительности услуги из подряд идущих доступных базовых слотов.
//
// Скользящее окно позиционное: берутся needed = ceil(duration/step) соседних элементов
// отсортированного списка. Окно отклоняется, если:
//   - хотя бы один слот недоступен;
//   - соседние слоты отстоят друг от друга не ровно на step (по локальному времени);
//   - начало окна нарушает минимальное время до записи;
//   - конец окна позже времени закрытия в день начала.
//
// Пересекающиеся окна не отбрасываются, выбор непересекающегося подмножества за вызывающим.
func BuildWindows(slots []domain.BaseSlot, p BuilderParams) []domain.Window {
	if p.DurationMinutes <= 0 || p.SlotStepMinutes <= 0 || len(slots) == 0 {
		return []domain.Window{}
	}

	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}

	sorted := make([]domain.BaseSlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	needed := (p.DurationMinutes + p.SlotStepMinutes - 1) / p.SlotStepMinutes
	step := time.Duration(p.SlotStepMinutes) * time.Minute

	windows := make([]domain.Window, 0)

	for i := 0; i+needed <= len(sorted); i++ {
		covered := sorted[i : i+needed]

		if !allAvailable(covered) {
			continue
		}
		if !contiguous(covered, step, loc) {
			continue
		}

		windowStart := covered[0].StartTime
		windowEnd := covered[len(covered)-1].EndTime

		if !allowedByLeadTime(windowStart, p.Now, p.MinLeadMinutes, p.SlotStepMinutes, loc) {
			continue
		}
		if !allowedByClosingTime(windowStart, windowEnd, p.ClosingTime, loc) {
			continue
		}

		refs := make([]domain.SlotRef, len(covered))
		for j := range covered {
			refs[j] = baseSlotRef(&covered[j])
		}

		windows = append(windows, domain.Window{
			StartTime: windowStart.UTC(),
			EndTime:   windowEnd.UTC(),
			SlotRefs:  refs,
		})
	}

	return windows
}

func allAvailable(slots []domain.BaseSlot) bool {
	for i := range slots {
		if !slots[i].IsAvailable {
			return false
		}
	}
	return true
}

func contiguous(slots []domain.BaseSlot, step time.Duration, loc *time.Location) bool {
	for j := 1; j < len(slots); j++ {
		if wallClockDiff(slots[j-1].StartTime, slots[j].StartTime, loc) != step {
			return false
		}
	}
	return true
}

// baseSlotRef слоты без ID синтезированы в памяти и адресуются по моменту начала
func baseSlotRef(s *domain.BaseSlot) domain.SlotRef {
	if s.ID > 0 {
		return s.Ref()
	}
	return domain.VirtualRef(s.StartTime)
}
