package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// GeneratorParams параметры генерации окон по недельным правилам доступности
type GeneratorParams struct {
	DurationMinutes int              // длительность услуги, шаг между окнами
	SlotStepMinutes int              // сетка для округления минимального времени до записи
	From            time.Time        // начало диапазона (включительно)
	To              time.Time        // конец диапазона (включительно)
	Now             time.Time        // текущее время
	Location        *time.Location   // часовой пояс правил
	ClosingTime     types.TimeString // время закрытия (локальное)
	MinLeadMinutes  int              // минимальное время до начала окна
	Occupied        *OccupiedSet     // занятые слоты специалиста
}

// GenerateWindows генерирует окна длительности услуги напрямую из недельных правил,
// без промежуточных базовых слотов.
//
// Для каждого локального дня от дня From до дня To включительно берутся правила этого дня недели;
// окна идут подряд от начала правила с шагом, равным длительности, пока конец окна
// не выходит за min(конец правила, время закрытия). Окна вне [From, To], нарушающие минимальное
// время до записи или пересекающиеся с занятым слотом, отбрасываются.
//
// Если на день недели приходится несколько правил, учитываются все; окна с совпадающим
// началом выдаются один раз. Результат отсортирован по началу, у каждого окна
// единственная виртуальная ссылка на слот.
func GenerateWindows(rules []*domain.AvailabilityRule, p GeneratorParams) []domain.Window {
	windows := make([]domain.Window, 0)
	if p.DurationMinutes <= 0 || len(rules) == 0 || p.To.Before(p.From) {
		return windows
	}

	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}

	duration := time.Duration(p.DurationMinutes) * time.Minute
	seen := make(map[string]struct{})

	lastDay := StartOfDay(p.To.In(loc))
	for day := StartOfDay(p.From.In(loc)); !day.After(lastDay); day = NextDay(day) {
		closing := p.ClosingTime.On(day, loc)

		for _, rule := range rules {
			if !rule.Matches(day.Weekday()) {
				continue
			}

			cutoff := rule.EndTime.On(day, loc)
			if closing.Before(cutoff) {
				cutoff = closing
			}

			for slotStart := rule.StartTime.On(day, loc); ; slotStart = slotStart.Add(duration) {
				slotEnd := slotStart.Add(duration)
				if slotEnd.After(cutoff) {
					break
				}

				if slotStart.Before(p.From) || slotStart.After(p.To) {
					continue
				}
				if !allowedByLeadTime(slotStart, p.Now, p.MinLeadMinutes, p.SlotStepMinutes, loc) {
					continue
				}
				if p.Occupied.Overlaps(slotStart, slotEnd) {
					continue
				}

				key := InstantKey(slotStart)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				windows = append(windows, domain.Window{
					StartTime: slotStart.UTC(),
					EndTime:   slotEnd.UTC(),
					SlotRefs:  []domain.SlotRef{domain.VirtualRef(slotStart)},
				})
			}
		}
	}

	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].StartTime.Before(windows[j].StartTime)
	})

	return windows
}
