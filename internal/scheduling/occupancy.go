package scheduling

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type occupiedRange struct {
	start time.Time
	end   time.Time
}

// OccupiedSet занятые моменты начала (канонические ключи InstantKey)
// и занятые интервалы [start, end) недоступных слотов
type OccupiedSet struct {
	starts map[string]struct{}
	ranges []occupiedRange
}

// NewOccupiedSet строит множество из недоступных (забронированных) слотов
func NewOccupiedSet(slots []*domain.BaseSlot) *OccupiedSet {
	set := &OccupiedSet{starts: make(map[string]struct{}, len(slots))}
	for _, s := range slots {
		if s.IsAvailable {
			continue
		}
		set.AddRange(s.StartTime, s.EndTime)
	}
	return set
}

// Add добавляет момент начала в множество
func (s *OccupiedSet) Add(start time.Time) {
	if s.starts == nil {
		s.starts = make(map[string]struct{})
	}
	s.starts[InstantKey(start)] = struct{}{}
}

// AddRange добавляет занятый интервал [start, end). Пустой интервал учитывается только как момент начала.
func (s *OccupiedSet) AddRange(start, end time.Time) {
	s.Add(start)
	if end.After(start) {
		s.ranges = append(s.ranges, occupiedRange{start: start, end: end})
	}
}

// Contains проверяет, занят ли момент начала
func (s *OccupiedSet) Contains(start time.Time) bool {
	if s == nil {
		return false
	}
	_, ok := s.starts[InstantKey(start)]
	return ok
}

// Overlaps проверяет, пересекается ли окно [start, end) с занятым интервалом
// или начинается в занятый момент
func (s *OccupiedSet) Overlaps(start, end time.Time) bool {
	if s == nil {
		return false
	}
	if s.Contains(start) {
		return true
	}
	for _, r := range s.ranges {
		if start.Before(r.end) && r.start.Before(end) {
			return true
		}
	}
	return false
}

// FilterOccupied убирает окна, пересекающиеся с занятыми интервалами
func FilterOccupied(windows []domain.Window, occupied *OccupiedSet) []domain.Window {
	result := make([]domain.Window, 0, len(windows))
	for _, w := range windows {
		if occupied.Overlaps(w.StartTime, w.EndTime) {
			continue
		}
		result = append(result, w)
	}
	return result
}
