package domain

import "time"

// Window represents a bookable time span composed of one or more slots
type Window struct {
	StartTime time.Time // UTC
	EndTime   time.Time // UTC
	SlotRefs  []SlotRef
	Label     string
}

// Duration returns the span of the window
func (w *Window) Duration() time.Duration {
	return w.EndTime.Sub(w.StartTime)
}

// HasVirtualRefs returns true if any of the slots has no backing row
func (w *Window) HasVirtualRefs() bool {
	for _, ref := range w.SlotRefs {
		if ref.IsVirtual() {
			return true
		}
	}
	return false
}
