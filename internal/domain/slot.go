package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// VirtualRefPrefix prefix of the wire form of a virtual slot reference
const VirtualRefPrefix = "virtual-"

// ErrInvalidSlotRef is returned when a slot reference cannot be parsed
var ErrInvalidSlotRef = errors.New("invalid slot reference")

// BaseSlot represents a fixed-duration schedulable unit of a professional
type BaseSlot struct {
	ID             int64
	ProfessionalID int64
	ServiceID      *int64 // NULL = slot is not bound to a service
	StartTime      time.Time
	EndTime        time.Time
	IsAvailable    bool
	CreatedAt      time.Time
}

// Ref returns the persisted reference of the slot
func (s *BaseSlot) Ref() SlotRef {
	return PersistedRef(s.ID)
}

// SlotFilter filter for fetching persisted slots
type SlotFilter struct {
	ProfessionalID int64     // required
	From           time.Time // start_time >= From
	To             time.Time // start_time <= To
	IsAvailable    *bool     // nil = any
	ServiceID      *int64    // if set: slots of this service OR slots without a service
}

type slotRefKind uint8

const (
	slotRefVirtual slotRefKind = iota + 1
	slotRefPersisted
)

// SlotRef references either a persisted slot row or a virtual slot identified by its start instant
type SlotRef struct {
	kind    slotRefKind
	id      int64
	instant time.Time
}

// VirtualRef creates a reference to a slot that has no row yet
func VirtualRef(start time.Time) SlotRef {
	return SlotRef{kind: slotRefVirtual, instant: start.UTC()}
}

// PersistedRef creates a reference to a persisted slot row
func PersistedRef(id int64) SlotRef {
	return SlotRef{kind: slotRefPersisted, id: id}
}

// IsVirtual returns true if the reference has no backing row
func (r SlotRef) IsVirtual() bool {
	return r.kind == slotRefVirtual
}

// IsPersisted returns true if the reference points at a persisted row
func (r SlotRef) IsPersisted() bool {
	return r.kind == slotRefPersisted
}

// ID returns the row id of a persisted reference
func (r SlotRef) ID() (int64, bool) {
	return r.id, r.kind == slotRefPersisted
}

// Instant returns the start instant of a virtual reference
func (r SlotRef) Instant() (time.Time, bool) {
	return r.instant, r.kind == slotRefVirtual
}

// String returns the wire form: the numeric id or "virtual-<UTC instant>"
func (r SlotRef) String() string {
	switch r.kind {
	case slotRefPersisted:
		return strconv.FormatInt(r.id, 10)
	case slotRefVirtual:
		return VirtualRefPrefix + r.instant.Format(InstantFormat)
	default:
		return ""
	}
}

// MarshalJSON encodes the reference as a JSON string
func (r SlotRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes the reference from a JSON string
func (r *SlotRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlotRef, err)
	}
	parsed, err := ParseSlotRef(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseSlotRef parses the wire form produced by SlotRef.String
func ParseSlotRef(s string) (SlotRef, error) {
	if rest, ok := strings.CutPrefix(s, VirtualRefPrefix); ok {
		t, err := time.Parse(time.RFC3339Nano, rest)
		if err != nil {
			return SlotRef{}, fmt.Errorf("%w: %q", ErrInvalidSlotRef, s)
		}
		return VirtualRef(t), nil
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return SlotRef{}, fmt.Errorf("%w: %q", ErrInvalidSlotRef, s)
	}
	return PersistedRef(id), nil
}
