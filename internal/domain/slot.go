package domain

import (
	"time"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// SlotStatus represents the status of a therapist slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusBlocked   SlotStatus = "blocked"
)

// IsValid returns true if the status is one of the known slot statuses
func (s SlotStatus) IsValid() bool {
	switch s {
	case SlotStatusAvailable, SlotStatusBooked, SlotStatusBlocked:
		return true
	default:
		return false
	}
}

// Slot represents a bookable time slot in a therapist calendar
type Slot struct {
	ID          int64
	TherapistID int64
	SlotDate    time.Time // Дата без времени, локальная зона
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      SlotStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key returns the batch uniqueness key (date, start time)
func (s *Slot) Key() SlotKey {
	return SlotKey{Date: s.SlotDate.Format(DateFormat), StartTime: s.StartTime}
}

// SlotKey identifies a slot within one therapist calendar
type SlotKey struct {
	Date      string
	StartTime types.TimeString
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
