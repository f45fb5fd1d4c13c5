package domain

import (
	"time"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// ScheduleTemplate stores the default weekly schedule of a therapist.
// Generation requests fall back to these values for omitted fields.
type ScheduleTemplate struct {
	ID              int64
	TherapistID     int64
	DurationMinutes int
	GapMinutes      int
	AddonMinutes    int
	IncludeAddon    bool
	StartTime       types.TimeString
	EndTime         types.TimeString
	Weekdays        []string // "Mon".."Sun"
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
