package domain

// Business validation constants
const (
	MinSlotDurationMinutes = 1
	MaxSlotDurationMinutes = 1440 // 24 hours
	MaxGapMinutes          = 1440
	MaxAddonMinutes        = 1440
	MaxSlotsPerBatch       = 5000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Query limits
const (
	MaxListRangeDays = 62
)
