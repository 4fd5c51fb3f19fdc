package domain

// Default scheduling values
const (
	DefaultSlotStepMinutes = 15
	DefaultMinLeadMinutes  = 0
	DefaultTimezone        = "America/Sao_Paulo"
	DefaultClosingTime     = "18:00"
	DefaultMaxRangeDays    = 62
)

// Business validation constants
const (
	MinSlotStepMinutes = 1
	MaxSlotStepMinutes = 480   // 8 hours
	MaxLeadMinutes     = 10080 // 1 week
)

// Time format constants
const (
	TimeFormat    = "15:04"                // HH:MM
	DateFormat    = "2006-01-02"           // YYYY-MM-DD
	InstantFormat = "2006-01-02T15:04:05Z" // canonical UTC instant
)
