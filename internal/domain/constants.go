package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultSlotBufferMinutes   = 15
	DefaultHoldTTLMinutes      = 10
	DefaultLockTTLSeconds      = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 240 // 4 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот и автомобиль
// Используется для фильтрации при расчете доступности слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
	StatusCompleted,
}

// ActiveStatuses список статусов, занимающих слот и автомобиль
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
