package domain

import (
	"time"

	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// SlotStatus классификация временного слота на момент запроса
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotHeld      SlotStatus = "held"
	SlotBooked    SlotStatus = "booked"
)

// TimeSlot слот тест-драйва на конкретную дату в конкретном шоуруме.
// Никогда не хранится как отдельная запись - пересчитывается на каждый запрос.
type TimeSlot struct {
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        SlotStatus
	HoldExpiresAt *time.Time // только для статуса held
}

// IsAvailable returns true if the slot can be held or booked right now
func (s *TimeSlot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// StaffWindow окно доступности сотрудника на дату (не более одного на сотрудника)
type StaffWindow struct {
	StaffID       int64
	AvailableFrom types.TimeString
	AvailableTo   types.TimeString
}

// Covers возвращает true, если окно полностью покрывает интервал [start, end]
func (w *StaffWindow) Covers(start, end types.TimeString) bool {
	return !start.IsBefore(w.AvailableFrom) && !end.IsAfter(w.AvailableTo)
}
