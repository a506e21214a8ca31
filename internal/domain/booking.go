package domain

import (
	"time"

	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// BookingStatus represents the status of a test-drive booking
type BookingStatus string

const (
	// StatusPending зарезервирован под будущий асинхронный флоу подтверждения,
	// текущий коммит всегда создает бронирование сразу в StatusConfirmed
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusNoShow    BookingStatus = "NO_SHOW"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a test-drive booking in the system
type Booking struct {
	ID            int64
	Reference     string // человекочитаемый номер ("TD-...")
	ShowroomID    int64
	VehicleUnitID int64
	ModelID       int64
	CustomerID    int64
	StaffID       *int64 // nil = бронирование без закрепленного менеджера
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        BookingStatus
	Source        *string

	// Denormalized data for history
	ModelName     string
	VehicleVIN    string
	CustomerName  string
	CustomerPhone string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time
	CompletedAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot and vehicle
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking can be marked as completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// CanBeMarkedNoShow returns true if the booking can be marked as no-show
func (b *Booking) CanBeMarkedNoShow() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// OccupiesSlot возвращает true, если бронирование занимает ровно указанный слот
func (b *Booking) OccupiesSlot(start, end types.TimeString) bool {
	return b.IsActive() && b.StartTime == start && b.EndTime == end
}

// ShowroomBookingsFilter фильтр для получения бронирований шоурума
type ShowroomBookingsFilter struct {
	ShowroomID      int64      // Обязательный параметр
	Date            *time.Time // Конкретная дата (опционально)
	ModelID         *int64     // Фильтр по модели (опционально)
	Status          *BookingStatus
	IncludeInactive bool // Включать ли завершенные, отмененные и no-show бронирования
}
