package bookings

import (
	"context"
	"time"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByShowroomWithFilter(ctx context.Context, filter domain.ShowroomBookingsFilter) ([]*domain.Booking, error)
	Complete(ctx context.Context, id int64, notes *string) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
	UpdateSchedule(ctx context.Context, id int64, date time.Time, start, end types.TimeString) error
}

// HoldManager интерфейс менеджера холдов слотов.
// Нужен переносу: новый слот занимается только по живому холду.
type HoldManager interface {
	ValidateForSlot(ctx context.Context, holdID string, showroomID int64, date time.Time, start types.TimeString) (bool, error)
	Release(ctx context.Context, holdID string) error
}

// VehicleServiceClient интерфейс клиента для VehicleService
type VehicleServiceClient interface {
	SetStatus(ctx context.Context, unitID int64, status domain.VehicleStatus) error
}

// NotifyServiceClient интерфейс клиента для NotificationService
type NotifyServiceClient interface {
	BookingCancelled(ctx context.Context, event notifyservice.BookingEvent) error
	BookingRescheduled(ctx context.Context, event notifyservice.BookingEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
