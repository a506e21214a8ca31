package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/internal/integrations/customerservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/staffservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/vehicleservice"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByShowroomWithFilter внутри транзакции с датой перечитывает
	// занятость дня с блокировкой строк
	GetByShowroomWithFilter(ctx context.Context, filter domain.ShowroomBookingsFilter) ([]*domain.Booking, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// HoldManager интерфейс менеджера холдов слотов
type HoldManager interface {
	ValidateForSlot(ctx context.Context, holdID string, showroomID int64, date time.Time, start types.TimeString) (bool, error)
	Release(ctx context.Context, holdID string) error
}

// SlotLocker интерфейс per-slot мьютекса коммитов
type SlotLocker interface {
	Acquire(ctx context.Context, showroomID int64, date time.Time, start types.TimeString) (string, error)
	Release(ctx context.Context, showroomID int64, date time.Time, start types.TimeString, token string)
}

// CustomerServiceClient интерфейс клиента для CustomerService
type CustomerServiceClient interface {
	GetByID(ctx context.Context, customerID int64) (*customerservice.Customer, error)
	ResolveByPhone(ctx context.Context, phone, name string, email *string) (*customerservice.Customer, error)
}

// VehicleServiceClient интерфейс клиента для VehicleService
type VehicleServiceClient interface {
	FindAvailableUnit(ctx context.Context, showroomID int64, modelID *int64) (*vehicleservice.Unit, error)
	SetStatus(ctx context.Context, unitID int64, status domain.VehicleStatus) error
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetAvailableStaff(ctx context.Context, showroomID int64, date time.Time) ([]staffservice.StaffAvailability, error)
}

// NotifyServiceClient интерфейс клиента для NotificationService
type NotifyServiceClient interface {
	BookingConfirmed(ctx context.Context, event notifyservice.BookingEvent) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
