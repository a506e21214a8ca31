package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/internal/integrations/showroomservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/staffservice"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByShowroomWithFilter получает бронирования шоурума на дату
	GetByShowroomWithFilter(ctx context.Context, filter domain.ShowroomBookingsFilter) ([]*domain.Booking, error)
}

// ShowroomServiceClient интерфейс клиента для ShowroomService
type ShowroomServiceClient interface {
	GetShowroom(ctx context.Context, showroomID int64) (*showroomservice.Showroom, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetAvailableStaff(ctx context.Context, showroomID int64, date time.Time) ([]staffservice.StaffAvailability, error)
}

// HoldManager интерфейс менеджера холдов слотов
type HoldManager interface {
	// HoldsForDay возвращает живые холды для набора стартовых времен: start -> expiry
	HoldsForDay(ctx context.Context, showroomID int64, date time.Time, starts []types.TimeString) (map[types.TimeString]time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
