package hold_slot

import (
	"context"
	"time"

	"github.com/m04kA/DTS-BookingService/internal/service/holds"
	"github.com/m04kA/DTS-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// AvailabilityResolver интерфейс резолвера доступности слотов.
// Холд ставится только на слот, который резолвер в этот момент
// отдает как available.
type AvailabilityResolver interface {
	Run(ctx context.Context, req get_available_slots.Request) (*get_available_slots.Response, error)
}

// HoldManager интерфейс менеджера холдов слотов
type HoldManager interface {
	Acquire(ctx context.Context, showroomID int64, date time.Time, start types.TimeString) (*holds.Hold, error)
	Release(ctx context.Context, holdID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
