package hold_slot

import (
	"time"

	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// Request модель запроса на холд слота
type Request struct {
	ShowroomID int64            // ID шоурума
	Date       time.Time        // Дата слота
	StartTime  types.TimeString // Время начала слота
}

// Response модель ответа с данными холда
type Response struct {
	HoldID     string           // Идентификатор холда для последующего коммита
	ShowroomID int64            // ID шоурума
	Date       time.Time        // Дата слота
	StartTime  types.TimeString // Время начала слота
	EndTime    types.TimeString // Время окончания слота
	ExpiresAt  time.Time        // Момент истечения холда
}
