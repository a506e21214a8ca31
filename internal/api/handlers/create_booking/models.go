package create_booking

import (
	"github.com/m04kA/DTS-BookingService/internal/api/handlers/models"
	usecase "github.com/m04kA/DTS-BookingService/internal/usecase/create_booking"
)

// CustomerData данные клиента в запросе
type CustomerData struct {
	CustomerID *int64  `json:"customerId,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
}

// Request тело запроса на создание бронирования. Холд опционален:
// без него запрос конкурирует за слот на общих основаниях.
type Request struct {
	HoldID     string       `json:"holdId,omitempty"`
	ShowroomID int64        `json:"showroomId"`
	Date       string       `json:"date"`      // "2025-10-15"
	StartTime  string       `json:"startTime"` // "10:00"
	EndTime    *string      `json:"endTime,omitempty"`
	ModelID    *int64       `json:"modelId,omitempty"`
	Customer   CustomerData `json:"customer"`
	Notes      *string      `json:"notes,omitempty"`
	Source     *string      `json:"source,omitempty"`
}

func toResponse(result *usecase.Response) models.BookingResponse {
	return models.ToBookingResponse(result.Booking)
}
