package get_customer_bookings

import "github.com/m04kA/DTS-BookingService/internal/api/handlers/models"

// Response тело ответа с историей бронирований клиента
type Response struct {
	Bookings []models.BookingResponse `json:"bookings"`
}
