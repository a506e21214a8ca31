package get_showroom_bookings

import "github.com/m04kA/DTS-BookingService/internal/api/handlers/models"

// Response тело ответа со списком бронирований шоурума
type Response struct {
	Bookings []models.BookingResponse `json:"bookings"`
}
