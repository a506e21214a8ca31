package get_booking

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/DTS-BookingService/internal/api/handlers"
	"github.com/m04kA/DTS-BookingService/internal/api/handlers/models"
	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/internal/service/bookings"
)

// Сообщения об ошибках для пользователя
const (
	msgInvalidBookingID = "Некорректный идентификатор бронирования"
	msgBookingNotFound  = "Бронирование не найдено"
	msgInternalError    = "Внутренняя ошибка сервера"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик получения бронирования
type Handler struct {
	service BookingService
	logger  Logger
}

// New создает новый обработчик
func New(service BookingService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle обрабатывает GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidBookingID)
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgBookingNotFound)
		default:
			h.logger.Error("GetBooking handler: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.ToBookingResponse(booking))
}
