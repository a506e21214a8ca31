package complete_booking

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
	msgInvalidBookingID  = "Некорректный идентификатор бронирования"
	msgInvalidBody       = "Некорректное тело запроса"
	msgBookingNotFound   = "Бронирование не найдено"
	msgInvalidTransition = "Завершить можно только подтвержденное бронирование"
	msgInternalError     = "Внутренняя ошибка сервера"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	Complete(ctx context.Context, id int64, notes *string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик завершения тест-драйва
type Handler struct {
	service BookingService
	logger  Logger
}

// New создает новый обработчик
func New(service BookingService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle обрабатывает PATCH /api/v1/bookings/{bookingId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidBookingID)
		return
	}

	// Тело опционально: PATCH без тела завершает без заметок
	var body Request
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &body); err != nil {
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
	}

	booking, err := h.service.Complete(r.Context(), bookingID, body.Notes)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgBookingNotFound)
		case errors.Is(err, bookings.ErrInvalidTransition):
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)
		default:
			h.logger.Error("CompleteBooking handler: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.ToBookingResponse(booking))
}
