package reschedule_booking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/DTS-BookingService/internal/api/handlers"
	"github.com/m04kA/DTS-BookingService/internal/api/handlers/models"
	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/internal/service/bookings"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// Сообщения об ошибках для пользователя
const (
	msgInvalidBookingID  = "Некорректный идентификатор бронирования"
	msgInvalidBody       = "Некорректное тело запроса"
	msgInvalidDate       = "Некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidStartTime  = "Некорректное время начала, ожидается формат HH:MM"
	msgBookingNotFound   = "Бронирование не найдено"
	msgInvalidTransition = "Перенести можно только подтвержденное бронирование"
	msgHoldExpired       = "Холд на новый слот истек, запросите слот заново"
	msgInternalError     = "Внутренняя ошибка сервера"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	Reschedule(ctx context.Context, id int64, holdID string, newDate time.Time, newStart types.TimeString) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик переноса бронирования
type Handler struct {
	service BookingService
	logger  Logger
}

// New создает новый обработчик
func New(service BookingService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle обрабатывает PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidBookingID)
		return
	}

	var body Request
	if err := handlers.DecodeJSON(r, &body); err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, body.Date)
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(body.StartTime)
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidStartTime)
		return
	}

	booking, err := h.service.Reschedule(r.Context(), bookingID, body.HoldID, date, startTime)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgBookingNotFound)
		case errors.Is(err, bookings.ErrInvalidTransition):
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)
		case errors.Is(err, bookings.ErrHoldExpired):
			handlers.RespondError(w, http.StatusGone, msgHoldExpired)
		default:
			h.logger.Error("RescheduleBooking handler: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.ToBookingResponse(booking))
}
