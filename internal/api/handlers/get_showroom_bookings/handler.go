package get_showroom_bookings

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/DTS-BookingService/internal/api/handlers"
	"github.com/m04kA/DTS-BookingService/internal/api/handlers/models"
	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/internal/service/bookings"
)

// Сообщения об ошибках для пользователя
const (
	msgInvalidShowroomID = "Некорректный идентификатор шоурума"
	msgInvalidDate       = "Некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidModelID    = "Некорректный идентификатор модели"
	msgInvalidStatus     = "Некорректный статус бронирования"
	msgInternalError     = "Внутренняя ошибка сервера"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	GetShowroomBookings(ctx context.Context, filter domain.ShowroomBookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик списка бронирований шоурума (для персонала)
type Handler struct {
	service BookingService
	logger  Logger
}

// New создает новый обработчик
func New(service BookingService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle обрабатывает GET /api/v1/showrooms/{showroomId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	showroomID, err := handlers.PathInt64(r, "showroomId")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidShowroomID)
		return
	}

	filter := domain.ShowroomBookingsFilter{
		ShowroomID:      showroomID,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidDate)
			return
		}
		filter.Date = &date
	}

	filter.ModelID, err = handlers.QueryInt64(r, "modelId")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidModelID)
		return
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		switch status {
		case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusNoShow, domain.StatusCancelled:
			filter.Status = &status
		default:
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidStatus)
			return
		}
	}

	result, err := h.service.GetShowroomBookings(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidShowroomID)
		default:
			h.logger.Error("GetShowroomBookings handler: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Bookings: models.ToBookingResponses(result)})
}
