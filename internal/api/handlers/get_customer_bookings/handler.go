package get_customer_bookings

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
	msgInvalidCustomerID = "Некорректный идентификатор клиента"
	msgInvalidStatus     = "Некорректный статус бронирования"
	msgInternalError     = "Внутренняя ошибка сервера"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	GetCustomerBookings(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик истории бронирований клиента
type Handler struct {
	service BookingService
	logger  Logger
}

// New создает новый обработчик
func New(service BookingService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle обрабатывает GET /api/v1/customers/{customerId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, err := handlers.PathInt64(r, "customerId")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidCustomerID)
		return
	}

	status, ok := parseStatus(r.URL.Query().Get("status"))
	if !ok {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidStatus)
		return
	}

	result, err := h.service.GetCustomerBookings(r.Context(), customerID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidCustomerID)
		default:
			h.logger.Error("GetCustomerBookings handler: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Bookings: models.ToBookingResponses(result)})
}

// parseStatus валидирует опциональный фильтр статуса
func parseStatus(raw string) (*domain.BookingStatus, bool) {
	if raw == "" {
		return nil, true
	}

	status := domain.BookingStatus(raw)
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusNoShow, domain.StatusCancelled:
		return &status, true
	default:
		return nil, false
	}
}
