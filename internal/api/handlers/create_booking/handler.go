package create_booking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/DTS-BookingService/internal/api/handlers"
	"github.com/m04kA/DTS-BookingService/internal/domain"
	usecase "github.com/m04kA/DTS-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// Сообщения об ошибках для пользователя
const (
	msgInvalidBody        = "Некорректное тело запроса"
	msgInvalidDate        = "Некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidStartTime   = "Некорректное время начала, ожидается формат HH:MM"
	msgInvalidEndTime     = "Некорректное время окончания, ожидается формат HH:MM"
	msgHoldExpired        = "Холд на слот истек, запросите слот заново"
	msgCustomerNotFound   = "Клиент не найден"
	msgNoVehicleAvailable = "Нет свободного автомобиля под запрошенную модель"
	msgSlotBeingBooked    = "Слот уже оформляется другим клиентом, попробуйте позже"
	msgSlotUnavailable    = "Слот уже занят другим бронированием"
	msgInternalError      = "Внутренняя ошибка сервера"
)

// Usecase интерфейс usecase для коммита бронирования
type Usecase interface {
	Run(ctx context.Context, req usecase.Request) (*usecase.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик создания бронирования
type Handler struct {
	usecase Usecase
	logger  Logger
}

// New создает новый обработчик
func New(uc Usecase, logger Logger) *Handler {
	return &Handler{usecase: uc, logger: logger}
}

// Handle обрабатывает POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
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

	var endTime *types.TimeString
	if body.EndTime != nil {
		parsed, err := types.NewTimeStringFromString(*body.EndTime)
		if err != nil {
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidEndTime)
			return
		}
		endTime = &parsed
	}

	resp, err := h.usecase.Run(r.Context(), usecase.Request{
		HoldID:     body.HoldID,
		ShowroomID: body.ShowroomID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		ModelID:    body.ModelID,
		Customer: usecase.CustomerData{
			CustomerID: body.Customer.CustomerID,
			Phone:      body.Customer.Phone,
			Name:       body.Customer.Name,
			Email:      body.Customer.Email,
		},
		Notes:  body.Notes,
		Source: body.Source,
	})

	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		case errors.Is(err, usecase.ErrHoldExpired):
			handlers.RespondError(w, http.StatusGone, msgHoldExpired)
		case errors.Is(err, usecase.ErrCustomerNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgCustomerNotFound)
		case errors.Is(err, usecase.ErrNoVehicleAvailable):
			handlers.RespondError(w, http.StatusConflict, msgNoVehicleAvailable)
		case errors.Is(err, usecase.ErrSlotBeingBooked):
			handlers.RespondError(w, http.StatusConflict, msgSlotBeingBooked)
		case errors.Is(err, usecase.ErrSlotUnavailable):
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)
		default:
			h.logger.Error("CreateBooking handler: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, toResponse(resp))
}
