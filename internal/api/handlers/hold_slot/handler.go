package hold_slot

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/DTS-BookingService/internal/api/handlers"
	"github.com/m04kA/DTS-BookingService/internal/domain"
	usecase "github.com/m04kA/DTS-BookingService/internal/usecase/hold_slot"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// Сообщения об ошибках для пользователя
const (
	msgInvalidShowroomID = "Некорректный идентификатор шоурума"
	msgInvalidBody       = "Некорректное тело запроса"
	msgInvalidDate       = "Некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidStartTime  = "Некорректное время начала, ожидается формат HH:MM"
	msgShowroomNotFound  = "Шоурум не найден"
	msgSlotNotInSchedule = "Запрошенный слот отсутствует в расписании шоурума"
	msgSlotUnavailable   = "Слот уже занят или удерживается другим клиентом"
	msgInternalError     = "Внутренняя ошибка сервера"
)

// Usecase интерфейс usecase для холда слота
type Usecase interface {
	Run(ctx context.Context, req usecase.Request) (*usecase.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик холда слота
type Handler struct {
	usecase Usecase
	logger  Logger
}

// New создает новый обработчик
func New(uc Usecase, logger Logger) *Handler {
	return &Handler{usecase: uc, logger: logger}
}

// Handle обрабатывает POST /api/v1/showrooms/{showroomId}/slot-holds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	showroomID, err := handlers.PathInt64(r, "showroomId")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidShowroomID)
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

	resp, err := h.usecase.Run(r.Context(), usecase.Request{
		ShowroomID: showroomID,
		Date:       date,
		StartTime:  startTime,
	})

	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		case errors.Is(err, usecase.ErrShowroomNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgShowroomNotFound)
		case errors.Is(err, usecase.ErrSlotNotInSchedule):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgSlotNotInSchedule)
		case errors.Is(err, usecase.ErrSlotUnavailable):
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)
		default:
			h.logger.Error("HoldSlot handler: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, toResponse(resp))
}
