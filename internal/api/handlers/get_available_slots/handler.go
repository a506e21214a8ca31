package get_available_slots

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/DTS-BookingService/internal/api/handlers"
	"github.com/m04kA/DTS-BookingService/internal/domain"
	usecase "github.com/m04kA/DTS-BookingService/internal/usecase/get_available_slots"
)

// Сообщения об ошибках для пользователя
const (
	msgInvalidShowroomID = "Некорректный идентификатор шоурума"
	msgInvalidDate       = "Некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidModelID    = "Некорректный идентификатор модели"
	msgInvalidInput      = "Некорректные параметры запроса"
	msgShowroomNotFound  = "Шоурум не найден"
	msgInternalError     = "Внутренняя ошибка сервера"
)

// Usecase интерфейс usecase для получения слотов
type Usecase interface {
	Run(ctx context.Context, req usecase.Request) (*usecase.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик получения слотов тест-драйва
type Handler struct {
	usecase Usecase
	logger  Logger
}

// New создает новый обработчик
func New(uc Usecase, logger Logger) *Handler {
	return &Handler{usecase: uc, logger: logger}
}

// Handle обрабатывает GET /api/v1/showrooms/{showroomId}/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	showroomID, err := handlers.PathInt64(r, "showroomId")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidShowroomID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidDate)
		return
	}

	modelID, err := handlers.QueryInt64(r, "modelId")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidModelID)
		return
	}

	resp, err := h.usecase.Run(r.Context(), usecase.Request{
		ShowroomID: showroomID,
		Date:       date,
		ModelID:    modelID,
	})

	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidInput)
		case errors.Is(err, usecase.ErrShowroomNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgShowroomNotFound)
		default:
			h.logger.Error("GetAvailableSlots handler: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(resp))
}
