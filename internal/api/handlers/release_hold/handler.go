package release_hold

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/DTS-BookingService/internal/api/handlers"
)

// Сообщения об ошибках для пользователя
const (
	msgInvalidHoldID = "Некорректный идентификатор холда"
	msgInternalError = "Внутренняя ошибка сервера"
)

// HoldManager интерфейс менеджера холдов слотов
type HoldManager interface {
	Release(ctx context.Context, holdID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик снятия холда
type Handler struct {
	holdManager HoldManager
	logger      Logger
}

// New создает новый обработчик
func New(holdManager HoldManager, logger Logger) *Handler {
	return &Handler{holdManager: holdManager, logger: logger}
}

// Handle обрабатывает DELETE /api/v1/slot-holds/{holdId}.
// Снятие идемпотентно: неизвестный или истекший холд тоже отвечает 204.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	holdID := strings.TrimSpace(mux.Vars(r)["holdId"])
	if holdID == "" {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidHoldID)
		return
	}

	if err := h.holdManager.Release(r.Context(), holdID); err != nil {
		h.logger.Error("ReleaseHold handler: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
