package get_available_slots

import (
	"time"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	usecase "github.com/m04kA/DTS-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse представление слота в API. Available дублирует статус
// плоским флагом для клиентов, которым не нужна детализация.
type SlotResponse struct {
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	Available     bool       `json:"available"`
	Status        string     `json:"status"`
	HoldExpiresAt *time.Time `json:"holdExpiresAt,omitempty"`
}

// Response тело ответа со списком слотов
type Response struct {
	ShowroomID int64          `json:"showroomId"`
	Date       string         `json:"date"`
	ModelID    *int64         `json:"modelId,omitempty"`
	Slots      []SlotResponse `json:"slots"`
}

func toResponse(result *usecase.Response) Response {
	slots := make([]SlotResponse, 0, len(result.Slots))
	for _, slot := range result.Slots {
		slots = append(slots, SlotResponse{
			StartTime:     slot.StartTime.String(),
			EndTime:       slot.EndTime.String(),
			Available:     slot.Status == domain.SlotAvailable,
			Status:        string(slot.Status),
			HoldExpiresAt: slot.HoldExpiresAt,
		})
	}

	return Response{
		ShowroomID: result.ShowroomID,
		Date:       result.Date.Format(domain.DateFormat),
		ModelID:    result.ModelID,
		Slots:      slots,
	}
}
