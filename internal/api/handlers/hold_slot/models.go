package hold_slot

import (
	"time"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	usecase "github.com/m04kA/DTS-BookingService/internal/usecase/hold_slot"
)

// Request тело запроса на холд слота
type Request struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
}

// Response тело ответа с данными холда
type Response struct {
	HoldID     string    `json:"holdId"`
	ShowroomID int64     `json:"showroomId"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

func toResponse(result *usecase.Response) Response {
	return Response{
		HoldID:     result.HoldID,
		ShowroomID: result.ShowroomID,
		Date:       result.Date.Format(domain.DateFormat),
		StartTime:  result.StartTime.String(),
		EndTime:    result.EndTime.String(),
		ExpiresAt:  result.ExpiresAt,
	}
}
