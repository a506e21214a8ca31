package reschedule_booking

// Request тело запроса на перенос бронирования
type Request struct {
	HoldID    string `json:"holdId"`    // Холд на новый слот
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
}
