package notifyservice

// BookingEvent данные бронирования для формирования уведомления
type BookingEvent struct {
	BookingID     int64  `json:"bookingId"`
	Reference     string `json:"reference"`
	ShowroomID    int64  `json:"showroomId"`
	CustomerID    int64  `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	ModelName     string `json:"modelName"`
	BookingDate   string `json:"bookingDate"` // "2025-10-15"
	StartTime     string `json:"startTime"`   // "10:00"
	EndTime       string `json:"endTime"`     // "10:30"
	Status        string `json:"status"`
}
