package cancel_booking

// Request тело запроса на отмену бронирования
type Request struct {
	Reason string `json:"cancellationReason"` // Причина отмены (обязательна)
}
