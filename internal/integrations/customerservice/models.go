package customerservice

// Customer клиент дилерского центра
type Customer struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
}

// resolveRequest запрос на поиск/создание клиента по номеру телефона
type resolveRequest struct {
	Phone string  `json:"phone"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}
