package complete_booking

// Request тело запроса на завершение тест-драйва
type Request struct {
	Notes *string `json:"notes,omitempty"` // Заметки менеджера по итогам
}
