package vehicleservice

// Unit физический автомобиль в шоуруме
type Unit struct {
	ID         int64  `json:"id"`
	ModelID    int64  `json:"modelId"`
	ModelName  string `json:"modelName"`
	VIN        string `json:"vin"`
	ShowroomID int64  `json:"showroomId"`
	Status     string `json:"status"`
}

// setStatusRequest запрос на смену статуса автомобиля
type setStatusRequest struct {
	Status string `json:"status"`
}
