package staffservice

// StaffAvailability окно доступности сотрудника на дату.
// На пару (сотрудник, дата) существует не более одного окна.
type StaffAvailability struct {
	StaffID       int64  `json:"staffId"`
	AvailableFrom string `json:"availableFrom"` // "09:00"
	AvailableTo   string `json:"availableTo"`   // "18:00"
}
