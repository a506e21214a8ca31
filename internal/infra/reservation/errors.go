package reservation

import "errors"

var (
	// ErrStore возвращается при ошибках взаимодействия с key-value хранилищем
	ErrStore = errors.New("reservation.store: store error")
)
