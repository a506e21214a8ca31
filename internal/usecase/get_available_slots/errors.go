package get_available_slots

import "errors"

var (
	// ErrShowroomNotFound возвращается, когда шоурум не найден
	ErrShowroomNotFound = errors.New("get_available_slots: showroom not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
