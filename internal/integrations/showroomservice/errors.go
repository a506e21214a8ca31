package showroomservice

import "errors"

var (
	// ErrShowroomNotFound возвращается, когда шоурум не найден
	ErrShowroomNotFound = errors.New("showroomservice: showroom not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("showroomservice: invalid response")

	// ErrInternal возвращается при ошибках выполнения запроса
	ErrInternal = errors.New("showroomservice: internal error")
)
