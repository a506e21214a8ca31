package vehicleservice

import "errors"

var (
	// ErrNoUnitAvailable возвращается, когда нет свободного автомобиля
	// под запрошенную модель в шоуруме
	ErrNoUnitAvailable = errors.New("vehicleservice: no available unit")

	// ErrUnitNotFound возвращается, когда автомобиль не найден
	ErrUnitNotFound = errors.New("vehicleservice: unit not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("vehicleservice: invalid response")

	// ErrInternal возвращается при ошибках выполнения запроса
	ErrInternal = errors.New("vehicleservice: internal error")
)
