package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrHoldExpired возвращается, когда холд истек, не существует
	// или указывает на другой слот
	ErrHoldExpired = errors.New("create_booking: hold is expired or does not match the slot")

	// ErrCustomerNotFound возвращается, когда клиент по ID не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrNoVehicleAvailable возвращается, когда в шоуруме нет свободного
	// автомобиля под запрошенную модель
	ErrNoVehicleAvailable = errors.New("create_booking: no vehicle available")

	// ErrSlotBeingBooked возвращается, когда коммит того же слота уже идет
	ErrSlotBeingBooked = errors.New("create_booking: slot commit is already in progress")

	// ErrSlotUnavailable возвращается, когда слот уже занят бронированием
	ErrSlotUnavailable = errors.New("create_booking: slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
