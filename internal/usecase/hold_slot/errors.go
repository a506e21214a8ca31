package hold_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("hold_slot: invalid input data")

	// ErrShowroomNotFound возвращается, когда шоурум не найден
	ErrShowroomNotFound = errors.New("hold_slot: showroom not found")

	// ErrSlotNotInSchedule возвращается, когда запрошенного слота нет
	// в сетке рабочего дня (закрытый день или время вне сетки)
	ErrSlotNotInSchedule = errors.New("hold_slot: slot is not in the showroom schedule")

	// ErrSlotUnavailable возвращается, когда слот занят бронированием
	// или удерживается другим холдом
	ErrSlotUnavailable = errors.New("hold_slot: slot is unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("hold_slot: internal error")
)
