package holds

import "errors"

var (
	// ErrSlotHeld возвращается, когда слот уже захвачен другим холдом
	ErrSlotHeld = errors.New("holds: slot is already held")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("holds: internal error")
)
