package create_booking

import (
	"time"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// CustomerData данные клиента в запросе. Либо CustomerID существующего
// клиента, либо Phone+Name для поиска/создания по телефону.
type CustomerData struct {
	CustomerID *int64
	Phone      *string
	Name       *string
	Email      *string
}

// Request модель запроса на коммит бронирования
type Request struct {
	HoldID     string            // Активный холд на слот (опционально, "" = коммит без холда)
	ShowroomID int64             // ID шоурума
	Date       time.Time         // Дата слота
	StartTime  types.TimeString  // Время начала слота
	EndTime    *types.TimeString // Время окончания (опционально, по умолчанию start+duration)
	ModelID    *int64            // Желаемая модель (опционально)
	Customer   CustomerData      // Данные клиента
	Notes      *string           // Комментарий клиента
	Source     *string           // Канал бронирования (web, phone, walk-in)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
