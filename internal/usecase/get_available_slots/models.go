package get_available_slots

import (
	"time"

	"github.com/m04kA/DTS-BookingService/internal/domain"
)

// Request модель запроса на получение слотов тест-драйва
type Request struct {
	ShowroomID int64     // ID шоурума
	Date       time.Time // Дата для получения слотов (без времени)
	ModelID    *int64    // Фильтр по модели (опционально)
}

// Response модель ответа со списком слотов.
// Список - снимок на момент запроса без изоляции от параллельных коммитов:
// показанный available слот может быть занят микросекундами позже,
// гонка разрешается на этапе коммита, а не здесь.
type Response struct {
	ShowroomID int64             // ID шоурума
	Date       time.Time         // Дата, на которую запрашивались слоты
	ModelID    *int64            // Фильтр по модели, если был
	Slots      []domain.TimeSlot // Слоты в порядке генерации
}
