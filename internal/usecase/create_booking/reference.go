package create_booking

import (
	"strconv"
	"strings"
	"time"
)

// generateReference строит человекочитаемый номер бронирования вида
// "TD-MFKQ3Z8C1P5S". Наносекундная метка в base36 монотонна в рамках
// процесса; коллизия требует двух коммитов в одну наносекунду и
// дополнительно отсекается уникальным индексом по reference.
func generateReference(now time.Time) string {
	return "TD-" + strings.ToUpper(strconv.FormatInt(now.UnixNano(), 36))
}
