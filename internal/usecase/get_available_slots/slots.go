package get_available_slots

import (
	"time"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/internal/integrations/showroomservice"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// scheduleForDate возвращает расписание шоурума на день недели даты
func scheduleForDate(showroom *showroomservice.Showroom, date time.Time) showroomservice.DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return showroom.WorkingHours.Monday
	case time.Tuesday:
		return showroom.WorkingHours.Tuesday
	case time.Wednesday:
		return showroom.WorkingHours.Wednesday
	case time.Thursday:
		return showroom.WorkingHours.Thursday
	case time.Friday:
		return showroom.WorkingHours.Friday
	case time.Saturday:
		return showroom.WorkingHours.Saturday
	default:
		return showroom.WorkingHours.Sunday
	}
}

// generateTimeSlots детерминированно генерирует сетку слотов рабочего дня.
// Старты идут с шагом duration+buffer от открытия; слот попадает в сетку,
// только если целиком (вместе с длительностью) умещается до закрытия.
// Пример: 09:00-18:00, 30/15 -> 09:00, 09:45, ..., 17:15.
func generateTimeSlots(openTime, closeTime types.TimeString, slotDurationMin, bufferMin int) ([]domain.TimeSlot, error) {
	slots := make([]domain.TimeSlot, 0)
	step := slotDurationMin + bufferMin

	for start := openTime; ; {
		end, err := start.AddMinutes(slotDurationMin)
		if err != nil {
			// Сетка уперлась в конец суток
			break
		}

		if end.IsAfter(closeTime) {
			break
		}

		slots = append(slots, domain.TimeSlot{
			StartTime: start,
			EndTime:   end,
			Status:    domain.SlotAvailable,
		})

		next, err := start.AddMinutes(step)
		if err != nil {
			break
		}
		start = next
	}

	return slots, nil
}

// classifySlots накладывает на сгенерированную сетку занятость: активные
// бронирования, живые холды и покрытие персоналом.
//
// Порядок проверок фиксирован: персонал -> бронирования -> холды. Слот без
// покрытия персоналом исключается из выдачи вовсе (его нельзя ни показать
// занятым, ни предложить). Фильтр персонала применяется, только если на дату
// заявлен хотя бы один сотрудник: шоурум без графика персонала продолжает
// продавать слоты.
func classifySlots(
	slots []domain.TimeSlot,
	bookings []*domain.Booking,
	holds map[types.TimeString]time.Time,
	staff []domain.StaffWindow,
) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0, len(slots))

	for _, slot := range slots {
		if len(staff) > 0 && !slotCovered(slot, staff) {
			continue
		}

		if slotBooked(slot, bookings) {
			slot.Status = domain.SlotBooked
			result = append(result, slot)
			continue
		}

		if expiresAt, ok := holds[slot.StartTime]; ok {
			slot.Status = domain.SlotHeld
			expiry := expiresAt
			slot.HoldExpiresAt = &expiry
			result = append(result, slot)
			continue
		}

		slot.Status = domain.SlotAvailable
		result = append(result, slot)
	}

	return result
}

func slotCovered(slot domain.TimeSlot, staff []domain.StaffWindow) bool {
	for i := range staff {
		if staff[i].Covers(slot.StartTime, slot.EndTime) {
			return true
		}
	}
	return false
}

func slotBooked(slot domain.TimeSlot, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.OccupiesSlot(slot.StartTime, slot.EndTime) {
			return true
		}
	}
	return false
}
