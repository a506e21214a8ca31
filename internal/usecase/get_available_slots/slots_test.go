package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	t.Run("standard working day", func(t *testing.T) {
		slots, err := generateTimeSlots("09:00", "18:00", 30, 15)
		require.NoError(t, err)

		// Шаг 45 минут: 09:00, 09:45, ..., 17:15
		require.Len(t, slots, 12)
		assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
		assert.Equal(t, types.TimeString("09:30"), slots[0].EndTime)
		assert.Equal(t, types.TimeString("09:45"), slots[1].StartTime)
		assert.Equal(t, types.TimeString("17:15"), slots[11].StartTime)
		assert.Equal(t, types.TimeString("17:45"), slots[11].EndTime)
	})

	t.Run("slot must fit before closing", func(t *testing.T) {
		// 10:00-11:00, 30+15: старты 10:00 и 10:45, но слот 10:45-11:15
		// не умещается до закрытия
		slots, err := generateTimeSlots("10:00", "11:00", 30, 15)
		require.NoError(t, err)

		require.Len(t, slots, 1)
		assert.Equal(t, types.TimeString("10:00"), slots[0].StartTime)
	})

	t.Run("slot ending exactly at close is kept", func(t *testing.T) {
		slots, err := generateTimeSlots("10:00", "11:30", 30, 15)
		require.NoError(t, err)

		// 10:00-10:30 и 10:45-11:15; 11:30-12:00 уже не умещается
		require.Len(t, slots, 2)
		assert.Equal(t, types.TimeString("10:45"), slots[1].StartTime)
	})

	t.Run("zero buffer packs slots back to back", func(t *testing.T) {
		slots, err := generateTimeSlots("09:00", "10:00", 30, 0)
		require.NoError(t, err)

		require.Len(t, slots, 2)
		assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
		assert.Equal(t, types.TimeString("09:30"), slots[1].StartTime)
	})

	t.Run("window shorter than slot yields nothing", func(t *testing.T) {
		slots, err := generateTimeSlots("09:00", "09:15", 30, 15)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("grid does not cross midnight", func(t *testing.T) {
		slots, err := generateTimeSlots("23:00", "23:59", 30, 15)
		require.NoError(t, err)

		require.Len(t, slots, 1)
		assert.Equal(t, types.TimeString("23:00"), slots[0].StartTime)
	})
}

func TestClassifySlots(t *testing.T) {
	grid := []domain.TimeSlot{
		{StartTime: "09:00", EndTime: "09:30"},
		{StartTime: "09:45", EndTime: "10:15"},
		{StartTime: "10:30", EndTime: "11:00"},
		{StartTime: "11:15", EndTime: "11:45"},
	}

	t.Run("bookings and holds are reflected", func(t *testing.T) {
		bookings := []*domain.Booking{
			{Status: domain.StatusConfirmed, StartTime: "09:00", EndTime: "09:30"},
			// Отмененное бронирование слот не блокирует
			{Status: domain.StatusCancelled, StartTime: "10:30", EndTime: "11:00"},
		}
		holdExpiry := time.Date(2025, 10, 15, 10, 5, 0, 0, time.UTC)
		holds := map[types.TimeString]time.Time{"09:45": holdExpiry}

		result := classifySlots(grid, bookings, holds, nil)

		require.Len(t, result, 4)
		assert.Equal(t, domain.SlotBooked, result[0].Status)
		assert.Equal(t, domain.SlotHeld, result[1].Status)
		require.NotNil(t, result[1].HoldExpiresAt)
		assert.Equal(t, holdExpiry, *result[1].HoldExpiresAt)
		assert.Equal(t, domain.SlotAvailable, result[2].Status)
		assert.Equal(t, domain.SlotAvailable, result[3].Status)
	})

	t.Run("slots without staff coverage are dropped", func(t *testing.T) {
		staff := []domain.StaffWindow{
			{StaffID: 7, AvailableFrom: "09:30", AvailableTo: "11:00"},
		}

		result := classifySlots(grid, nil, nil, staff)

		// 09:00 и 11:15 не покрыты окном 09:30-11:00
		require.Len(t, result, 2)
		assert.Equal(t, types.TimeString("09:45"), result[0].StartTime)
		assert.Equal(t, types.TimeString("10:30"), result[1].StartTime)
	})

	t.Run("no staff scheduled keeps all slots", func(t *testing.T) {
		result := classifySlots(grid, nil, nil, nil)
		assert.Len(t, result, 4)
	})

	t.Run("booked slot still shown even without staff coverage check", func(t *testing.T) {
		bookings := []*domain.Booking{
			{Status: domain.StatusConfirmed, StartTime: "09:45", EndTime: "10:15"},
		}
		staff := []domain.StaffWindow{
			{StaffID: 7, AvailableFrom: "09:00", AvailableTo: "12:00"},
		}

		result := classifySlots(grid, bookings, nil, staff)

		require.Len(t, result, 4)
		assert.Equal(t, domain.SlotBooked, result[1].Status)
	})
}
