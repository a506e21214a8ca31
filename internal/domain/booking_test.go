package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_StatusPredicates(t *testing.T) {
	tests := []struct {
		status        BookingStatus
		active        bool
		canComplete   bool
		canNoShow     bool
		canCancel     bool
		canReschedule bool
	}{
		{status: StatusPending, active: true, canCancel: true},
		{status: StatusConfirmed, active: true, canComplete: true, canNoShow: true, canCancel: true, canReschedule: true},
		{status: StatusCompleted},
		{status: StatusNoShow},
		{status: StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}

			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.canComplete, b.CanBeCompleted())
			assert.Equal(t, tt.canNoShow, b.CanBeMarkedNoShow())
			assert.Equal(t, tt.canCancel, b.CanBeCancelled())
			assert.Equal(t, tt.canReschedule, b.CanBeRescheduled())
		})
	}
}

func TestBooking_OccupiesSlot(t *testing.T) {
	b := &Booking{Status: StatusConfirmed, StartTime: "10:00", EndTime: "10:30"}

	assert.True(t, b.OccupiesSlot("10:00", "10:30"))
	assert.False(t, b.OccupiesSlot("10:00", "11:00"))
	assert.False(t, b.OccupiesSlot("10:30", "11:00"))

	// Отмененное бронирование слот не занимает
	cancelled := &Booking{Status: StatusCancelled, StartTime: "10:00", EndTime: "10:30"}
	assert.False(t, cancelled.OccupiesSlot("10:00", "10:30"))
}

func TestStaffWindow_Covers(t *testing.T) {
	w := &StaffWindow{StaffID: 1, AvailableFrom: "10:00", AvailableTo: "15:00"}

	assert.True(t, w.Covers("10:00", "10:30"))
	assert.True(t, w.Covers("14:30", "15:00"))
	assert.False(t, w.Covers("09:45", "10:15"))
	assert.False(t, w.Covers("14:45", "15:15"))
}
