package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/internal/integrations/showroomservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/staffservice"
	"github.com/m04kA/DTS-BookingService/pkg/ptr"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
	gotDate  *time.Time
}

func (s *stubBookingRepo) GetByShowroomWithFilter(_ context.Context, filter domain.ShowroomBookingsFilter) ([]*domain.Booking, error) {
	s.gotDate = filter.Date
	return s.bookings, s.err
}

type stubShowroomClient struct {
	showroom *showroomservice.Showroom
	err      error
}

func (s *stubShowroomClient) GetShowroom(_ context.Context, _ int64) (*showroomservice.Showroom, error) {
	return s.showroom, s.err
}

type stubStaffClient struct {
	staff []staffservice.StaffAvailability
	err   error
}

func (s *stubStaffClient) GetAvailableStaff(_ context.Context, _ int64, _ time.Time) ([]staffservice.StaffAvailability, error) {
	return s.staff, s.err
}

type stubHoldManager struct {
	holds map[types.TimeString]time.Time
	err   error
}

func (s *stubHoldManager) HoldsForDay(_ context.Context, _ int64, _ time.Time, _ []types.TimeString) (map[types.TimeString]time.Time, error) {
	return s.holds, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// wednesday возвращает дату, выпадающую на среду
func wednesday() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func openShowroom() *showroomservice.Showroom {
	day := showroomservice.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("09:00"),
		CloseTime: ptr.Ptr("18:00"),
	}
	return &showroomservice.Showroom{
		ID:   1,
		Name: "Центральный",
		WorkingHours: showroomservice.WeeklySchedule{
			Monday:    day,
			Tuesday:   day,
			Wednesday: day,
			Thursday:  day,
			Friday:    day,
			Saturday:  showroomservice.DaySchedule{IsOpen: false},
			Sunday:    showroomservice.DaySchedule{IsOpen: false},
		},
	}
}

func newTestUsecase(repo *stubBookingRepo, showroom *stubShowroomClient, staff *stubStaffClient, holdsMgr *stubHoldManager) *Usecase {
	return NewUsecase(repo, showroom, staff, holdsMgr, SlotConfig{DurationMinutes: 30, BufferMinutes: 15}, nopLogger{})
}

func TestUsecase_Run(t *testing.T) {
	t.Run("full grid for empty day", func(t *testing.T) {
		uc := newTestUsecase(&stubBookingRepo{}, &stubShowroomClient{showroom: openShowroom()}, &stubStaffClient{}, &stubHoldManager{})

		resp, err := uc.Run(context.Background(), Request{ShowroomID: 1, Date: wednesday()})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 12)
		for _, slot := range resp.Slots {
			assert.Equal(t, domain.SlotAvailable, slot.Status)
		}
	})

	t.Run("closed day yields empty list", func(t *testing.T) {
		uc := newTestUsecase(&stubBookingRepo{}, &stubShowroomClient{showroom: openShowroom()}, &stubStaffClient{}, &stubHoldManager{})

		saturday := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Run(context.Background(), Request{ShowroomID: 1, Date: saturday})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("showroom not found", func(t *testing.T) {
		uc := newTestUsecase(&stubBookingRepo{}, &stubShowroomClient{err: showroomservice.ErrShowroomNotFound}, &stubStaffClient{}, &stubHoldManager{})

		_, err := uc.Run(context.Background(), Request{ShowroomID: 99, Date: wednesday()})
		assert.ErrorIs(t, err, ErrShowroomNotFound)
	})

	t.Run("booked and held slots are classified", func(t *testing.T) {
		repo := &stubBookingRepo{bookings: []*domain.Booking{
			{Status: domain.StatusConfirmed, StartTime: "09:00", EndTime: "09:30"},
		}}
		holdExpiry := time.Now().Add(5 * time.Minute)
		holdsMgr := &stubHoldManager{holds: map[types.TimeString]time.Time{"09:45": holdExpiry}}

		uc := newTestUsecase(repo, &stubShowroomClient{showroom: openShowroom()}, &stubStaffClient{}, holdsMgr)

		resp, err := uc.Run(context.Background(), Request{ShowroomID: 1, Date: wednesday()})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 12)
		assert.Equal(t, domain.SlotBooked, resp.Slots[0].Status)
		assert.Equal(t, domain.SlotHeld, resp.Slots[1].Status)
		assert.Equal(t, domain.SlotAvailable, resp.Slots[2].Status)
		require.NotNil(t, repo.gotDate)
	})

	t.Run("staff windows narrow the grid", func(t *testing.T) {
		staff := &stubStaffClient{staff: []staffservice.StaffAvailability{
			{StaffID: 7, AvailableFrom: "10:00", AvailableTo: "14:00"},
		}}

		uc := newTestUsecase(&stubBookingRepo{}, &stubShowroomClient{showroom: openShowroom()}, staff, &stubHoldManager{})

		resp, err := uc.Run(context.Background(), Request{ShowroomID: 1, Date: wednesday()})
		require.NoError(t, err)

		// Из сетки 09:00..17:15 окно 10:00-14:00 покрывает 10:30, 11:15, 12:00, 12:45, 13:30
		require.Len(t, resp.Slots, 5)
		assert.Equal(t, types.TimeString("10:30"), resp.Slots[0].StartTime)
		assert.Equal(t, types.TimeString("13:30"), resp.Slots[4].StartTime)
	})

	t.Run("malformed staff window is skipped", func(t *testing.T) {
		staff := &stubStaffClient{staff: []staffservice.StaffAvailability{
			{StaffID: 7, AvailableFrom: "garbage", AvailableTo: "14:00"},
		}}

		uc := newTestUsecase(&stubBookingRepo{}, &stubShowroomClient{showroom: openShowroom()}, staff, &stubHoldManager{})

		resp, err := uc.Run(context.Background(), Request{ShowroomID: 1, Date: wednesday()})
		require.NoError(t, err)

		// Единственное окно битое - остаемся в режиме "персонал не заявлен"
		assert.Len(t, resp.Slots, 12)
	})

	t.Run("validation", func(t *testing.T) {
		uc := newTestUsecase(&stubBookingRepo{}, &stubShowroomClient{showroom: openShowroom()}, &stubStaffClient{}, &stubHoldManager{})

		_, err := uc.Run(context.Background(), Request{ShowroomID: 0, Date: wednesday()})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Run(context.Background(), Request{ShowroomID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Run(context.Background(), Request{ShowroomID: 1, Date: wednesday(), ModelID: ptr.Ptr(int64(-1))})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
