package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/internal/integrations/customerservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/staffservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/vehicleservice"
	"github.com/m04kA/DTS-BookingService/internal/service/slotlocks"
	"github.com/m04kA/DTS-BookingService/pkg/ptr"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

type stubRepo struct {
	dayBookings []*domain.Booking
	created     *domain.Booking
}

func (s *stubRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 42
	s.created = booking
	return booking, nil
}

func (s *stubRepo) GetByShowroomWithFilter(_ context.Context, _ domain.ShowroomBookingsFilter) ([]*domain.Booking, error) {
	return s.dayBookings, nil
}

// stubTxManager выполняет fn без настоящей транзакции
type stubTxManager struct {
	calls int
}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}

type stubHoldManager struct {
	valid    bool
	released []string
}

func (s *stubHoldManager) ValidateForSlot(_ context.Context, _ string, _ int64, _ time.Time, _ types.TimeString) (bool, error) {
	return s.valid, nil
}

func (s *stubHoldManager) Release(_ context.Context, holdID string) error {
	s.released = append(s.released, holdID)
	return nil
}

type stubLocker struct {
	acquireErr error
	acquired   int
	released   int
}

func (s *stubLocker) Acquire(_ context.Context, _ int64, _ time.Time, _ types.TimeString) (string, error) {
	if s.acquireErr != nil {
		return "", s.acquireErr
	}
	s.acquired++
	return "lock-token", nil
}

func (s *stubLocker) Release(_ context.Context, _ int64, _ time.Time, _ types.TimeString, token string) {
	if token == "lock-token" {
		s.released++
	}
}

type stubCustomerClient struct {
	customer *customerservice.Customer
	getErr   error
}

func (s *stubCustomerClient) GetByID(_ context.Context, _ int64) (*customerservice.Customer, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.customer, nil
}

func (s *stubCustomerClient) ResolveByPhone(_ context.Context, phone, name string, email *string) (*customerservice.Customer, error) {
	return &customerservice.Customer{ID: 77, Name: name, Phone: phone, Email: email}, nil
}

type stubVehicleClient struct {
	unit     *vehicleservice.Unit
	findErr  error
	setErrs  []error // очередь ошибок SetStatus, по одной на вызов
	statuses []domain.VehicleStatus
}

func (s *stubVehicleClient) FindAvailableUnit(_ context.Context, _ int64, _ *int64) (*vehicleservice.Unit, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.unit, nil
}

func (s *stubVehicleClient) SetStatus(_ context.Context, _ int64, status domain.VehicleStatus) error {
	if len(s.setErrs) > 0 {
		err := s.setErrs[0]
		s.setErrs = s.setErrs[1:]
		if err != nil {
			return err
		}
	}
	s.statuses = append(s.statuses, status)
	return nil
}

type stubStaffClient struct {
	staff []staffservice.StaffAvailability
	err   error
}

func (s *stubStaffClient) GetAvailableStaff(_ context.Context, _ int64, _ time.Time) ([]staffservice.StaffAvailability, error) {
	return s.staff, s.err
}

type stubNotifyClient struct {
	confirmed []notifyservice.BookingEvent
	err       error
}

func (s *stubNotifyClient) BookingConfirmed(_ context.Context, event notifyservice.BookingEvent) error {
	s.confirmed = append(s.confirmed, event)
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	repo     *stubRepo
	tx       *stubTxManager
	holds    *stubHoldManager
	locker   *stubLocker
	customer *stubCustomerClient
	vehicle  *stubVehicleClient
	staff    *stubStaffClient
	notify   *stubNotifyClient
}

func newFixture() *fixture {
	return &fixture{
		repo:   &stubRepo{},
		tx:     &stubTxManager{},
		holds:  &stubHoldManager{valid: true},
		locker: &stubLocker{},
		customer: &stubCustomerClient{
			customer: &customerservice.Customer{ID: 5, Name: "Иван Петров", Phone: "+79991234567"},
		},
		vehicle: &stubVehicleClient{
			unit: &vehicleservice.Unit{ID: 11, ModelID: 3, ModelName: "Atlas Pro", VIN: "XTA210990Y2722713", ShowroomID: 1},
		},
		staff:  &stubStaffClient{},
		notify: &stubNotifyClient{},
	}
}

func (f *fixture) usecase() *Usecase {
	return NewUsecase(f.repo, f.tx, f.holds, f.locker, f.customer, f.vehicle, f.staff, f.notify, 30, nopLogger{})
}

func validRequest() Request {
	return Request{
		HoldID:     "hold-1",
		ShowroomID: 1,
		Date:       testDate(),
		StartTime:  "10:00",
		Customer:   CustomerData{CustomerID: ptr.Ptr(int64(5))},
		Source:     ptr.Ptr("web"),
	}
}

func TestUsecase_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path commits a confirmed booking", func(t *testing.T) {
		f := newFixture()
		f.staff.staff = []staffservice.StaffAvailability{
			{StaffID: 9, AvailableFrom: "09:00", AvailableTo: "18:00"},
		}

		resp, err := f.usecase().Run(ctx, validRequest())
		require.NoError(t, err)

		b := resp.Booking
		assert.Equal(t, int64(42), b.ID)
		assert.Equal(t, domain.StatusConfirmed, b.Status)
		assert.Equal(t, types.TimeString("10:30"), b.EndTime)
		assert.Equal(t, int64(11), b.VehicleUnitID)
		assert.Equal(t, "Atlas Pro", b.ModelName)
		assert.Equal(t, "Иван Петров", b.CustomerName)
		require.NotNil(t, b.StaffID)
		assert.Equal(t, int64(9), *b.StaffID)
		assert.Contains(t, b.Reference, "TD-")

		assert.Equal(t, 1, f.tx.calls)
		assert.Equal(t, 1, f.locker.acquired)
		assert.Equal(t, 1, f.locker.released)
		assert.Equal(t, []string{"hold-1"}, f.holds.released)
		assert.Equal(t, []domain.VehicleStatus{domain.VehicleReserved}, f.vehicle.statuses)
		require.Len(t, f.notify.confirmed, 1)
		assert.Equal(t, "CONFIRMED", f.notify.confirmed[0].Status)
	})

	t.Run("commit without hold skips hold validation and release", func(t *testing.T) {
		f := newFixture()
		f.holds.valid = false // не должен даже спрашиваться

		req := validRequest()
		req.HoldID = ""

		resp, err := f.usecase().Run(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
		assert.Empty(t, f.holds.released)
	})

	t.Run("explicit end time overrides the default duration", func(t *testing.T) {
		f := newFixture()

		req := validRequest()
		req.EndTime = ptr.Ptr(types.TimeString("11:00"))

		resp, err := f.usecase().Run(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("11:00"), resp.Booking.EndTime)
	})

	t.Run("expired hold stops the commit before any side effect", func(t *testing.T) {
		f := newFixture()
		f.holds.valid = false

		_, err := f.usecase().Run(ctx, validRequest())
		assert.ErrorIs(t, err, ErrHoldExpired)
		assert.Equal(t, 0, f.tx.calls)
		assert.Empty(t, f.vehicle.statuses)
	})

	t.Run("no vehicle available", func(t *testing.T) {
		f := newFixture()
		f.vehicle.findErr = vehicleservice.ErrNoUnitAvailable

		_, err := f.usecase().Run(ctx, validRequest())
		assert.ErrorIs(t, err, ErrNoVehicleAvailable)
	})

	t.Run("customer not found", func(t *testing.T) {
		f := newFixture()
		f.customer.getErr = customerservice.ErrCustomerNotFound

		_, err := f.usecase().Run(ctx, validRequest())
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("walk-in customer resolved by phone", func(t *testing.T) {
		f := newFixture()

		req := validRequest()
		req.Customer = CustomerData{
			Phone: ptr.Ptr("+79990001122"),
			Name:  ptr.Ptr("Анна Сидорова"),
		}

		resp, err := f.usecase().Run(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(77), resp.Booking.CustomerID)
		assert.Equal(t, "Анна Сидорова", resp.Booking.CustomerName)
	})

	t.Run("concurrent commit on same slot is rejected", func(t *testing.T) {
		f := newFixture()
		f.locker.acquireErr = slotlocks.ErrSlotLocked

		_, err := f.usecase().Run(ctx, validRequest())
		assert.ErrorIs(t, err, ErrSlotBeingBooked)
		assert.Equal(t, 0, f.tx.calls)
	})

	t.Run("day reread finds the slot taken", func(t *testing.T) {
		f := newFixture()
		f.repo.dayBookings = []*domain.Booking{
			{Status: domain.StatusConfirmed, StartTime: "10:00", EndTime: "10:30"},
		}

		_, err := f.usecase().Run(ctx, validRequest())
		assert.ErrorIs(t, err, ErrSlotUnavailable)

		// Лок снят, бронирование не создано, холд не тронут
		assert.Equal(t, 1, f.locker.released)
		assert.Nil(t, f.repo.created)
		assert.Empty(t, f.holds.released)
	})

	t.Run("staff outage does not block the booking", func(t *testing.T) {
		f := newFixture()
		f.staff.err = errors.New("staff service down")

		resp, err := f.usecase().Run(ctx, validRequest())
		require.NoError(t, err)
		assert.Nil(t, resp.Booking.StaffID)
	})

	t.Run("staff window not covering the slot leaves booking unassigned", func(t *testing.T) {
		f := newFixture()
		f.staff.staff = []staffservice.StaffAvailability{
			{StaffID: 9, AvailableFrom: "12:00", AvailableTo: "18:00"},
		}

		resp, err := f.usecase().Run(ctx, validRequest())
		require.NoError(t, err)
		assert.Nil(t, resp.Booking.StaffID)
	})

	t.Run("transient vehicle status failure is retried", func(t *testing.T) {
		f := newFixture()
		f.vehicle.setErrs = []error{errors.New("vehicle service hiccup")}

		_, err := f.usecase().Run(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, []domain.VehicleStatus{domain.VehicleReserved}, f.vehicle.statuses)
	})

	t.Run("persistent vehicle status failure does not fail the commit", func(t *testing.T) {
		f := newFixture()
		f.vehicle.setErrs = []error{
			errors.New("vehicle service down"),
			errors.New("vehicle service down"),
		}

		resp, err := f.usecase().Run(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
		assert.Empty(t, f.vehicle.statuses)
	})

	t.Run("notification failure does not fail the commit", func(t *testing.T) {
		f := newFixture()
		f.notify.err = errors.New("notify down")

		_, err := f.usecase().Run(ctx, validRequest())
		require.NoError(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture()
		uc := f.usecase()

		req := validRequest()
		req.Customer = CustomerData{}
		_, err := uc.Run(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req = validRequest()
		req.EndTime = ptr.Ptr(types.TimeString("09:30"))
		_, err = uc.Run(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req = validRequest()
		req.Customer = CustomerData{Phone: ptr.Ptr("+79990001122")}
		_, err = uc.Run(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGenerateReference(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	ref := generateReference(now)
	assert.Contains(t, ref, "TD-")
	assert.Equal(t, ref, generateReference(now))
	assert.NotEqual(t, ref, generateReference(now.Add(time.Nanosecond)))
}
