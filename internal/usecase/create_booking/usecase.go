package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/internal/integrations/customerservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/vehicleservice"
	"github.com/m04kA/DTS-BookingService/internal/service/slotlocks"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// Usecase коммит бронирования тест-драйва, с холдом или без него.
//
// Порядок шагов фиксирован: холд (если передан) -> клиент -> автомобиль -> менеджер ->
// per-slot лок -> сериализуемая транзакция с перечитыванием дня.
// Все, что до лока, не меняет состояния и безопасно при повторе;
// единственная точка записи - транзакция под локом.
type Usecase struct {
	bookingRepo     BookingRepository
	txManager       TxManager
	holdManager     HoldManager
	slotLocker      SlotLocker
	customerClient  CustomerServiceClient
	vehicleClient   VehicleServiceClient
	staffClient     StaffServiceClient
	notifyClient    NotifyServiceClient
	durationMinutes int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUsecase создает новый usecase для коммита бронирования
func NewUsecase(
	bookingRepo BookingRepository,
	txManager TxManager,
	holdManager HoldManager,
	slotLocker SlotLocker,
	customerClient CustomerServiceClient,
	vehicleClient VehicleServiceClient,
	staffClient StaffServiceClient,
	notifyClient NotifyServiceClient,
	durationMinutes int,
	logger Logger,
) *Usecase {
	if durationMinutes <= 0 {
		durationMinutes = domain.DefaultSlotDurationMinutes
	}

	return &Usecase{
		bookingRepo:     bookingRepo,
		txManager:       txManager,
		holdManager:     holdManager,
		slotLocker:      slotLocker,
		customerClient:  customerClient,
		vehicleClient:   vehicleClient,
		staffClient:     staffClient,
		notifyClient:    notifyClient,
		durationMinutes: durationMinutes,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Run выполняет коммит бронирования
func (u *Usecase) Run(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		u.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	endTime, err := u.resolveEndTime(req)
	if err != nil {
		return nil, err
	}

	// Коммит возможен и без холда, но переданный холд обязан быть живым
	// и указывать ровно на коммитимый слот
	if req.HoldID != "" {
		ok, err := u.holdManager.ValidateForSlot(ctx, req.HoldID, req.ShowroomID, req.Date, req.StartTime)
		if err != nil {
			u.logger.Error("CreateBooking: hold validation error for %s: %v", req.HoldID, err)
			return nil, fmt.Errorf("%w: validate hold: %v", ErrInternal, err)
		}
		if !ok {
			u.logger.Warn("CreateBooking: hold %s expired or mismatched", req.HoldID)
			return nil, ErrHoldExpired
		}
	}

	customer, err := u.resolveCustomer(ctx, req.Customer)
	if err != nil {
		return nil, err
	}

	unit, err := u.vehicleClient.FindAvailableUnit(ctx, req.ShowroomID, req.ModelID)
	if err != nil {
		if errors.Is(err, vehicleservice.ErrNoUnitAvailable) {
			u.logger.Warn("CreateBooking: no vehicle available in showroom %d (model=%v)", req.ShowroomID, req.ModelID)
			return nil, ErrNoVehicleAvailable
		}
		u.logger.Error("CreateBooking: vehicle lookup failed: %v", err)
		return nil, fmt.Errorf("%w: find vehicle: %v", ErrInternal, err)
	}

	staffID := u.pickStaff(ctx, req, endTime)

	// Per-slot лок сериализует коммиты одного слота между инстансами
	lockToken, err := u.slotLocker.Acquire(ctx, req.ShowroomID, req.Date, req.StartTime)
	if err != nil {
		if errors.Is(err, slotlocks.ErrSlotLocked) {
			return nil, ErrSlotBeingBooked
		}
		u.logger.Error("CreateBooking: failed to acquire slot lock: %v", err)
		return nil, fmt.Errorf("%w: acquire slot lock: %v", ErrInternal, err)
	}
	defer u.slotLocker.Release(ctx, req.ShowroomID, req.Date, req.StartTime, lockToken)

	booking := &domain.Booking{
		Reference:     generateReference(u.timeProvider.Now()),
		ShowroomID:    req.ShowroomID,
		VehicleUnitID: unit.ID,
		ModelID:       unit.ModelID,
		CustomerID:    customer.ID,
		StaffID:       staffID,
		BookingDate:   req.Date,
		StartTime:     req.StartTime,
		EndTime:       endTime,
		Status:        domain.StatusConfirmed,
		Source:        req.Source,
		ModelName:     unit.ModelName,
		VehicleVIN:    unit.VIN,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		Notes:         req.Notes,
	}

	err = u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Перечитываем занятость дня с блокировкой строк: лок в Redis
		// защищает от конкурентов на том же слоте, FOR UPDATE - от
		// коммитов соседних слотов того же дня и от истекшего лока
		dayBookings, err := u.bookingRepo.GetByShowroomWithFilter(txCtx, domain.ShowroomBookingsFilter{
			ShowroomID: req.ShowroomID,
			Date:       &req.Date,
		})
		if err != nil {
			return fmt.Errorf("reread day bookings: %w", err)
		}

		for _, existing := range dayBookings {
			if existing.OccupiesSlot(req.StartTime, endTime) {
				return ErrSlotUnavailable
			}
		}

		if _, err := u.bookingRepo.Create(txCtx, booking); err != nil {
			return fmt.Errorf("persist booking: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			u.logger.Warn("CreateBooking: slot %s already booked for showroom %d on %s",
				req.StartTime, req.ShowroomID, req.Date.Format(domain.DateFormat))
			return nil, ErrSlotUnavailable
		}
		u.logger.Error("CreateBooking: commit transaction failed: %v", err)
		return nil, fmt.Errorf("%w: commit transaction: %v", ErrInternal, err)
	}

	u.finalize(ctx, req, booking)

	u.logger.Info("CreateBooking: booking %s (id=%d) confirmed for showroom=%d date=%s start=%s",
		booking.Reference, booking.ID, req.ShowroomID, req.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{Booking: booking}, nil
}

// resolveEndTime определяет время окончания: явное из запроса либо
// стандартная длительность от начала слота
func (u *Usecase) resolveEndTime(req Request) (types.TimeString, error) {
	if req.EndTime != nil {
		return *req.EndTime, nil
	}

	endTime, err := req.StartTime.AddMinutes(u.durationMinutes)
	if err != nil {
		return "", fmt.Errorf("%w: slot end time overflows the day", ErrInvalidInput)
	}
	return endTime, nil
}

// resolveCustomer определяет клиента: по ID либо поиском/созданием по телефону
func (u *Usecase) resolveCustomer(ctx context.Context, data CustomerData) (*customerservice.Customer, error) {
	if data.CustomerID != nil {
		customer, err := u.customerClient.GetByID(ctx, *data.CustomerID)
		if err != nil {
			if errors.Is(err, customerservice.ErrCustomerNotFound) {
				u.logger.Warn("CreateBooking: customer %d not found", *data.CustomerID)
				return nil, ErrCustomerNotFound
			}
			u.logger.Error("CreateBooking: customer lookup failed: %v", err)
			return nil, fmt.Errorf("%w: get customer: %v", ErrInternal, err)
		}
		return customer, nil
	}

	customer, err := u.customerClient.ResolveByPhone(ctx, *data.Phone, *data.Name, data.Email)
	if err != nil {
		u.logger.Error("CreateBooking: customer resolve failed: %v", err)
		return nil, fmt.Errorf("%w: resolve customer: %v", ErrInternal, err)
	}
	return customer, nil
}

// pickStaff выбирает менеджера, окно которого покрывает слот.
// Закрепление менеджера best-effort: при недоступности StaffService или
// отсутствии подходящего окна бронирование создается без менеджера.
func (u *Usecase) pickStaff(ctx context.Context, req Request, endTime types.TimeString) *int64 {
	availability, err := u.staffClient.GetAvailableStaff(ctx, req.ShowroomID, req.Date)
	if err != nil {
		u.logger.Warn("CreateBooking: staff lookup failed, booking without assigned staff: %v", err)
		return nil
	}

	for _, item := range availability {
		from, err := types.NewTimeStringFromString(item.AvailableFrom)
		if err != nil {
			continue
		}
		to, err := types.NewTimeStringFromString(item.AvailableTo)
		if err != nil {
			continue
		}

		window := domain.StaffWindow{StaffID: item.StaffID, AvailableFrom: from, AvailableTo: to}
		if window.Covers(req.StartTime, endTime) {
			staffID := item.StaffID
			return &staffID
		}
	}

	return nil
}

// finalize выполняет пост-коммитные шаги. Бронирование уже записано:
// любая ошибка здесь логируется, но не откатывает коммит.
func (u *Usecase) finalize(ctx context.Context, req Request, booking *domain.Booking) {
	// Бронирование уже CONFIRMED: автомобиль обязан уйти в RESERVED.
	// Одна повторная попытка под еще удерживаемым локом слота; после нее
	// расхождение статуса фиксируется в логе и разбирается оператором.
	if err := u.vehicleClient.SetStatus(ctx, booking.VehicleUnitID, domain.VehicleReserved); err != nil {
		u.logger.Warn("CreateBooking: failed to reserve vehicle %d for booking %s, retrying: %v",
			booking.VehicleUnitID, booking.Reference, err)
		if err := u.vehicleClient.SetStatus(ctx, booking.VehicleUnitID, domain.VehicleReserved); err != nil {
			u.logger.Error("CreateBooking: vehicle %d left AVAILABLE for confirmed booking %s: %v",
				booking.VehicleUnitID, booking.Reference, err)
		}
	}

	if req.HoldID != "" {
		if err := u.holdManager.Release(ctx, req.HoldID); err != nil {
			// Холд доживет до своего TTL, занятость слота уже видна из БД
			u.logger.Warn("CreateBooking: failed to release hold %s: %v", req.HoldID, err)
		}
	}

	if err := u.notifyClient.BookingConfirmed(ctx, buildEvent(booking)); err != nil {
		u.logger.Warn("CreateBooking: failed to send confirmation for %s: %v", booking.Reference, err)
	}
}

func buildEvent(booking *domain.Booking) notifyservice.BookingEvent {
	return notifyservice.BookingEvent{
		BookingID:     booking.ID,
		Reference:     booking.Reference,
		ShowroomID:    booking.ShowroomID,
		CustomerID:    booking.CustomerID,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		ModelName:     booking.ModelName,
		BookingDate:   booking.BookingDate.Format(domain.DateFormat),
		StartTime:     booking.StartTime.String(),
		EndTime:       booking.EndTime.String(),
		Status:        string(booking.Status),
	}
}
