package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/internal/integrations/showroomservice"
	"github.com/m04kA/DTS-BookingService/internal/integrations/staffservice"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// SlotConfig параметры генерации сетки слотов
type SlotConfig struct {
	DurationMinutes int // Длительность тест-драйва
	BufferMinutes   int // Буфер между тест-драйвами (подготовка автомобиля)
}

// Usecase разрешение доступности слотов тест-драйва на дату
type Usecase struct {
	bookingRepo    BookingRepository
	showroomClient ShowroomServiceClient
	staffClient    StaffServiceClient
	holdManager    HoldManager
	slotConfig     SlotConfig
	logger         Logger
}

// NewUsecase создает новый usecase для получения слотов тест-драйва
func NewUsecase(
	bookingRepo BookingRepository,
	showroomClient ShowroomServiceClient,
	staffClient StaffServiceClient,
	holdManager HoldManager,
	slotConfig SlotConfig,
	logger Logger,
) *Usecase {
	if slotConfig.DurationMinutes <= 0 {
		slotConfig.DurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if slotConfig.BufferMinutes < 0 {
		slotConfig.BufferMinutes = domain.DefaultSlotBufferMinutes
	}

	return &Usecase{
		bookingRepo:    bookingRepo,
		showroomClient: showroomClient,
		staffClient:    staffClient,
		holdManager:    holdManager,
		slotConfig:     slotConfig,
		logger:         logger,
	}
}

// Run возвращает слоты тест-драйва шоурума на дату.
//
// Последовательность: расписание шоурума -> генерация сетки -> активные
// бронирования дня -> живые холды -> окна персонала -> классификация.
// Для закрытого дня возвращает пустой список слотов (это не ошибка).
func (u *Usecase) Run(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		u.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	showroom, err := u.showroomClient.GetShowroom(ctx, req.ShowroomID)
	if err != nil {
		if errors.Is(err, showroomservice.ErrShowroomNotFound) {
			u.logger.Warn("GetAvailableSlots: showroom %d not found", req.ShowroomID)
			return nil, ErrShowroomNotFound
		}
		u.logger.Error("GetAvailableSlots: failed to get showroom %d: %v", req.ShowroomID, err)
		return nil, fmt.Errorf("%w: get showroom: %v", ErrInternal, err)
	}

	schedule := scheduleForDate(showroom, req.Date)
	if !schedule.IsOpen || schedule.OpenTime == nil || schedule.CloseTime == nil {
		u.logger.Info("GetAvailableSlots: showroom %d closed on %s", req.ShowroomID, req.Date.Format(domain.DateFormat))
		return u.emptyResponse(req), nil
	}

	openTime, err := types.NewTimeStringFromString(*schedule.OpenTime)
	if err != nil {
		u.logger.Error("GetAvailableSlots: malformed open time %q for showroom %d: %v", *schedule.OpenTime, req.ShowroomID, err)
		return nil, fmt.Errorf("%w: parse open time: %v", ErrInternal, err)
	}
	closeTime, err := types.NewTimeStringFromString(*schedule.CloseTime)
	if err != nil {
		u.logger.Error("GetAvailableSlots: malformed close time %q for showroom %d: %v", *schedule.CloseTime, req.ShowroomID, err)
		return nil, fmt.Errorf("%w: parse close time: %v", ErrInternal, err)
	}

	slots, err := generateTimeSlots(openTime, closeTime, u.slotConfig.DurationMinutes, u.slotConfig.BufferMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: generate slots: %v", ErrInternal, err)
	}
	if len(slots) == 0 {
		return u.emptyResponse(req), nil
	}

	bookings, err := u.bookingRepo.GetByShowroomWithFilter(ctx, domain.ShowroomBookingsFilter{
		ShowroomID: req.ShowroomID,
		Date:       &req.Date,
		ModelID:    req.ModelID,
	})
	if err != nil {
		u.logger.Error("GetAvailableSlots: failed to load bookings for showroom %d: %v", req.ShowroomID, err)
		return nil, fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
	}

	starts := make([]types.TimeString, len(slots))
	for i := range slots {
		starts[i] = slots[i].StartTime
	}

	holdsByStart, err := u.holdManager.HoldsForDay(ctx, req.ShowroomID, req.Date, starts)
	if err != nil {
		u.logger.Error("GetAvailableSlots: failed to load holds for showroom %d: %v", req.ShowroomID, err)
		return nil, fmt.Errorf("%w: load holds: %v", ErrInternal, err)
	}

	staff, err := u.loadStaffWindows(ctx, req)
	if err != nil {
		return nil, err
	}

	classified := classifySlots(slots, bookings, holdsByStart, staff)

	u.logger.Info("GetAvailableSlots: showroom=%d date=%s generated=%d returned=%d",
		req.ShowroomID, req.Date.Format(domain.DateFormat), len(slots), len(classified))

	return &Response{
		ShowroomID: req.ShowroomID,
		Date:       req.Date,
		ModelID:    req.ModelID,
		Slots:      classified,
	}, nil
}

func (u *Usecase) loadStaffWindows(ctx context.Context, req Request) ([]domain.StaffWindow, error) {
	availability, err := u.staffClient.GetAvailableStaff(ctx, req.ShowroomID, req.Date)
	if err != nil {
		u.logger.Error("GetAvailableSlots: failed to load staff for showroom %d: %v", req.ShowroomID, err)
		return nil, fmt.Errorf("%w: load staff: %v", ErrInternal, err)
	}

	windows := make([]domain.StaffWindow, 0, len(availability))
	for _, item := range availability {
		window, err := toStaffWindow(item)
		if err != nil {
			// Битое окно не роняет выдачу, но и не учитывается
			u.logger.Warn("GetAvailableSlots: skipping malformed staff window for staff %d: %v", item.StaffID, err)
			continue
		}
		windows = append(windows, window)
	}

	return windows, nil
}

func toStaffWindow(item staffservice.StaffAvailability) (domain.StaffWindow, error) {
	from, err := types.NewTimeStringFromString(item.AvailableFrom)
	if err != nil {
		return domain.StaffWindow{}, fmt.Errorf("availableFrom: %v", err)
	}
	to, err := types.NewTimeStringFromString(item.AvailableTo)
	if err != nil {
		return domain.StaffWindow{}, fmt.Errorf("availableTo: %v", err)
	}
	return domain.StaffWindow{StaffID: item.StaffID, AvailableFrom: from, AvailableTo: to}, nil
}

func (u *Usecase) emptyResponse(req Request) *Response {
	return &Response{
		ShowroomID: req.ShowroomID,
		Date:       req.Date,
		ModelID:    req.ModelID,
		Slots:      []domain.TimeSlot{},
	}
}
