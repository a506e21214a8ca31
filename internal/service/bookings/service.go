package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/DTS-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// Service жизненный цикл бронирования после коммита: завершение, неявка,
// отмена, перенос и чтение истории. Переходы статусов проверяются по
// предикатам доменной модели; запрещенный переход - ErrInvalidTransition.
type Service struct {
	repo          BookingRepository
	holdManager   HoldManager
	vehicleClient VehicleServiceClient
	notifyClient  NotifyServiceClient
	logger        Logger
}

// NewService создает сервис жизненного цикла бронирований
func NewService(
	repo BookingRepository,
	holdManager HoldManager,
	vehicleClient VehicleServiceClient,
	notifyClient NotifyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		repo:          repo,
		holdManager:   holdManager,
		vehicleClient: vehicleClient,
		notifyClient:  notifyClient,
		logger:        logger,
	}
}

// GetByID возвращает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking %d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return result, nil
}

// GetCustomerBookings возвращает историю бронирований клиента,
// опционально отфильтрованную по статусу
func (s *Service) GetCustomerBookings(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customer id must be positive", ErrInvalidInput)
	}

	result, err := s.repo.GetByCustomerID(ctx, customerID, status)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer %d: %v", customerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return result, nil
}

// GetShowroomBookings возвращает бронирования шоурума по фильтру
func (s *Service) GetShowroomBookings(ctx context.Context, filter domain.ShowroomBookingsFilter) ([]*domain.Booking, error) {
	if filter.ShowroomID <= 0 {
		return nil, fmt.Errorf("%w: showroom id must be positive", ErrInvalidInput)
	}

	result, err := s.repo.GetByShowroomWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetShowroomBookings: repository error for showroom %d: %v", filter.ShowroomID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return result, nil
}

// Complete отмечает тест-драйв состоявшимся (CONFIRMED -> COMPLETED)
// и возвращает автомобиль в оборот
func (s *Service) Complete(ctx context.Context, id int64, notes *string) (*domain.Booking, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.CanBeCompleted() {
		s.logger.Warn("Complete: booking %d in status %s cannot be completed", id, current.Status)
		return nil, fmt.Errorf("%w: cannot complete booking in status %s", ErrInvalidTransition, current.Status)
	}

	if notes != nil && len(*notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if err := s.repo.Complete(ctx, id, notes); err != nil {
		s.logger.Error("Complete: repository error for booking %d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.releaseVehicle(ctx, current, "Complete")

	s.logger.Info("Complete: booking %s (id=%d) completed", current.Reference, id)
	return s.GetByID(ctx, id)
}

// NoShow отмечает неявку клиента (CONFIRMED -> NO_SHOW)
// и возвращает автомобиль в оборот
func (s *Service) NoShow(ctx context.Context, id int64) (*domain.Booking, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.CanBeMarkedNoShow() {
		s.logger.Warn("NoShow: booking %d in status %s cannot be marked no-show", id, current.Status)
		return nil, fmt.Errorf("%w: cannot mark no-show for booking in status %s", ErrInvalidTransition, current.Status)
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.StatusNoShow); err != nil {
		s.logger.Error("NoShow: repository error for booking %d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.releaseVehicle(ctx, current, "NoShow")

	s.logger.Info("NoShow: booking %s (id=%d) marked as no-show", current.Reference, id)
	return s.GetByID(ctx, id)
}

// Cancel отменяет бронирование (PENDING/CONFIRMED -> CANCELLED),
// возвращает автомобиль в оборот и уведомляет клиента
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*domain.Booking, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}
	if len(reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason must not exceed %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.CanBeCancelled() {
		s.logger.Warn("Cancel: booking %d in status %s cannot be cancelled", id, current.Status)
		return nil, fmt.Errorf("%w: cannot cancel booking in status %s", ErrInvalidTransition, current.Status)
	}

	if err := s.repo.Cancel(ctx, id, reason); err != nil {
		s.logger.Error("Cancel: repository error for booking %d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.releaseVehicle(ctx, current, "Cancel")

	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.notifyClient.BookingCancelled(ctx, buildEvent(updated)); err != nil {
		s.logger.Warn("Cancel: failed to send cancellation notice for %s: %v", updated.Reference, err)
	}

	s.logger.Info("Cancel: booking %s (id=%d) cancelled: %s", current.Reference, id, reason)
	return updated, nil
}

// Reschedule переносит бронирование на другой слот по живому холду.
// Длительность слота сохраняется, старый слот освобождается самим фактом
// смены даты/времени записи, холд на новый слот снимается после переноса.
func (s *Service) Reschedule(ctx context.Context, id int64, holdID string, newDate time.Time, newStart types.TimeString) (*domain.Booking, error) {
	if strings.TrimSpace(holdID) == "" {
		return nil, fmt.Errorf("%w: holdId is required", ErrInvalidInput)
	}
	if newDate.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := newStart.Validate(); err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.CanBeRescheduled() {
		s.logger.Warn("Reschedule: booking %d in status %s cannot be rescheduled", id, current.Status)
		return nil, fmt.Errorf("%w: cannot reschedule booking in status %s", ErrInvalidTransition, current.Status)
	}

	ok, err := s.holdManager.ValidateForSlot(ctx, holdID, current.ShowroomID, newDate, newStart)
	if err != nil {
		s.logger.Error("Reschedule: hold validation error for %s: %v", holdID, err)
		return nil, fmt.Errorf("%w: validate hold: %v", ErrInternal, err)
	}
	if !ok {
		s.logger.Warn("Reschedule: hold %s expired or mismatched for booking %d", holdID, id)
		return nil, ErrHoldExpired
	}

	startMin, err := current.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed start time in booking %d: %v", ErrInternal, id, err)
	}
	endMin, err := current.EndTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed end time in booking %d: %v", ErrInternal, id, err)
	}

	newEnd, err := newStart.AddMinutes(endMin - startMin)
	if err != nil {
		return nil, fmt.Errorf("%w: slot end time overflows the day", ErrInvalidInput)
	}

	if err := s.repo.UpdateSchedule(ctx, id, newDate, newStart, newEnd); err != nil {
		s.logger.Error("Reschedule: repository error for booking %d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := s.holdManager.Release(ctx, holdID); err != nil {
		s.logger.Warn("Reschedule: failed to release hold %s: %v", holdID, err)
	}

	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.notifyClient.BookingRescheduled(ctx, buildEvent(updated)); err != nil {
		s.logger.Warn("Reschedule: failed to send reschedule notice for %s: %v", updated.Reference, err)
	}

	s.logger.Info("Reschedule: booking %s (id=%d) moved to %s %s", current.Reference, id,
		newDate.Format(domain.DateFormat), newStart)
	return updated, nil
}

// releaseVehicle возвращает автомобиль в статус AVAILABLE.
// Ошибка не откатывает переход бронирования, расхождение чинится
// на стороне VehicleService по журналу.
func (s *Service) releaseVehicle(ctx context.Context, b *domain.Booking, op string) {
	if err := s.vehicleClient.SetStatus(ctx, b.VehicleUnitID, domain.VehicleAvailable); err != nil {
		s.logger.Error("%s: failed to release vehicle %d for booking %s: %v", op, b.VehicleUnitID, b.Reference, err)
	}
}

func buildEvent(b *domain.Booking) notifyservice.BookingEvent {
	return notifyservice.BookingEvent{
		BookingID:     b.ID,
		Reference:     b.Reference,
		ShowroomID:    b.ShowroomID,
		CustomerID:    b.CustomerID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		ModelName:     b.ModelName,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		Status:        string(b.Status),
	}
}
