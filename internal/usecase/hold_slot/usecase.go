package hold_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/internal/service/holds"
	"github.com/m04kA/DTS-BookingService/internal/usecase/get_available_slots"
)

// Usecase захват провизорного холда на слот тест-драйва
type Usecase struct {
	resolver    AvailabilityResolver
	holdManager HoldManager
	logger      Logger
}

// NewUsecase создает новый usecase для холда слота
func NewUsecase(resolver AvailabilityResolver, holdManager HoldManager, logger Logger) *Usecase {
	return &Usecase{
		resolver:    resolver,
		holdManager: holdManager,
		logger:      logger,
	}
}

// Run захватывает холд на слот. Слот перепроверяется через резолвер
// доступности непосредственно перед захватом: холд нельзя поставить на
// занятый, удерживаемый или отсутствующий в сетке слот. Гонка двух
// одновременных холдов одного слота разрешается атомарным set-if-absent
// в менеджере холдов - проигравший получает ErrSlotUnavailable.
func (u *Usecase) Run(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		u.logger.Warn("HoldSlot: validation failed: %v", err)
		return nil, err
	}

	availability, err := u.resolver.Run(ctx, get_available_slots.Request{
		ShowroomID: req.ShowroomID,
		Date:       req.Date,
	})
	if err != nil {
		if errors.Is(err, get_available_slots.ErrShowroomNotFound) {
			return nil, ErrShowroomNotFound
		}
		if errors.Is(err, get_available_slots.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		u.logger.Error("HoldSlot: failed to resolve availability: %v", err)
		return nil, fmt.Errorf("%w: resolve availability: %v", ErrInternal, err)
	}

	slot, found := findSlot(availability.Slots, req)
	if !found {
		u.logger.Warn("HoldSlot: slot %s not in schedule for showroom %d on %s",
			req.StartTime, req.ShowroomID, req.Date.Format(domain.DateFormat))
		return nil, ErrSlotNotInSchedule
	}

	if !slot.IsAvailable() {
		u.logger.Warn("HoldSlot: slot %s is %s for showroom %d on %s",
			req.StartTime, slot.Status, req.ShowroomID, req.Date.Format(domain.DateFormat))
		return nil, ErrSlotUnavailable
	}

	hold, err := u.holdManager.Acquire(ctx, req.ShowroomID, req.Date, req.StartTime)
	if err != nil {
		if errors.Is(err, holds.ErrSlotHeld) {
			// Конкурирующий холд успел раньше между резолвом и захватом
			return nil, ErrSlotUnavailable
		}
		u.logger.Error("HoldSlot: failed to acquire hold: %v", err)
		return nil, fmt.Errorf("%w: acquire hold: %v", ErrInternal, err)
	}

	u.logger.Info("HoldSlot: hold %s acquired for showroom=%d date=%s start=%s",
		hold.ID, req.ShowroomID, req.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{
		HoldID:     hold.ID,
		ShowroomID: req.ShowroomID,
		Date:       req.Date,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		ExpiresAt:  hold.ExpiresAt,
	}, nil
}

func findSlot(slots []domain.TimeSlot, req Request) (domain.TimeSlot, bool) {
	for _, slot := range slots {
		if slot.StartTime == req.StartTime {
			return slot, true
		}
	}
	return domain.TimeSlot{}, false
}
