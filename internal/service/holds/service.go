package holds

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// Ключи в Redis:
//   testdrive:hold:slot:{showroomId}:{date}:{start} -> expiry (RFC3339)
//   testdrive:hold:id:{holdId}                      -> slot key
//
// Обе записи пишутся с одинаковым TTL и истекают вместе. Слот-ключ
// захватывается атомарным set-if-absent, поэтому из двух конкурирующих
// холдов один гарантированно проигрывает.
const (
	slotKeyPrefix = "testdrive:hold:slot"
	idKeyPrefix   = "testdrive:hold:id"
)

// Hold активный провизорный холд слота
type Hold struct {
	ID        string
	ExpiresAt time.Time
}

// Service менеджер провизорных холдов слотов
type Service struct {
	store        ReservationStore
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает менеджер холдов. ttl - время жизни холда;
// неположительный TTL превратил бы SetNX-запись в вечную, поэтому
// заменяется значением по умолчанию.
func NewService(store ReservationStore, ttl time.Duration, logger Logger) *Service {
	if ttl <= 0 {
		ttl = domain.DefaultHoldTTLMinutes * time.Minute
	}

	return &Service{
		store:        store,
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SlotKey возвращает ключ холда для слота
func SlotKey(showroomID int64, date time.Time, start types.TimeString) string {
	return fmt.Sprintf("%s:%d:%s:%s", slotKeyPrefix, showroomID, date.Format(domain.DateFormat), start)
}

func idKey(holdID string) string {
	return idKeyPrefix + ":" + holdID
}

// Acquire захватывает холд на слот. Возвращает ErrSlotHeld, если слот уже
// удерживается другим холдом. Проверка занятости слота бронированием
// выполняется вызывающей стороной до захвата.
func (s *Service) Acquire(ctx context.Context, showroomID int64, date time.Time, start types.TimeString) (*Hold, error) {
	expiresAt := s.timeProvider.Now().Add(s.ttl)
	slotKey := SlotKey(showroomID, date, start)

	ok, err := s.store.Acquire(ctx, slotKey, expiresAt.Format(time.RFC3339), s.ttl)
	if err != nil {
		s.logger.Error("Acquire: store error for %s: %v", slotKey, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !ok {
		s.logger.Warn("Acquire: slot already held: %s", slotKey)
		return nil, ErrSlotHeld
	}

	holdID := uuid.NewString()
	if err := s.store.Set(ctx, idKey(holdID), slotKey, s.ttl); err != nil {
		// Не оставляем слот-ключ без обратной ссылки
		_ = s.store.Delete(ctx, slotKey)
		s.logger.Error("Acquire: failed to write hold id record %s: %v", holdID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Acquire: hold %s acquired for %s, expires at %s", holdID, slotKey, expiresAt.Format(time.RFC3339))
	return &Hold{ID: holdID, ExpiresAt: expiresAt}, nil
}

// Validate возвращает true, только если холд все еще жив.
// TTL в хранилище и чтение вызывающего могут гоняться, поэтому
// путь коммита всегда перепроверяет холд через этот метод.
func (s *Service) Validate(ctx context.Context, holdID string) (bool, error) {
	_, ok, err := s.resolve(ctx, holdID)
	return ok, err
}

// ValidateForSlot возвращает true, только если холд жив и указывает
// именно на переданный слот
func (s *Service) ValidateForSlot(ctx context.Context, holdID string, showroomID int64, date time.Time, start types.TimeString) (bool, error) {
	slotKey, ok, err := s.resolve(ctx, holdID)
	if err != nil || !ok {
		return false, err
	}
	return slotKey == SlotKey(showroomID, date, start), nil
}

// Release снимает холд. Идемпотентна: освобождение неизвестного или уже
// истекшего холда не является ошибкой.
func (s *Service) Release(ctx context.Context, holdID string) error {
	slotKey, ok, err := s.store.Get(ctx, idKey(holdID))
	if err != nil {
		s.logger.Error("Release: store error for hold %s: %v", holdID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !ok {
		s.logger.Info("Release: hold %s already expired or unknown, nothing to do", holdID)
		return nil
	}

	if err := s.store.Delete(ctx, slotKey, idKey(holdID)); err != nil {
		s.logger.Error("Release: failed to delete hold %s records: %v", holdID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Release: hold %s released (%s)", holdID, slotKey)
	return nil
}

// HoldsForDay возвращает живые холды для набора стартовых времен одним
// запросом к хранилищу: start -> expiry
func (s *Service) HoldsForDay(ctx context.Context, showroomID int64, date time.Time, starts []types.TimeString) (map[types.TimeString]time.Time, error) {
	if len(starts) == 0 {
		return map[types.TimeString]time.Time{}, nil
	}

	keys := make([]string, len(starts))
	for i, start := range starts {
		keys[i] = SlotKey(showroomID, date, start)
	}

	vals, err := s.store.GetMany(ctx, keys...)
	if err != nil {
		s.logger.Error("HoldsForDay: store error for showroom=%d date=%s: %v", showroomID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	result := make(map[types.TimeString]time.Time)

	for i, val := range vals {
		raw, ok := val.(string)
		if !ok {
			continue
		}

		expiresAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			s.logger.Warn("HoldsForDay: malformed expiry for %s: %q", keys[i], raw)
			continue
		}

		// TTL-истечение и чтение могут гоняться - фильтруем просроченные
		if expiresAt.After(now) {
			result[starts[i]] = expiresAt
		}
	}

	return result, nil
}

func (s *Service) resolve(ctx context.Context, holdID string) (string, bool, error) {
	slotKey, ok, err := s.store.Get(ctx, idKey(holdID))
	if err != nil {
		s.logger.Error("resolve: store error for hold %s: %v", holdID, err)
		return "", false, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !ok {
		return "", false, nil
	}

	raw, ok, err := s.store.Get(ctx, slotKey)
	if err != nil {
		s.logger.Error("resolve: store error for slot key %s: %v", slotKey, err)
		return "", false, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !ok {
		return "", false, nil
	}

	expiresAt, err := time.Parse(time.RFC3339, raw)
	if err != nil || !expiresAt.After(s.timeProvider.Now()) {
		return "", false, nil
	}

	return slotKey, true, nil
}
