package slotlocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DTS-BookingService/internal/domain"
	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// Ключ в Redis: testdrive:lock:slot:{showroomId}:{date}:{start} -> токен вызывающего.
// Лок короткоживущий: TTL ограничивает, как долго зависший коммит может
// блокировать остальных на том же слоте.
const lockKeyPrefix = "testdrive:lock:slot"

var (
	// ErrSlotLocked возвращается, когда лок на слот уже захвачен другим коммитом
	ErrSlotLocked = errors.New("slotlocks: slot is locked by another commit")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("slotlocks: internal error")
)

// ReservationStore интерфейс эфемерного TTL-хранилища резерваций
type ReservationStore interface {
	Acquire(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseIfValue(ctx context.Context, key, value string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service per-slot мьютекс для сериализации коммитов бронирования.
// Захват - ограниченная по времени условная запись без ожидания:
// проигравший сразу получает ErrSlotLocked, очереди нет.
type Service struct {
	store  ReservationStore
	ttl    time.Duration
	logger Logger
}

// NewService создает сервис локов. ttl - время жизни лока;
// неположительный TTL превратил бы SetNX-запись в вечную, поэтому
// заменяется значением по умолчанию.
func NewService(store ReservationStore, ttl time.Duration, logger Logger) *Service {
	if ttl <= 0 {
		ttl = domain.DefaultLockTTLSeconds * time.Second
	}

	return &Service{store: store, ttl: ttl, logger: logger}
}

func lockKey(showroomID int64, date time.Time, start types.TimeString) string {
	return fmt.Sprintf("%s:%d:%s:%s", lockKeyPrefix, showroomID, date.Format(domain.DateFormat), start)
}

// Acquire захватывает лок на слот и возвращает уникальный токен владельца.
// Возвращает ErrSlotLocked, если коммит этого слота уже идет.
func (s *Service) Acquire(ctx context.Context, showroomID int64, date time.Time, start types.TimeString) (string, error) {
	token := uuid.NewString()
	key := lockKey(showroomID, date, start)

	ok, err := s.store.Acquire(ctx, key, token, s.ttl)
	if err != nil {
		s.logger.Error("Acquire: store error for %s: %v", key, err)
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !ok {
		s.logger.Warn("Acquire: lock contention on %s", key)
		return "", ErrSlotLocked
	}

	return token, nil
}

// Release снимает лок, только если токен все еще владеет им
// (атомарный compare-then-delete). Если лок уже истек и перезахвачен
// другим коммитом, удаление молча пропускается - страховкой служит TTL.
func (s *Service) Release(ctx context.Context, showroomID int64, date time.Time, start types.TimeString, token string) {
	key := lockKey(showroomID, date, start)

	released, err := s.store.ReleaseIfValue(ctx, key, token)
	if err != nil {
		s.logger.Error("Release: store error for %s: %v", key, err)
		return
	}
	if !released {
		s.logger.Warn("Release: lock %s no longer owned by caller, skipping delete", key)
	}
}
