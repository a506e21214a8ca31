package holds

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DTS-BookingService/pkg/types"
)

// fakeStore in-memory реализация ReservationStore без TTL-истечения
type fakeStore struct {
	data       map[string]string
	acquireErr error
	setErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (f *fakeStore) Acquire(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	if f.acquireErr != nil {
		return false, f.acquireErr
	}
	if _, taken := f.data[key]; taken {
		return false, nil
	}
	f.data[key] = value
	return true, nil
}

func (f *fakeStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	val, ok := f.data[key]
	return val, ok, nil
}

func (f *fakeStore) GetMany(_ context.Context, keys ...string) ([]interface{}, error) {
	vals := make([]interface{}, len(keys))
	for i, key := range keys {
		if val, ok := f.data[key]; ok {
			vals[i] = val
		}
	}
	return vals, nil
}

func (f *fakeStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func newTestService(store ReservationStore, now time.Time) *Service {
	svc := NewService(store, 10*time.Minute, nopLogger{})
	svc.timeProvider = &fixedTime{now: now}
	return svc
}

func TestNewService_DefaultTTL(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

	// Нулевой TTL означал бы вечный холд в Redis
	svc := NewService(newFakeStore(), 0, nopLogger{})
	svc.timeProvider = &fixedTime{now: now}

	assert.Equal(t, 10*time.Minute, svc.ttl)

	hold, err := svc.Acquire(context.Background(), 1, testDate(), "10:00")
	require.NoError(t, err)
	assert.Equal(t, now.Add(10*time.Minute), hold.ExpiresAt)
}

func TestService_Acquire(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("acquires free slot", func(t *testing.T) {
		store := newFakeStore()
		svc := newTestService(store, now)

		hold, err := svc.Acquire(ctx, 1, testDate(), "10:00")
		require.NoError(t, err)
		assert.NotEmpty(t, hold.ID)
		assert.Equal(t, now.Add(10*time.Minute), hold.ExpiresAt)

		// Обе записи на месте
		assert.Len(t, store.data, 2)
	})

	t.Run("second hold on same slot loses", func(t *testing.T) {
		store := newFakeStore()
		svc := newTestService(store, now)

		_, err := svc.Acquire(ctx, 1, testDate(), "10:00")
		require.NoError(t, err)

		_, err = svc.Acquire(ctx, 1, testDate(), "10:00")
		assert.ErrorIs(t, err, ErrSlotHeld)
	})

	t.Run("different slots do not conflict", func(t *testing.T) {
		store := newFakeStore()
		svc := newTestService(store, now)

		_, err := svc.Acquire(ctx, 1, testDate(), "10:00")
		require.NoError(t, err)

		_, err = svc.Acquire(ctx, 1, testDate(), "10:45")
		require.NoError(t, err)

		_, err = svc.Acquire(ctx, 2, testDate(), "10:00")
		require.NoError(t, err)
	})

	t.Run("slot key is rolled back when id record fails", func(t *testing.T) {
		store := newFakeStore()
		store.setErr = errors.New("redis down")
		svc := newTestService(store, now)

		_, err := svc.Acquire(ctx, 1, testDate(), "10:00")
		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, store.data)
	})
}

func TestService_Validate(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("live hold validates", func(t *testing.T) {
		store := newFakeStore()
		svc := newTestService(store, now)

		hold, err := svc.Acquire(ctx, 1, testDate(), "10:00")
		require.NoError(t, err)

		ok, err := svc.Validate(ctx, hold.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown hold does not validate", func(t *testing.T) {
		svc := newTestService(newFakeStore(), now)

		ok, err := svc.Validate(ctx, "no-such-hold")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expired hold does not validate", func(t *testing.T) {
		store := newFakeStore()
		svc := newTestService(store, now)

		hold, err := svc.Acquire(ctx, 1, testDate(), "10:00")
		require.NoError(t, err)

		// Часы ушли за момент истечения, записи еще не вычищены TTL
		svc.timeProvider = &fixedTime{now: now.Add(11 * time.Minute)}

		ok, err := svc.Validate(ctx, hold.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestService_ValidateForSlot(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	store := newFakeStore()
	svc := newTestService(store, now)

	hold, err := svc.Acquire(ctx, 1, testDate(), "10:00")
	require.NoError(t, err)

	ok, err := svc.ValidateForSlot(ctx, hold.ID, 1, testDate(), "10:00")
	require.NoError(t, err)
	assert.True(t, ok)

	// Тот же холд не подтверждает другой слот
	ok, err = svc.ValidateForSlot(ctx, hold.ID, 1, testDate(), "10:45")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.ValidateForSlot(ctx, hold.ID, 2, testDate(), "10:00")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_Release(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("release frees the slot", func(t *testing.T) {
		store := newFakeStore()
		svc := newTestService(store, now)

		hold, err := svc.Acquire(ctx, 1, testDate(), "10:00")
		require.NoError(t, err)

		require.NoError(t, svc.Release(ctx, hold.ID))
		assert.Empty(t, store.data)

		// Слот снова можно захватить
		_, err = svc.Acquire(ctx, 1, testDate(), "10:00")
		require.NoError(t, err)
	})

	t.Run("release is idempotent", func(t *testing.T) {
		svc := newTestService(newFakeStore(), now)

		require.NoError(t, svc.Release(ctx, "unknown-hold"))
	})
}

func TestService_HoldsForDay(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	store := newFakeStore()
	svc := newTestService(store, now)

	_, err := svc.Acquire(ctx, 1, testDate(), "10:00")
	require.NoError(t, err)
	_, err = svc.Acquire(ctx, 1, testDate(), "11:30")
	require.NoError(t, err)

	// Протухшая запись, которую TTL еще не вычистил
	expired := now.Add(-1 * time.Minute)
	store.data[SlotKey(1, testDate(), "12:15")] = expired.Format(time.RFC3339)

	starts := []types.TimeString{"10:00", "10:45", "11:30", "12:15"}
	result, err := svc.HoldsForDay(ctx, 1, testDate(), starts)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, now.Add(10*time.Minute), result["10:00"])
	assert.Equal(t, now.Add(10*time.Minute), result["11:30"])
	assert.NotContains(t, result, types.TimeString("12:15"))

	empty, err := svc.HoldsForDay(ctx, 1, testDate(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
