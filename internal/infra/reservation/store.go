package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store эфемерное хранилище резерваций поверх Redis.
// Холды слотов и коммит-локи структурно одинаковы: TTL-запись,
// захватываемая атомарным set-if-absent и освобождаемая либо явно,
// либо по истечении TTL. Обе механики используют этот один примитив.
type Store struct {
	client redis.Cmdable
}

// releaseIfValueScript атомарный compare-then-delete: запись удаляется
// только если её значение совпадает с переданным. Закрывает гонку
// "лок истек и перезахвачен другим между чтением и удалением".
var releaseIfValueScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// NewStore создает хранилище резерваций
func NewStore(client redis.Cmdable) *Store {
	return &Store{client: client}
}

// Acquire атомарно создает запись key=value с TTL, если ключ свободен.
// Возвращает false, если ключ уже занят (резервация принадлежит другому).
func (s *Store) Acquire(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Acquire %s: %v", ErrStore, key, err)
	}
	return ok, nil
}

// Set безусловно записывает key=value с TTL.
// Используется для вторичного ключа холда (holdId -> slot key),
// который создается только после выигранного Acquire.
func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set %s: %v", ErrStore, key, err)
	}
	return nil
}

// Get возвращает значение ключа. Для отсутствующего или истекшего ключа
// возвращает ("", false, nil).
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: Get %s: %v", ErrStore, key, err)
	}
	return val, true, nil
}

// GetMany возвращает значения нескольких ключей одним запросом.
// Отсутствующие ключи возвращаются как nil-элементы (семантика MGET).
func (s *Store) GetMany(ctx context.Context, keys ...string) ([]interface{}, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: GetMany: %v", ErrStore, err)
	}
	return vals, nil
}

// Delete удаляет ключи. Удаление отсутствующего ключа не является ошибкой.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrStore, err)
	}
	return nil
}

// ReleaseIfValue атомарно удаляет запись, только если её значение равно value.
// Возвращает true, если запись была удалена (вызывающий владел резервацией).
func (s *Store) ReleaseIfValue(ctx context.Context, key, value string) (bool, error) {
	res, err := releaseIfValueScript.Run(ctx, s.client, []string{key}, value).Result()
	if err != nil {
		return false, fmt.Errorf("%w: ReleaseIfValue %s: %v", ErrStore, key, err)
	}

	deleted, ok := res.(int64)
	if !ok {
		return false, fmt.Errorf("%w: ReleaseIfValue %s: unexpected script result %T", ErrStore, key, res)
	}
	return deleted == 1, nil
}
