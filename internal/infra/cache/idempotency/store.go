package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "slotgen:idem"

// Store хранит ответы генерации по ключу идемпотентности
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает хранилище с заданным временем жизни записей
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Key формирует ключ Redis для пары (терапевт, ключ идемпотентности)
func Key(therapistID int64, idempotencyKey string) string {
	return fmt.Sprintf("%s:%d:%s", keyPrefix, therapistID, idempotencyKey)
}

// Load читает сохраненный ответ в dst. Возвращает false, если записи нет.
func (s *Store) Load(ctx context.Context, therapistID int64, idempotencyKey string, dst interface{}) (bool, error) {
	data, err := s.client.Get(ctx, Key(therapistID, idempotencyKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Load: %v", ErrStoreRead, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("%w: Load: %v", ErrEncode, err)
	}

	return true, nil
}

// Save сохраняет ответ. Повторная запись по тому же ключу не перезаписывает первый ответ.
func (s *Store) Save(ctx context.Context, therapistID int64, idempotencyKey string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: Save: %v", ErrEncode, err)
	}

	if err := s.client.SetNX(ctx, Key(therapistID, idempotencyKey), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrStoreWrite, err)
	}

	return nil
}
