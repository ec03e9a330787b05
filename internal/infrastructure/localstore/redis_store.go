package localstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Store = (*RedisStore)(nil)

// Prefijo de las claves del snapshot en Redis.
const redisKeyPrefix = "soma:"

// RedisStore snapshot sobre Redis, para despliegues donde el estado debe
// sobrevivir al proceso o compartirse entre réplicas. Mismo contrato que
// FileStore; sin TTL, el estado vive hasta logout/clear.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore conecta con Redis y verifica la conexión con un ping.
func NewRedisStore(addr string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("localstore: conectar a redis: %w", err)
	}
	return &RedisStore{rdb: rdb}, nil
}

// Get devuelve el valor JSON de la clave, o (nil, nil) si no existe.
func (s *RedisStore) Get(key string) ([]byte, error) {
	raw, err := s.rdb.Get(context.Background(), redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("localstore: get %s: %w", key, err)
	}
	return raw, nil
}

// Set guarda el valor sin expiración.
func (s *RedisStore) Set(key string, value []byte) error {
	if err := s.rdb.Set(context.Background(), redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("localstore: set %s: %w", key, err)
	}
	return nil
}

// Delete elimina la clave.
func (s *RedisStore) Delete(key string) error {
	if err := s.rdb.Del(context.Background(), redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("localstore: del %s: %w", key, err)
	}
	return nil
}
