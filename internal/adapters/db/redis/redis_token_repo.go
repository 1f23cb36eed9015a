package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "refresh:"

type RedisTokenRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTokenRepo(client *redis.Client, ttl time.Duration) *RedisTokenRepo {
	return &RedisTokenRepo{
		client: client,
		ttl:    ttl,
	}
}

// Store records the token as valid for exchange. The TTL mirrors the refresh
// expiry so the key disappears once the signature would be rejected anyway.
func (r *RedisTokenRepo) Store(ctx context.Context, token string) error {
	return r.client.Set(ctx, keyPrefix+token, "1", r.ttl).Err()
}

func (r *RedisTokenRepo) Delete(ctx context.Context, token string) error {
	// DEL отсутствующего ключа — не ошибка, удаление идемпотентно.
	return r.client.Del(ctx, keyPrefix+token).Err()
}

func (r *RedisTokenRepo) Exists(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+token).Result()
	return n > 0, err
}
