package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository holds the revoked-token blacklist and the public page cache.
type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func (r *RedisRepository) Blacklist(ctx context.Context, jti string) error {
	key := "blacklist:" + jti
	ttl := 30 * 24 * time.Hour
	return r.rdb.Set(ctx, key, "true", ttl).Err()
}

func (r *RedisRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	key := "blacklist:" + jti
	exists, err := r.rdb.Exists(ctx, key).Result()
	return exists == 1, err
}

// Page cache. Keys are invalidated by admin mutations, mirroring the cached
// public list pages.

const pageCacheTTL = 5 * time.Minute

func (r *RedisRepository) GetPage(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.rdb.Get(ctx, "page:"+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (r *RedisRepository) SetPage(ctx context.Context, key string, payload []byte) error {
	return r.rdb.Set(ctx, "page:"+key, payload, pageCacheTTL).Err()
}

func (r *RedisRepository) InvalidatePages(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = "page:" + k
	}
	return r.rdb.Del(ctx, full...).Err()
}
