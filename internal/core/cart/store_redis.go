package cart

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/yadawity/yadawity/internal/platform/constants"
)

// RedisRepository keeps each cart as a Redis hash keyed "cart:{user_id}",
// field = artwork ID, value = quantity.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func cartKey(userID int64) string {
	return constants.RedisPrefixCart + strconv.FormatInt(userID, 10)
}

func (repository *RedisRepository) SetItem(context context.Context, userID, artworkID int64, quantity int) error {
	key := cartKey(userID)
	field := strconv.FormatInt(artworkID, 10)

	pipe := repository.client.TxPipeline()
	pipe.HSet(context, key, field, quantity)
	pipe.Expire(context, key, CartTTL)

	if _, err := pipe.Exec(context); err != nil {
		return fmt.Errorf("redis_cart_set_item_failed: %w", err)
	}
	return nil
}

func (repository *RedisRepository) RemoveItem(context context.Context, userID, artworkID int64) error {
	key := cartKey(userID)
	field := strconv.FormatInt(artworkID, 10)

	if err := repository.client.HDel(context, key, field).Err(); err != nil {
		return fmt.Errorf("redis_cart_remove_item_failed: %w", err)
	}
	return nil
}

func (repository *RedisRepository) Items(context context.Context, userID int64) (map[int64]int, error) {
	raw, err := repository.client.HGetAll(context, cartKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_cart_items_failed: %w", err)
	}

	items := make(map[int64]int, len(raw))
	for field, value := range raw {
		artworkID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			continue // skip corrupt fields rather than fail the whole cart
		}
		quantity, err := strconv.Atoi(value)
		if err != nil || quantity <= 0 {
			continue
		}
		items[artworkID] = quantity
	}

	return items, nil
}

func (repository *RedisRepository) Clear(context context.Context, userID int64) error {
	if err := repository.client.Del(context, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis_cart_clear_failed: %w", err)
	}
	return nil
}
