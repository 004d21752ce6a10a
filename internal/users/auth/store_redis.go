// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/constants"
)

// RedisCSRFTokenRepository implements CSRFTokenRepository using Redis.
//
// CSRF tokens are volatile by nature — they live exactly as long as their
// session — so Redis with a TTL is a better home for them than Postgres.
type RedisCSRFTokenRepository struct {
	client *redis.Client
}

// NewCSRFTokenRepository creates a new Redis-backed CSRFTokenRepository.
func NewCSRFTokenRepository(client *redis.Client) *RedisCSRFTokenRepository {
	return &RedisCSRFTokenRepository{client: client}
}

/*
Set binds a CSRF token to a session ID with the given TTL.

Parameters:
  - context: context.Context
  - sessionID: string
  - token: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisCSRFTokenRepository) Set(context context.Context, sessionID, token string, ttl time.Duration) error {
	key := constants.RedisPrefixCSRFToken + sessionID

	if err := repository.client.Set(context, key, token, ttl).Err(); err != nil {
		return fmt.Errorf("redis_csrf_token_set_failed: %w", err)
	}

	return nil
}

/*
Get retrieves the CSRF token bound to a session.

Description: Returns apperr.NotFound if the token is absent or expired.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - string: The bound CSRF token
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisCSRFTokenRepository) Get(context context.Context, sessionID string) (string, error) {
	key := constants.RedisPrefixCSRFToken + sessionID

	token, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("CSRF token")
		}
		return "", fmt.Errorf("redis_csrf_token_get_failed: %w", err)
	}

	return token, nil
}

/*
Delete removes the CSRF token bound to a session.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: Execution errors
*/
func (repository *RedisCSRFTokenRepository) Delete(context context.Context, sessionID string) error {
	key := constants.RedisPrefixCSRFToken + sessionID

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_csrf_token_delete_failed: %w", err)
	}

	return nil
}
