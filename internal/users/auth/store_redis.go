// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/giftwell/giftwell/internal/platform/apperr"
	"github.com/giftwell/giftwell/internal/platform/constants"
)

// # Volatile Token Store

// RedisTokenStore implements [TokenStore] on Redis under a key prefix.
//
// One constructor per token family keeps the key taxonomy in
// [constants] rather than scattered through call sites.
type RedisTokenStore struct {
	client *redis.Client
	prefix string
}

// NewResetTokenStore creates the Redis store for password reset tokens.
func NewResetTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client, prefix: constants.RedisPrefixResetToken}
}

// NewVerificationTokenStore creates the Redis store for email verification tokens.
func NewVerificationTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client, prefix: constants.RedisPrefixVerifyToken}
}

// Set stores a token with its associated userID and TTL.
func (store *RedisTokenStore) Set(context context.Context, token string, userID string, ttl time.Duration) error {
	if err := store.client.Set(context, store.prefix+token, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_token_set_failed: %w", err)
	}
	return nil
}

// Get retrieves the userID for a given token.
//
// Returns apperr.NotFound if the token is absent or expired.
func (store *RedisTokenStore) Get(context context.Context, token string) (string, error) {
	userID, err := store.client.Get(context, store.prefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Token is invalid or expired")
		}
		return "", fmt.Errorf("redis_token_get_failed: %w", err)
	}
	return userID, nil
}

// Delete removes a used token from Redis.
func (store *RedisTokenStore) Delete(context context.Context, token string) error {
	if err := store.client.Del(context, store.prefix+token).Err(); err != nil {
		return fmt.Errorf("redis_token_delete_failed: %w", err)
	}
	return nil
}
