package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nqbjnh/go-shop/internal/basket/domain"
)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:  client,
		baseTTL: 30 * 24 * time.Hour,
	}
}

type RedisStore struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisStore) Get(ctx context.Context, userName string) (*domain.ShoppingCart, error) {
	data, err := r.client.Get(ctx, storeKey(userName)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrBasketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cart domain.ShoppingCart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal basket failed: %w", err)
	}

	return &cart, nil
}

func (r *RedisStore) Put(ctx context.Context, cart *domain.ShoppingCart) (*domain.ShoppingCart, error) {
	data, err := json.Marshal(cart)
	if err != nil {
		return nil, fmt.Errorf("marshal basket failed: %w", err)
	}

	// Jitter spreads expirations of baskets written in the same burst.
	jitter := time.Duration(rand.Intn(60)) * time.Minute
	if err := r.client.Set(ctx, storeKey(cart.UserName), data, r.baseTTL+jitter).Err(); err != nil {
		return nil, fmt.Errorf("redis set failed: %w", err)
	}

	return r.Get(ctx, cart.UserName)
}

func (r *RedisStore) Delete(ctx context.Context, userName string) error {
	// DEL of a missing key is a no-op in Redis, which gives Delete its
	// idempotency for free.
	if err := r.client.Del(ctx, storeKey(userName)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func storeKey(userName string) string {
	return fmt.Sprintf("basket:%s", userName)
}
