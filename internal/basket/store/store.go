package store

import (
	"context"
	"errors"

	"github.com/nqbjnh/go-shop/internal/basket/domain"
)

// BasketStore is the key-value contract the orchestration depends on.
// Get reports absence through ErrBasketNotFound so callers decide the
// defaulting policy; Put is a full last-writer-wins overwrite; Delete
// of an absent key succeeds.
type BasketStore interface {
	Get(ctx context.Context, userName string) (*domain.ShoppingCart, error)
	Put(ctx context.Context, cart *domain.ShoppingCart) (*domain.ShoppingCart, error)
	Delete(ctx context.Context, userName string) error
}

var ErrBasketNotFound = errors.New("basket not found")
