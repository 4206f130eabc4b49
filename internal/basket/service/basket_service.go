package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nqbjnh/go-shop/internal/basket/discount"
	"github.com/nqbjnh/go-shop/internal/basket/domain"
	"github.com/nqbjnh/go-shop/internal/basket/publisher"
	"github.com/nqbjnh/go-shop/internal/basket/store"
)

// maxResolveInFlight bounds the discount fan-out per update so one huge
// cart cannot open a connection per line item.
const maxResolveInFlight = 8

type BasketService struct {
	store     store.BasketStore
	discounts discount.Resolver
	publisher publisher.CheckoutPublisher
}

func NewBasketService(s store.BasketStore, d discount.Resolver, p publisher.CheckoutPublisher) *BasketService {
	return &BasketService{
		store:     s,
		discounts: d,
		publisher: p,
	}
}

// GetBasket never reports absence to the caller: a user without a
// stored basket owns an empty one.
func (s *BasketService) GetBasket(ctx context.Context, userName string) (*domain.ShoppingCart, error) {
	cart, err := s.store.Get(ctx, userName)
	if errors.Is(err, store.ErrBasketNotFound) {
		return domain.NewShoppingCart(userName), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return cart, nil
}

// UpdateBasket treats the caller's prices as list prices, resolves a
// discount for every item and persists the adjusted cart. The update is
// all-or-nothing: the first resolver failure discards the whole request
// and leaves the stored basket untouched, so a persisted basket is
// always discounted against a single pricing snapshot.
func (s *BasketService) UpdateBasket(ctx context.Context, cart *domain.ShoppingCart) (*domain.ShoppingCart, error) {
	if cart.UserName == "" {
		return nil, errors.New("basket user name is required")
	}

	adjusted := &domain.ShoppingCart{
		UserName: cart.UserName,
		Items:    make([]domain.CartItem, len(cart.Items)),
	}
	copy(adjusted.Items, cart.Items)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxResolveInFlight)
	for i := range adjusted.Items {
		item := &adjusted.Items[i]
		g.Go(func() error {
			amount, err := s.discounts.Resolve(gctx, item.ProductName)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrDiscountUnavailable, err)
			}
			item.Price -= amount
			if item.Price < 0 {
				// Clamp rather than letting an oversized coupon
				// turn a line item into a payout.
				item.Price = 0
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stored, err := s.store.Put(ctx, adjusted)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return stored, nil
}

// DeleteBasket is idempotent; deleting a basket that was never created
// still succeeds.
func (s *BasketService) DeleteBasket(ctx context.Context, userName string) error {
	if err := s.store.Delete(ctx, userName); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
