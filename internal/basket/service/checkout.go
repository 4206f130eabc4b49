package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nqbjnh/go-shop/internal/basket/domain"
	"github.com/nqbjnh/go-shop/internal/basket/store"
)

// checkoutStage names the fixed order of one checkout attempt. The
// total must be captured before Publish, and Publish must complete
// before Clear: the published event is the durable record of intent,
// cart deletion is only cleanup.
type checkoutStage int

const (
	stageLoaded checkoutStage = iota
	stagePublished
	stageCleared
)

func (s checkoutStage) String() string {
	switch s {
	case stageLoaded:
		return "LOADED"
	case stagePublished:
		return "PUBLISHED"
	case stageCleared:
		return "CLEARED"
	default:
		return "UNKNOWN"
	}
}

// Checkout turns the stored basket into a priced checkout event and
// removes the basket. If anything fails before the event is on the bus
// the basket is left intact and the caller may retry; once the event is
// published the checkout is committed regardless of cleanup.
func (s *BasketService) Checkout(ctx context.Context, checkout *domain.BasketCheckout) (*domain.BasketCheckoutEvent, error) {
	if checkout.UserName == "" {
		return nil, fmt.Errorf("%w: empty user name", ErrNoBasket)
	}

	cart, err := s.store.Get(ctx, checkout.UserName)
	if errors.Is(err, store.ErrBasketNotFound) {
		return nil, fmt.Errorf("%w: user %q", ErrNoBasket, checkout.UserName)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	stage := stageLoaded

	// Total comes from the stored, already-discounted basket. Caller
	// input never prices a checkout.
	event := domain.NewBasketCheckoutEvent(checkout, cart.TotalPrice())

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("checkout aborted at stage %s: %w", stage, err)
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}
	stage = stagePublished

	if err := s.store.Delete(ctx, checkout.UserName); err != nil {
		// The event is already on the bus, so the checkout stands. A
		// leftover basket can at worst produce a duplicate event,
		// which at-least-once consumers deduplicate by event id.
		log.Printf("basket cleanup failed for user %s after publish (event %s): %v",
			checkout.UserName, event.EventID, err)
		return event, nil
	}
	stage = stageCleared

	log.Printf("checkout %s for user %s completed at stage %s, total %.2f",
		event.EventID, checkout.UserName, stage, event.TotalPrice)
	return event, nil
}
