package publisher

import (
	"context"

	"github.com/nqbjnh/go-shop/internal/basket/domain"
)

// CheckoutPublisher hands a checkout event to the bus. A nil return
// means the sink accepted the message, not that any consumer saw it;
// delivery downstream is at-least-once.
type CheckoutPublisher interface {
	Publish(ctx context.Context, event *domain.BasketCheckoutEvent) error
}
