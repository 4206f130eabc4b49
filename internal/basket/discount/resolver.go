package discount

import "context"

// Resolver yields the amount to subtract from a product's list price.
// Implementations must never return a negative amount; a product with
// no coupon resolves to zero.
type Resolver interface {
	Resolve(ctx context.Context, productName string) (float64, error)
}
