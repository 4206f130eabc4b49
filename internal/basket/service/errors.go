package service

import "errors"

// Checkout and update failures stay distinguishable for the transport
// layer: a missing basket is the caller's mistake, everything else is a
// collaborator being down and worth a retry.
var (
	ErrNoBasket            = errors.New("no basket to checkout")
	ErrDiscountUnavailable = errors.New("discount service unavailable")
	ErrPublishFailed       = errors.New("checkout event publish failed")
	ErrStoreUnavailable    = errors.New("basket store unavailable")
)
