package discount

import (
	"context"
	"fmt"

	"github.com/nqbjnh/go-shop/pkg/discountpb"
)

// GRPCResolver resolves discounts against the remote discount service,
// one call per product name.
type GRPCResolver struct {
	client discountpb.DiscountServiceClient
}

func NewGRPCResolver(client discountpb.DiscountServiceClient) *GRPCResolver {
	return &GRPCResolver{client: client}
}

func (r *GRPCResolver) Resolve(ctx context.Context, productName string) (float64, error) {
	coupon, err := r.client.GetDiscount(ctx, &discountpb.GetDiscountRequest{
		ProductName: productName,
	})
	if err != nil {
		return 0, fmt.Errorf("get discount for %q: %w", productName, err)
	}
	if coupon.Amount < 0 {
		return 0, fmt.Errorf("negative discount %v for %q", coupon.Amount, productName)
	}
	return coupon.Amount, nil
}
