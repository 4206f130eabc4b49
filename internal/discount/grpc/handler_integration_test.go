package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/nqbjnh/go-shop/internal/basket/discount"
	"github.com/nqbjnh/go-shop/internal/discount/domain"
	"github.com/nqbjnh/go-shop/pkg/discountpb"
)

// Spins up the discount server on an in-memory listener and talks to it
// through the real client stub, covering the JSON codec end to end.
func setupBufconnServer(t *testing.T, repo *mockRepo) discountpb.DiscountServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	discountpb.RegisterDiscountServiceServer(srv, NewDiscountServiceServer(repo))

	go func() {
		if err := srv.Serve(lis); err != nil {
			t.Logf("bufconn server stopped: %v", err)
		}
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return discountpb.NewDiscountServiceClient(conn)
}

func TestDiscountService_WireRoundTrip(t *testing.T) {
	repo := newMockRepo(&domain.Coupon{ID: 7, ProductName: "IPhone X", Description: "IPhone Discount", Amount: 150})
	client := setupBufconnServer(t, repo)

	coupon, err := client.GetDiscount(context.Background(), &discountpb.GetDiscountRequest{ProductName: "IPhone X"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), coupon.ID)
	assert.Equal(t, 150.0, coupon.Amount)

	created, err := client.CreateDiscount(context.Background(), &discountpb.CreateDiscountRequest{
		Coupon: &discountpb.CouponModel{ProductName: "Samsung 10", Description: "Samsung Discount", Amount: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, "Samsung 10", created.ProductName)

	deleted, err := client.DeleteDiscount(context.Background(), &discountpb.DeleteDiscountRequest{ProductName: "Samsung 10"})
	require.NoError(t, err)
	assert.True(t, deleted.Success)
}

func TestGRPCResolver_AgainstServer(t *testing.T) {
	repo := newMockRepo(&domain.Coupon{ID: 1, ProductName: "IPhone X", Amount: 150})
	client := setupBufconnServer(t, repo)
	resolver := discount.NewGRPCResolver(client)

	amount, err := resolver.Resolve(context.Background(), "IPhone X")
	require.NoError(t, err)
	assert.Equal(t, 150.0, amount)

	// Unknown products resolve to zero, not an error.
	amount, err = resolver.Resolve(context.Background(), "Huawei P30")
	require.NoError(t, err)
	assert.Equal(t, 0.0, amount)
}
