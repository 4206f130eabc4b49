package grpc

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nqbjnh/go-shop/internal/discount/domain"
	"github.com/nqbjnh/go-shop/internal/discount/repository"
	"github.com/nqbjnh/go-shop/pkg/discountpb"
)

type mockRepo struct {
	m       sync.Mutex
	coupons map[string]*domain.Coupon
	err     error
	nextID  int64
}

func newMockRepo(coupons ...*domain.Coupon) *mockRepo {
	r := &mockRepo{coupons: make(map[string]*domain.Coupon), nextID: 1}
	for _, c := range coupons {
		r.coupons[c.ProductName] = c
	}
	return r
}

func (m *mockRepo) GetCoupon(_ context.Context, productName string) (*domain.Coupon, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	coupon, ok := m.coupons[productName]
	if !ok {
		return nil, repository.ErrCouponNotFound
	}
	return coupon, nil
}

func (m *mockRepo) CreateCoupon(_ context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if _, exists := m.coupons[coupon.ProductName]; exists {
		return nil, repository.ErrDuplicateCoupon
	}
	coupon.ID = m.nextID
	m.nextID++
	m.coupons[coupon.ProductName] = coupon
	return coupon, nil
}

func (m *mockRepo) UpdateCoupon(_ context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	existing, ok := m.coupons[coupon.ProductName]
	if !ok {
		return nil, repository.ErrCouponNotFound
	}
	existing.Description = coupon.Description
	existing.Amount = coupon.Amount
	return existing, nil
}

func (m *mockRepo) DeleteCoupon(_ context.Context, productName string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.coupons[productName]; !ok {
		return repository.ErrCouponNotFound
	}
	delete(m.coupons, productName)
	return nil
}

func (m *mockRepo) RunMigrations(*repository.Credentials) error { return nil }
func (m *mockRepo) Close() error                                { return nil }

func TestGetDiscount_Success(t *testing.T) {
	repo := newMockRepo(&domain.Coupon{ID: 1, ProductName: "IPhone X", Description: "IPhone Discount", Amount: 150})
	sut := NewDiscountServiceServer(repo)

	resp, err := sut.GetDiscount(context.Background(), &discountpb.GetDiscountRequest{ProductName: "IPhone X"})
	require.NoError(t, err)
	assert.Equal(t, 150.0, resp.Amount)
	assert.Equal(t, "IPhone Discount", resp.Description)
}

func TestGetDiscount_UnknownProductGetsZeroCoupon(t *testing.T) {
	sut := NewDiscountServiceServer(newMockRepo())

	resp, err := sut.GetDiscount(context.Background(), &discountpb.GetDiscountRequest{ProductName: "Huawei P30"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Amount)
	assert.Equal(t, "No Discount", resp.Description)
	assert.Equal(t, "Huawei P30", resp.ProductName)
}

func TestGetDiscount_EmptyProductName(t *testing.T) {
	sut := NewDiscountServiceServer(newMockRepo())

	_, err := sut.GetDiscount(context.Background(), &discountpb.GetDiscountRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetDiscount_RepoError(t *testing.T) {
	repo := newMockRepo()
	repo.err = errors.New("database error")
	sut := NewDiscountServiceServer(repo)

	_, err := sut.GetDiscount(context.Background(), &discountpb.GetDiscountRequest{ProductName: "IPhone X"})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestCreateDiscount_Success(t *testing.T) {
	repo := newMockRepo()
	sut := NewDiscountServiceServer(repo)

	resp, err := sut.CreateDiscount(context.Background(), &discountpb.CreateDiscountRequest{
		Coupon: &discountpb.CouponModel{ProductName: "Huawei P30", Description: "Huawei Discount", Amount: 100},
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, 100.0, resp.Amount)
}

func TestCreateDiscount_Duplicate(t *testing.T) {
	repo := newMockRepo(&domain.Coupon{ID: 1, ProductName: "IPhone X", Amount: 150})
	sut := NewDiscountServiceServer(repo)

	_, err := sut.CreateDiscount(context.Background(), &discountpb.CreateDiscountRequest{
		Coupon: &discountpb.CouponModel{ProductName: "IPhone X", Amount: 50},
	})
	require.Error(t, err)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestCreateDiscount_NegativeAmount(t *testing.T) {
	sut := NewDiscountServiceServer(newMockRepo())

	_, err := sut.CreateDiscount(context.Background(), &discountpb.CreateDiscountRequest{
		Coupon: &discountpb.CouponModel{ProductName: "IPhone X", Amount: -5},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUpdateDiscount_NotFound(t *testing.T) {
	sut := NewDiscountServiceServer(newMockRepo())

	_, err := sut.UpdateDiscount(context.Background(), &discountpb.UpdateDiscountRequest{
		Coupon: &discountpb.CouponModel{ProductName: "Nothing", Amount: 10},
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestDeleteDiscount_Success(t *testing.T) {
	repo := newMockRepo(&domain.Coupon{ID: 1, ProductName: "IPhone X", Amount: 150})
	sut := NewDiscountServiceServer(repo)

	resp, err := sut.DeleteDiscount(context.Background(), &discountpb.DeleteDiscountRequest{ProductName: "IPhone X"})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	_, err = repo.GetCoupon(context.Background(), "IPhone X")
	assert.ErrorIs(t, err, repository.ErrCouponNotFound)
}

func TestDeleteDiscount_NotFound(t *testing.T) {
	sut := NewDiscountServiceServer(newMockRepo())

	_, err := sut.DeleteDiscount(context.Background(), &discountpb.DeleteDiscountRequest{ProductName: "Nothing"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}
