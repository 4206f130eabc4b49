package repository

import (
	"context"
	"errors"

	"github.com/nqbjnh/go-shop/internal/discount/domain"
)

var (
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrDuplicateCoupon = errors.New("coupon for this product already exists")
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

type CouponRepository interface {
	GetCoupon(ctx context.Context, productName string) (*domain.Coupon, error)
	CreateCoupon(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	DeleteCoupon(ctx context.Context, productName string) error
	RunMigrations(*Credentials) error
	Close() error
}
