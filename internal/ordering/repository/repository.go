package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nqbjnh/go-shop/internal/ordering/domain"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrDuplicateEvent = errors.New("order for this checkout event already exists")
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListOrdersByUserName(ctx context.Context, userName string) ([]*domain.Order, error)
	RunMigrations(*Credentials) error
	Close() error
}
