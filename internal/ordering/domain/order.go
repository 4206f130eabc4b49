package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

type Order struct {
	ID           uuid.UUID   `json:"id"`
	EventID      uuid.UUID   `json:"event_id"`
	UserName     string      `json:"user_name"`
	TotalPrice   float64     `json:"total_price"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	EmailAddress string      `json:"email_address"`
	AddressLine  string      `json:"address_line"`
	Country      string      `json:"country"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
