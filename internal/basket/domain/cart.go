package domain

import (
	"time"

	"github.com/google/uuid"
)

type ShoppingCart struct {
	UserName string     `json:"user_name"`
	Items    []CartItem `json:"items"`
}

type CartItem struct {
	Quantity    int     `json:"quantity"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Color       string  `json:"color,omitempty"`
	ImageFile   string  `json:"image_file,omitempty"`
}

// NewShoppingCart returns the empty cart every user implicitly owns
// before their first update.
func NewShoppingCart(userName string) *ShoppingCart {
	return &ShoppingCart{
		UserName: userName,
		Items:    []CartItem{},
	}
}

// TotalPrice is derived, never stored. An empty cart totals zero.
func (c *ShoppingCart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// BasketCheckout carries the buyer's delivery and payment details.
// It deliberately has no price field: the stored cart is the only
// price authority at checkout time.
type BasketCheckout struct {
	UserName      string `json:"user_name"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EmailAddress  string `json:"email_address"`
	AddressLine   string `json:"address_line"`
	Country       string `json:"country"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	CardName      string `json:"card_name"`
	CardNumber    string `json:"card_number"`
	Expiration    string `json:"expiration"`
	CVV           string `json:"cvv"`
	PaymentMethod int    `json:"payment_method"`
}

// BasketCheckoutEvent is the durable record of intent published on the
// bus. EventID lets at-least-once consumers deduplicate redeliveries.
type BasketCheckoutEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
	BasketCheckout
	TotalPrice float64 `json:"total_price"`
}

func NewBasketCheckoutEvent(checkout *BasketCheckout, totalPrice float64) *BasketCheckoutEvent {
	return &BasketCheckoutEvent{
		EventID:        uuid.New(),
		CreatedAt:      time.Now().UTC(),
		BasketCheckout: *checkout,
		TotalPrice:     totalPrice,
	}
}
