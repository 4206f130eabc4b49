package domain

type Coupon struct {
	ID          int64
	ProductName string
	Description string
	Amount      float64
}
