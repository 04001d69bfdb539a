package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a restaurant order. Dine-in orders reference a table and may
// be anonymous; takeaway orders always belong to a user. TotalPrice is
// derived from the items and never taken from a client.
type Order struct {
	ID               int
	UserID           *int
	CreatedAt        time.Time
	TotalPrice       decimal.Decimal
	Type             OrderType
	TableID          *int
	Status           OrderStatus
	PaymentConfirmed bool
	Items            []OrderItem
}

// OrderItem belongs to exactly one order. Price is a snapshot of the
// dish price at creation time and is never re-read from the menu.
type OrderItem struct {
	ID           int
	OrderID      int
	DishID       int
	Quantity     int
	Price        decimal.Decimal
	Observations *string
}

// CalculateTotal recomputes TotalPrice as the sum of price x quantity
// over the items.
func (o *Order) CalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	o.TotalPrice = total
}

// OwnedBy reports whether the order belongs to the given user.
func (o *Order) OwnedBy(userID int) bool {
	return o.UserID != nil && *o.UserID == userID
}
