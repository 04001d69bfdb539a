package domain

import "github.com/shopspring/decimal"

// Dish is a menu entry. Price changes never touch previously created
// orders (see OrderItem.Price).
type Dish struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
}

// Table is a physical restaurant table. A configured validation code
// acts as proof of presence: dine-in orders against the table must
// supply it. A nil code disables the check.
type Table struct {
	ID             int
	Number         int
	Capacity       *int
	IsAvailable    bool
	ValidationCode *string
}

// RequiresCode reports whether dine-in orders for this table must carry
// a validation code.
func (t *Table) RequiresCode() bool {
	return t.ValidationCode != nil && *t.ValidationCode != ""
}
