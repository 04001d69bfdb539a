package domain

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
)

// ParseOrderType resolves the wire value for an order type. An empty
// value defaults to dine-in, the same default the order form uses.
func ParseOrderType(s string) (OrderType, error) {
	switch s {
	case "", string(OrderTypeDineIn):
		return OrderTypeDineIn, nil
	case string(OrderTypeTakeaway):
		return OrderTypeTakeaway, nil
	default:
		return "", Validationf("invalid order type %q", s)
	}
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusQueued    OrderStatus = "queued"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCanceled  OrderStatus = "canceled"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

func ParseRole(s string) (Role, error) {
	switch s {
	case string(RoleAdmin), string(RoleStaff), string(RoleCustomer):
		return Role(s), nil
	default:
		return "", Validationf("invalid user type %q", s)
	}
}
