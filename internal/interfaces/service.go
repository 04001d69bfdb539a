package interfaces

import (
	"context"

	"github.com/MuriloBarros304/web-menu/internal/domain"
)

// CreateOrderCommand is the client's view of a new order. Prices,
// status, timestamps and the payment flag are all server-side.
type CreateOrderCommand struct {
	Type           string
	TableID        *int
	ValidationCode *string
	Items          []CreateOrderItemCommand
}

type CreateOrderItemCommand struct {
	DishID       int
	Quantity     int
	Observations *string
}

type OrderService interface {
	CreateOrder(ctx context.Context, caller domain.Caller, cmd CreateOrderCommand) (*domain.Order, error)
	GetOrder(ctx context.Context, caller domain.Caller, id int) (*domain.Order, error)
	// ListOrders scopes the result to the caller: kitchen mode gives
	// staff the FIFO preparation queue, staff see everything,
	// customers their own orders, anonymous callers an empty list.
	ListOrders(ctx context.Context, caller domain.Caller, mode string) ([]*domain.Order, error)
	MarkReady(ctx context.Context, caller domain.Caller, id int) (*domain.Order, error)
	MarkCompleted(ctx context.Context, caller domain.Caller, id int) (*domain.Order, error)
	Cancel(ctx context.Context, caller domain.Caller, id int) (*domain.Order, error)
}

type SaveDishCommand struct {
	Name        string
	Description string
	Price       string
}

type MenuService interface {
	ListDishes(ctx context.Context) ([]*domain.Dish, error)
	GetDish(ctx context.Context, id int) (*domain.Dish, error)
	CreateDish(ctx context.Context, caller domain.Caller, cmd SaveDishCommand) (*domain.Dish, error)
	UpdateDish(ctx context.Context, caller domain.Caller, id int, cmd SaveDishCommand) (*domain.Dish, error)
	DeleteDish(ctx context.Context, caller domain.Caller, id int) error
}

type SaveTableCommand struct {
	Number         int
	Capacity       *int
	IsAvailable    *bool
	ValidationCode *string
}

type TableService interface {
	ListTables(ctx context.Context, caller domain.Caller) ([]*domain.Table, error)
	GetTable(ctx context.Context, caller domain.Caller, id int) (*domain.Table, error)
	CreateTable(ctx context.Context, caller domain.Caller, cmd SaveTableCommand) (*domain.Table, error)
	UpdateTable(ctx context.Context, caller domain.Caller, id int, cmd SaveTableCommand) (*domain.Table, error)
	DeleteTable(ctx context.Context, caller domain.Caller, id int) error
}

type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

type LoginCommand struct {
	Username string
	Password string
}

// LoginResult mirrors the login response payload: the opaque token plus
// the basics the client needs about the account.
type LoginResult struct {
	Token  string
	UserID int
	Email  string
	Role   domain.Role
}

type UpdateProfileCommand struct {
	Email    *string
	Password *string
}

type UserService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*domain.User, error)
	Login(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, caller domain.Caller) (*domain.User, error)
	UpdateProfile(ctx context.Context, caller domain.Caller, cmd UpdateProfileCommand) (*domain.User, error)
	ListUsers(ctx context.Context, caller domain.Caller) ([]*domain.User, error)
	ChangeRole(ctx context.Context, caller domain.Caller, id int, role string) (*domain.User, error)
	ToggleActive(ctx context.Context, caller domain.Caller, id int) (*domain.User, error)
}
