package interfaces

import (
	"context"

	"github.com/MuriloBarros304/web-menu/internal/domain"
)

// OrderFilter narrows and orders a listing query.
type OrderFilter struct {
	Statuses    []domain.OrderStatus
	UserID      *int
	OldestFirst bool
}

type OrderRepository interface {
	// Create persists the order and all of its items atomically: either
	// every row is written or none is.
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) error
}

type DishRepository interface {
	Create(ctx context.Context, dish *domain.Dish) error
	FindByID(ctx context.Context, id int) (*domain.Dish, error)
	List(ctx context.Context) ([]*domain.Dish, error)
	Update(ctx context.Context, dish *domain.Dish) error
	// Delete fails with domain.ErrConflict while order items still
	// reference the dish.
	Delete(ctx context.Context, id int) error
}

type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) error
	FindByID(ctx context.Context, id int) (*domain.Table, error)
	List(ctx context.Context) ([]*domain.Table, error)
	Update(ctx context.Context, table *domain.Table) error
	Delete(ctx context.Context, id int) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type SessionRepository interface {
	Create(ctx context.Context, token string, userID int) error
	// FindUser resolves a bearer token to its account, or
	// domain.ErrNotFound for unknown tokens.
	FindUser(ctx context.Context, token string) (*domain.User, error)
	Delete(ctx context.Context, token string) error
}
