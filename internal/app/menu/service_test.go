package menu

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuriloBarros304/web-menu/internal/adapter/logger"
	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

var (
	customer = domain.Caller{Authenticated: true, UserID: 1, Role: domain.RoleCustomer}
	staff    = domain.Caller{Authenticated: true, UserID: 2, Role: domain.RoleStaff}
	admin    = domain.Caller{Authenticated: true, UserID: 3, Role: domain.RoleAdmin}
)

// memDishRepo also tracks which dishes appear in orders so Delete can
// behave like the database FK restriction.
type memDishRepo struct {
	dishes     map[int]*domain.Dish
	referenced map[int]bool
}

func newMemDishRepo() *memDishRepo {
	return &memDishRepo{dishes: map[int]*domain.Dish{}, referenced: map[int]bool{}}
}

func (m *memDishRepo) Create(_ context.Context, dish *domain.Dish) error {
	dish.ID = len(m.dishes) + 1
	copied := *dish
	m.dishes[dish.ID] = &copied
	return nil
}

func (m *memDishRepo) FindByID(_ context.Context, id int) (*domain.Dish, error) {
	dish, ok := m.dishes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *dish
	return &copied, nil
}

func (m *memDishRepo) List(_ context.Context) ([]*domain.Dish, error) {
	var dishes []*domain.Dish
	for _, dish := range m.dishes {
		copied := *dish
		dishes = append(dishes, &copied)
	}
	return dishes, nil
}

func (m *memDishRepo) Update(_ context.Context, dish *domain.Dish) error {
	if _, ok := m.dishes[dish.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *dish
	m.dishes[dish.ID] = &copied
	return nil
}

func (m *memDishRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.dishes[id]; !ok {
		return domain.ErrNotFound
	}
	if m.referenced[id] {
		return domain.ErrConflict
	}
	delete(m.dishes, id)
	return nil
}

func TestCreateDishRequiresAdmin(t *testing.T) {
	repo := newMemDishRepo()
	service := NewService(repo, logger.Nop())
	cmd := interfaces.SaveDishCommand{Name: "Pizza", Description: "Thin crust", Price: "50.00"}

	_, err := service.CreateDish(context.Background(), customer, cmd)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.dishes)

	// Staff is not enough for menu writes; the original gates them on
	// admin.
	_, err = service.CreateDish(context.Background(), staff, cmd)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	dish, err := service.CreateDish(context.Background(), admin, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Pizza", dish.Name)
	assert.Equal(t, "50.00", dish.Price.StringFixed(2))
	assert.Len(t, repo.dishes, 1)
}

func TestCreateDishValidation(t *testing.T) {
	service := NewService(newMemDishRepo(), logger.Nop())

	tests := []struct {
		name string
		cmd  interfaces.SaveDishCommand
	}{
		{name: "missing name", cmd: interfaces.SaveDishCommand{Price: "10.00"}},
		{name: "bad price", cmd: interfaces.SaveDishCommand{Name: "Pizza", Price: "abc"}},
		{name: "zero price", cmd: interfaces.SaveDishCommand{Name: "Pizza", Price: "0"}},
		{name: "negative price", cmd: interfaces.SaveDishCommand{Name: "Pizza", Price: "-5.00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateDish(context.Background(), admin, tt.cmd)
			assert.True(t, domain.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestReadsArePublic(t *testing.T) {
	repo := newMemDishRepo()
	require.NoError(t, repo.Create(context.Background(), &domain.Dish{Name: "Soup", Price: decimal.RequireFromString("12.00")}))
	service := NewService(repo, logger.Nop())

	dishes, err := service.ListDishes(context.Background())
	require.NoError(t, err)
	assert.Len(t, dishes, 1)

	dish, err := service.GetDish(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Soup", dish.Name)
}

func TestUpdateDish(t *testing.T) {
	repo := newMemDishRepo()
	require.NoError(t, repo.Create(context.Background(), &domain.Dish{Name: "Soup", Price: decimal.RequireFromString("12.00")}))
	service := NewService(repo, logger.Nop())

	_, err := service.UpdateDish(context.Background(), customer, 1, interfaces.SaveDishCommand{Name: "Stew", Price: "14.00"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	updated, err := service.UpdateDish(context.Background(), admin, 1, interfaces.SaveDishCommand{Name: "Stew", Price: "14.00"})
	require.NoError(t, err)
	assert.Equal(t, "Stew", updated.Name)
	assert.Equal(t, "14.00", updated.Price.StringFixed(2))

	_, err = service.UpdateDish(context.Background(), admin, 99, interfaces.SaveDishCommand{Name: "Stew", Price: "14.00"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteDish(t *testing.T) {
	repo := newMemDishRepo()
	require.NoError(t, repo.Create(context.Background(), &domain.Dish{Name: "Soup", Price: decimal.RequireFromString("12.00")}))
	require.NoError(t, repo.Create(context.Background(), &domain.Dish{Name: "Salad", Price: decimal.RequireFromString("8.00")}))
	repo.referenced[1] = true
	service := NewService(repo, logger.Nop())

	err := service.DeleteDish(context.Background(), customer, 2)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Dishes referenced by order items must survive.
	err = service.DeleteDish(context.Background(), admin, 1)
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = service.DeleteDish(context.Background(), admin, 2)
	require.NoError(t, err)
	assert.Len(t, repo.dishes, 1)
}
