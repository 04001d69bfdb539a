package order

import (
	"context"
	"sort"

	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

// In-memory repositories backing the engine tests.

type memOrderRepo struct {
	nextID int
	orders []*domain.Order
}

func (m *memOrderRepo) Create(_ context.Context, order *domain.Order) error {
	m.nextID++
	order.ID = m.nextID
	stored := *order
	stored.Items = make([]domain.OrderItem, len(order.Items))
	for i, item := range order.Items {
		item.ID = m.nextID*100 + i
		item.OrderID = order.ID
		stored.Items[i] = item
		order.Items[i] = item
	}
	m.orders = append(m.orders, &stored)
	return nil
}

func (m *memOrderRepo) FindByID(_ context.Context, id int) (*domain.Order, error) {
	for _, order := range m.orders {
		if order.ID == id {
			copied := *order
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memOrderRepo) List(_ context.Context, filter interfaces.OrderFilter) ([]*domain.Order, error) {
	var result []*domain.Order
	for _, order := range m.orders {
		if filter.UserID != nil && !order.OwnedBy(*filter.UserID) {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, order.Status) {
			continue
		}
		copied := *order
		result = append(result, &copied)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if filter.OldestFirst {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *memOrderRepo) UpdateStatus(_ context.Context, id int, status domain.OrderStatus) error {
	for _, order := range m.orders {
		if order.ID == id {
			order.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func containsStatus(statuses []domain.OrderStatus, status domain.OrderStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

type memDishRepo struct {
	dishes map[int]*domain.Dish
}

func (m *memDishRepo) Create(_ context.Context, dish *domain.Dish) error {
	if m.dishes == nil {
		m.dishes = map[int]*domain.Dish{}
	}
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
	delete(m.dishes, id)
	return nil
}

type memTableRepo struct {
	tables map[int]*domain.Table
}

func (m *memTableRepo) Create(_ context.Context, table *domain.Table) error {
	if m.tables == nil {
		m.tables = map[int]*domain.Table{}
	}
	table.ID = len(m.tables) + 1
	copied := *table
	m.tables[table.ID] = &copied
	return nil
}

func (m *memTableRepo) FindByID(_ context.Context, id int) (*domain.Table, error) {
	table, ok := m.tables[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *table
	return &copied, nil
}

func (m *memTableRepo) List(_ context.Context) ([]*domain.Table, error) {
	var tables []*domain.Table
	for _, table := range m.tables {
		copied := *table
		tables = append(tables, &copied)
	}
	return tables, nil
}

func (m *memTableRepo) Update(_ context.Context, table *domain.Table) error {
	if _, ok := m.tables[table.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *table
	m.tables[table.ID] = &copied
	return nil
}

func (m *memTableRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.tables[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.tables, id)
	return nil
}
