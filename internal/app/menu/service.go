package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MuriloBarros304/web-menu/internal/adapter/logger"
	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

// Service manages the dish catalogue. Reads are public; writes are
// admin-only.
type Service struct {
	dishes interfaces.DishRepository
	logger logger.Logger
}

func NewService(dishes interfaces.DishRepository, logger logger.Logger) *Service {
	return &Service{dishes: dishes, logger: logger}
}

func (s *Service) ListDishes(ctx context.Context) ([]*domain.Dish, error) {
	return s.dishes.List(ctx)
}

func (s *Service) GetDish(ctx context.Context, id int) (*domain.Dish, error) {
	return s.dishes.FindByID(ctx, id)
}

func (s *Service) CreateDish(ctx context.Context, caller domain.Caller, cmd interfaces.SaveDishCommand) (*domain.Dish, error) {
	if !caller.Admin() {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	dish, err := dishFromCommand(cmd)
	if err != nil {
		return nil, err
	}
	if err := s.dishes.Create(ctx, dish); err != nil {
		return nil, err
	}
	s.logger.Debug("dish_created", "Dish created", "", map[string]any{"dish_id": dish.ID, "name": dish.Name})
	return dish, nil
}

func (s *Service) UpdateDish(ctx context.Context, caller domain.Caller, id int, cmd interfaces.SaveDishCommand) (*domain.Dish, error) {
	if !caller.Admin() {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	if _, err := s.dishes.FindByID(ctx, id); err != nil {
		return nil, err
	}
	dish, err := dishFromCommand(cmd)
	if err != nil {
		return nil, err
	}
	dish.ID = id
	if err := s.dishes.Update(ctx, dish); err != nil {
		return nil, err
	}
	return dish, nil
}

// DeleteDish removes a dish from the menu. Dishes referenced by order
// items cannot be removed; the repository surfaces that as a conflict.
func (s *Service) DeleteDish(ctx context.Context, caller domain.Caller, id int) error {
	if !caller.Admin() {
		return fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	if _, err := s.dishes.FindByID(ctx, id); err != nil {
		return err
	}
	return s.dishes.Delete(ctx, id)
}

func dishFromCommand(cmd interfaces.SaveDishCommand) (*domain.Dish, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, domain.Validationf("dish name is required")
	}
	price, err := decimal.NewFromString(cmd.Price)
	if err != nil {
		return nil, domain.Validationf("invalid dish price %q", cmd.Price)
	}
	if !price.IsPositive() {
		return nil, domain.Validationf("dish price must be positive")
	}
	return &domain.Dish{
		Name:        name,
		Description: cmd.Description,
		Price:       price.Round(2),
	}, nil
}
