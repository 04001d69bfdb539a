package order

import (
	"context"
	"fmt"
	"time"

	"github.com/MuriloBarros304/web-menu/internal/adapter/logger"
	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

// KitchenMode is the listing mode that yields the FIFO preparation
// queue instead of the caller's default view.
const KitchenMode = "kitchen"

// Service is the order lifecycle engine: it owns the creation rules,
// historical pricing, status transitions and the role-scoped listings.
type Service struct {
	orders interfaces.OrderRepository
	dishes interfaces.DishRepository
	tables interfaces.TableRepository
	logger logger.Logger
}

func NewService(orders interfaces.OrderRepository, dishes interfaces.DishRepository, tables interfaces.TableRepository, logger logger.Logger) *Service {
	return &Service{
		orders: orders,
		dishes: dishes,
		tables: tables,
		logger: logger,
	}
}

// CreateOrder validates the command, prices the items against the
// current menu and persists the order atomically. Takeaway requires an
// authenticated caller and starts pending; dine-in requires a table
// (and its validation code, when configured) and goes straight to the
// kitchen queue.
func (s *Service) CreateOrder(ctx context.Context, caller domain.Caller, cmd interfaces.CreateOrderCommand) (*domain.Order, error) {
	if len(cmd.Items) == 0 {
		return nil, domain.Validationf("order must contain at least one item")
	}
	for i, item := range cmd.Items {
		if item.Quantity < 1 {
			return nil, domain.Validationf("items[%d]: quantity must be positive", i)
		}
	}

	orderType, err := domain.ParseOrderType(cmd.Type)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		Type:      orderType,
		CreatedAt: time.Now().UTC(),
	}

	switch orderType {
	case domain.OrderTypeTakeaway:
		if !caller.Authenticated {
			return nil, fmt.Errorf("%w: login is required for takeaway orders", domain.ErrUnauthorized)
		}
		userID := caller.UserID
		order.UserID = &userID
		// Takeaway is paid up front, so it waits for payment first.
		order.Status = domain.StatusPending

	case domain.OrderTypeDineIn:
		if cmd.TableID == nil {
			return nil, domain.Validationf("table is required for dine-in orders")
		}
		table, err := s.tables.FindByID(ctx, *cmd.TableID)
		if err != nil {
			return nil, err
		}
		if table.RequiresCode() {
			if cmd.ValidationCode == nil || *cmd.ValidationCode != *table.ValidationCode {
				return nil, domain.Validationf("incorrect table validation code")
			}
		}
		if caller.Authenticated {
			userID := caller.UserID
			order.UserID = &userID
		}
		order.TableID = &table.ID
		// Dine-in pays at the end, so the order goes straight to the
		// kitchen.
		order.Status = domain.StatusQueued
	}

	// Snapshot menu prices into the items. A later price change must
	// not affect this order.
	for _, item := range cmd.Items {
		dish, err := s.dishes.FindByID(ctx, item.DishID)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, domain.OrderItem{
			DishID:       dish.ID,
			Quantity:     item.Quantity,
			Price:        dish.Price,
			Observations: item.Observations,
		})
	}
	order.CalculateTotal()

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("order_create_failed", "Failed to persist order", "", nil, err)
		return nil, err
	}

	s.logger.Debug("order_created", "Order created", "", map[string]any{
		"order_id":    order.ID,
		"type":        order.Type,
		"status":      order.Status,
		"total_price": order.TotalPrice.StringFixed(2),
	})

	return order, nil
}

// GetOrder returns a single order. Staff see any order; customers only
// their own. Orders that exist but belong to someone else surface as
// not found so their existence does not leak.
func (s *Service) GetOrder(ctx context.Context, caller domain.Caller, id int) (*domain.Order, error) {
	if !caller.Authenticated {
		return nil, domain.ErrNotFound
	}
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.Staff() || order.OwnedBy(caller.UserID) {
		return order, nil
	}
	return nil, domain.ErrNotFound
}

// ListOrders evaluates the scope chain in priority order: kitchen mode,
// staff, authenticated customer, anonymous.
func (s *Service) ListOrders(ctx context.Context, caller domain.Caller, mode string) ([]*domain.Order, error) {
	if mode == KitchenMode {
		if !caller.Staff() {
			return nil, fmt.Errorf("%w: only staff can access the kitchen view", domain.ErrForbidden)
		}
		// FIFO contract: the kitchen prepares in arrival order.
		return s.orders.List(ctx, interfaces.OrderFilter{
			Statuses:    []domain.OrderStatus{domain.StatusQueued, domain.StatusPreparing},
			OldestFirst: true,
		})
	}

	if caller.Staff() {
		return s.orders.List(ctx, interfaces.OrderFilter{})
	}

	if caller.Authenticated {
		userID := caller.UserID
		return s.orders.List(ctx, interfaces.OrderFilter{UserID: &userID})
	}

	// Anonymous callers get an empty listing, never an error.
	return []*domain.Order{}, nil
}

// MarkReady sets the order to ready. The write is intentionally
// unconditional: no precondition on the current status is checked, and
// reapplying it is a no-op.
func (s *Service) MarkReady(ctx context.Context, caller domain.Caller, id int) (*domain.Order, error) {
	return s.setStatus(ctx, caller, id, domain.StatusReady, "order_marked_ready")
}

// MarkCompleted sets the order to completed, unconditionally.
func (s *Service) MarkCompleted(ctx context.Context, caller domain.Caller, id int) (*domain.Order, error) {
	return s.setStatus(ctx, caller, id, domain.StatusCompleted, "order_marked_completed")
}

// Cancel sets the order to canceled, unconditionally.
func (s *Service) Cancel(ctx context.Context, caller domain.Caller, id int) (*domain.Order, error) {
	return s.setStatus(ctx, caller, id, domain.StatusCanceled, "order_canceled")
}

func (s *Service) setStatus(ctx context.Context, caller domain.Caller, id int, status domain.OrderStatus, action string) (*domain.Order, error) {
	if !caller.Staff() {
		return nil, fmt.Errorf("%w: staff role required", domain.ErrForbidden)
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status

	s.logger.Debug(action, "Order status updated", "", map[string]any{
		"order_id": id,
		"status":   status,
	})

	return order, nil
}
