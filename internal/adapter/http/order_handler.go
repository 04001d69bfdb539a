package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MuriloBarros304/web-menu/internal/adapter/logger"
	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

type OrderHandler struct {
	service interfaces.OrderService
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.OrderService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{service: service, logger: logger}
}

type createOrderRequest struct {
	Type           string             `json:"type"`
	Table          *int               `json:"table,omitempty"`
	ValidationCode *string            `json:"validation_code,omitempty"`
	Items          []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	Dish         int     `json:"dish"`
	Quantity     int     `json:"quantity"`
	Observations *string `json:"observations,omitempty"`
}

type orderResponse struct {
	ID               int                 `json:"id"`
	User             *int                `json:"user"`
	CreatedAt        time.Time           `json:"created_at"`
	TotalPrice       string              `json:"total_price"`
	Type             string              `json:"type"`
	Table            *int                `json:"table"`
	Status           string              `json:"status"`
	PaymentConfirmed bool                `json:"payment_confirmed"`
	Items            []orderItemResponse `json:"items"`
}

type orderItemResponse struct {
	ID           int     `json:"id"`
	Dish         int     `json:"dish"`
	Quantity     int     `json:"quantity"`
	Price        string  `json:"price"`
	Observations *string `json:"observations"`
}

func toOrderResponse(order *domain.Order) orderResponse {
	items := make([]orderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = orderItemResponse{
			ID:           item.ID,
			Dish:         item.DishID,
			Quantity:     item.Quantity,
			Price:        item.Price.StringFixed(2),
			Observations: item.Observations,
		}
	}
	return orderResponse{
		ID:               order.ID,
		User:             order.UserID,
		CreatedAt:        order.CreatedAt,
		TotalPrice:       order.TotalPrice.StringFixed(2),
		Type:             string(order.Type),
		Table:            order.TableID,
		Status:           string(order.Status),
		PaymentConfirmed: order.PaymentConfirmed,
		Items:            items,
	}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	cmd := interfaces.CreateOrderCommand{
		Type:           req.Type,
		TableID:        req.Table,
		ValidationCode: req.ValidationCode,
	}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, interfaces.CreateOrderItemCommand{
			DishID:       item.Dish,
			Quantity:     item.Quantity,
			Observations: item.Observations,
		})
	}

	order, err := h.service.CreateOrder(r.Context(), CallerFrom(r.Context()), cmd)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	orders, err := h.service.ListOrders(r.Context(), CallerFrom(r.Context()), mode)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	resp := make([]orderResponse, len(orders))
	for i, order := range orders {
		resp[i] = toOrderResponse(order)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	order, err := h.service.GetOrder(r.Context(), CallerFrom(r.Context()), id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) MarkReady(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.MarkReady)
}

func (h *OrderHandler) MarkCompleted(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.MarkCompleted)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Cancel)
}

func (h *OrderHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, caller domain.Caller, id int) (*domain.Order, error)) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	order, err := op(r.Context(), CallerFrom(r.Context()), id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderResponse(order))
}
