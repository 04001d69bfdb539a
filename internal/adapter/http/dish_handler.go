package http

import (
	"net/http"

	"github.com/MuriloBarros304/web-menu/internal/adapter/logger"
	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

type DishHandler struct {
	service interfaces.MenuService
	logger  logger.Logger
}

func NewDishHandler(service interfaces.MenuService, logger logger.Logger) *DishHandler {
	return &DishHandler{service: service, logger: logger}
}

type dishRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type dishResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

func toDishResponse(dish *domain.Dish) dishResponse {
	return dishResponse{
		ID:          dish.ID,
		Name:        dish.Name,
		Description: dish.Description,
		Price:       dish.Price.StringFixed(2),
	}
}

func (h *DishHandler) List(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.service.ListDishes(r.Context())
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	resp := make([]dishResponse, len(dishes))
	for i, dish := range dishes {
		resp[i] = toDishResponse(dish)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *DishHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	dish, err := h.service.GetDish(r.Context(), id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, toDishResponse(dish))
}

func (h *DishHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dishRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	dish, err := h.service.CreateDish(r.Context(), CallerFrom(r.Context()), interfaces.SaveDishCommand(req))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, toDishResponse(dish))
}

func (h *DishHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	var req dishRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	dish, err := h.service.UpdateDish(r.Context(), CallerFrom(r.Context()), id, interfaces.SaveDishCommand(req))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, toDishResponse(dish))
}

func (h *DishHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if err := h.service.DeleteDish(r.Context(), CallerFrom(r.Context()), id); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
