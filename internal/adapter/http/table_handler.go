package http

import (
	"net/http"

	"github.com/MuriloBarros304/web-menu/internal/adapter/logger"
	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

type TableHandler struct {
	service interfaces.TableService
	logger  logger.Logger
}

func NewTableHandler(service interfaces.TableService, logger logger.Logger) *TableHandler {
	return &TableHandler{service: service, logger: logger}
}

type tableRequest struct {
	Number         int     `json:"number"`
	Capacity       *int    `json:"capacity,omitempty"`
	IsAvailable    *bool   `json:"is_available,omitempty"`
	ValidationCode *string `json:"validation_code,omitempty"`
}

type tableResponse struct {
	ID             int     `json:"id"`
	Number         int     `json:"number"`
	Capacity       *int    `json:"capacity"`
	IsAvailable    bool    `json:"is_available"`
	ValidationCode *string `json:"validation_code"`
}

func toTableResponse(table *domain.Table) tableResponse {
	return tableResponse{
		ID:             table.ID,
		Number:         table.Number,
		Capacity:       table.Capacity,
		IsAvailable:    table.IsAvailable,
		ValidationCode: table.ValidationCode,
	}
}

func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	tables, err := h.service.ListTables(r.Context(), CallerFrom(r.Context()))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	resp := make([]tableResponse, len(tables))
	for i, table := range tables {
		resp[i] = toTableResponse(table)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	table, err := h.service.GetTable(r.Context(), CallerFrom(r.Context()), id)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, toTableResponse(table))
}

func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	table, err := h.service.CreateTable(r.Context(), CallerFrom(r.Context()), interfaces.SaveTableCommand(req))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, toTableResponse(table))
}

func (h *TableHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	var req tableRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	table, err := h.service.UpdateTable(r.Context(), CallerFrom(r.Context()), id, interfaces.SaveTableCommand(req))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, toTableResponse(table))
}

func (h *TableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	if err := h.service.DeleteTable(r.Context(), CallerFrom(r.Context()), id); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
