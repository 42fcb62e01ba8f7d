package handlers

import (
	"net/http"

	"github.com/spf13/cast"

	"github.com/bmsprints/bmsprints/internal/httpx"
	"github.com/bmsprints/bmsprints/internal/store"
)

type CostHandler struct {
	Store *store.Store
}

func NewCostHandler(st *store.Store) *CostHandler { return &CostHandler{Store: st} }

// AddRecurring records a persisted monthly cost.
func (h *CostHandler) AddRecurring(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	c, err := h.Store.AddRecurring(r.FormValue("name"), cast.ToFloat64(r.FormValue("amount")))
	if err != nil {
		storeError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, c)
		return
	}
	redirectBack(w, r)
}

// RemoveRecurring drops the recurring cost with path id.
func (h *CostHandler) RemoveRecurring(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	if err := h.Store.RemoveRecurring(id); err != nil {
		storeError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
		return
	}
	redirectBack(w, r)
}

// AddOneTime records a session-only cost for the next report run.
func (h *CostHandler) AddOneTime(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	c, err := h.Store.AddOneTime(r.FormValue("name"), cast.ToFloat64(r.FormValue("amount")))
	if err != nil {
		storeError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, c)
		return
	}
	redirectBack(w, r)
}

// RemoveOneTime drops the one-time cost with path id.
func (h *CostHandler) RemoveOneTime(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	h.Store.RemoveOneTime(id)
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
		return
	}
	redirectBack(w, r)
}
