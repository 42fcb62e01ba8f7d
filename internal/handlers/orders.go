package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/spf13/cast"

	"github.com/bmsprints/bmsprints/internal/export"
	"github.com/bmsprints/bmsprints/internal/httpx"
	"github.com/bmsprints/bmsprints/internal/store"
)

type OrderHandler struct {
	Store *store.Store
}

func NewOrderHandler(st *store.Store) *OrderHandler { return &OrderHandler{Store: st} }

// Add records an order against a catalog service. The service's name and
// price are snapshotted by the store; quantity clamps to 1.
func (h *OrderHandler) Add(w http.ResponseWriter, r *http.Request) {
	var customer string
	var serviceID int64
	var qty int
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var input struct {
			Customer  string `json:"customer"`
			ServiceID int64  `json:"serviceId"`
			Qty       int    `json:"qty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return
		}
		customer, serviceID, qty = input.Customer, input.ServiceID, input.Qty
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		customer = r.FormValue("customer")
		serviceID = cast.ToInt64(r.FormValue("service_id"))
		qty = cast.ToInt(r.FormValue("qty"))
	}

	o, err := h.Store.AddOrder(customer, serviceID, qty)
	if err != nil {
		storeError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, o)
		return
	}
	redirectBack(w, r)
}

// TogglePaid flips the paid flag of the order at {index}.
func (h *OrderHandler) TogglePaid(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_index", nil)
		return
	}
	if err := h.Store.TogglePaid(index); err != nil {
		storeError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, h.Store.Orders()[index])
		return
	}
	redirectBack(w, r)
}

// Delete removes the order at {index} after explicit confirmation.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_index", nil)
		return
	}
	if !requireConfirm(w, r) {
		return
	}
	if err := h.Store.DeleteOrder(index); err != nil {
		storeError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"deleted": index})
		return
	}
	redirectBack(w, r)
}

// Export downloads the full ledger document.
func (h *OrderHandler) Export(w http.ResponseWriter, r *http.Request) {
	orders := h.Store.Orders()
	if len(orders) == 0 {
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusBadRequest, "no_orders", nil)
			return
		}
		http.Error(w, "no orders", http.StatusBadRequest)
		return
	}
	serveCSV(w, export.FilenameOrders, export.Orders(orders))
}
