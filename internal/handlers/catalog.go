package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/spf13/cast"

	"github.com/bmsprints/bmsprints/internal/export"
	"github.com/bmsprints/bmsprints/internal/httpx"
	"github.com/bmsprints/bmsprints/internal/store"
	"github.com/bmsprints/bmsprints/internal/validation"
)

type CatalogHandler struct {
	Store *store.Store
}

func NewCatalogHandler(st *store.Store) *CatalogHandler { return &CatalogHandler{Store: st} }

// Add creates a catalog entry. Quantity is not an input: new services
// always start at the unlimited sentinel.
func (h *CatalogHandler) Add(w http.ResponseWriter, r *http.Request) {
	var name, unit, img string
	var price float64
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var input struct {
			Name  string  `json:"name"`
			Price float64 `json:"price"`
			Unit  string  `json:"unit"`
			Img   string  `json:"img"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return
		}
		name, price, unit, img = input.Name, input.Price, input.Unit, input.Img
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		name = r.FormValue("name")
		price = cast.ToFloat64(r.FormValue("price"))
		unit = r.FormValue("unit")
		img = r.FormValue("img")
	}

	v := validation.Violations{}
	validation.Required("name", name, v)
	validation.NonNegativeFloat("price", price, v)
	if !v.Empty() {
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
			return
		}
		http.Error(w, "invalid service input", http.StatusBadRequest)
		return
	}

	svc, err := h.Store.AddService(name, price, unit, img)
	if err != nil {
		storeError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, svc)
		return
	}
	redirectBack(w, r)
}

// EditField writes a single field of the entry at {index} and persists
// immediately; there is no separate save step for edits.
func (h *CatalogHandler) EditField(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_index", nil)
		return
	}
	field := r.FormValue("field")
	value := r.FormValue("value")
	if err := h.Store.EditServiceField(index, field, value); err != nil {
		storeError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, h.Store.Services()[index])
		return
	}
	redirectBack(w, r)
}

// Delete removes the entry at {index} after explicit confirmation.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_index", nil)
		return
	}
	if !requireConfirm(w, r) {
		return
	}
	if err := h.Store.DeleteService(index); err != nil {
		storeError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"deleted": index})
		return
	}
	redirectBack(w, r)
}

// Save re-persists the catalog. Kept from the original workflow even
// though every mutation already writes through.
func (h *CatalogHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.SaveCatalog(); err != nil {
		storeError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"saved": true})
		return
	}
	redirectBack(w, r)
}

// Reset discards the catalog and reseeds the four defaults.
func (h *CatalogHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !requireConfirm(w, r) {
		return
	}
	if err := h.Store.ResetCatalog(); err != nil {
		storeError(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, h.Store.Services())
		return
	}
	redirectBack(w, r)
}

// Export downloads the catalog document.
func (h *CatalogHandler) Export(w http.ResponseWriter, r *http.Request) {
	services := h.Store.Services()
	if len(services) == 0 {
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusBadRequest, "no_services", nil)
			return
		}
		http.Error(w, "no services", http.StatusBadRequest)
		return
	}
	serveCSV(w, export.FilenameServices, export.Services(services))
}
