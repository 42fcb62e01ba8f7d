package handlers

import (
	"net/http"
	"strconv"

	"github.com/bmsprints/bmsprints/internal/report"
	"github.com/bmsprints/bmsprints/internal/store"
	"github.com/bmsprints/bmsprints/internal/view"
)

// PageHandler renders the HTML views. Every page derives entirely from
// store state plus the engine's retained report; mutations never render
// directly, they redirect here.
type PageHandler struct {
	Store  *store.Store
	Engine *report.Engine
}

func NewPageHandler(st *store.Store, e *report.Engine) *PageHandler {
	return &PageHandler{Store: st, Engine: e}
}

// Home shows the storefront with the top four services.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	services := h.Store.Services()
	if len(services) > 4 {
		services = services[:4]
	}
	h.render(w, "index.html", map[string]any{"Services": services})
}

// Services shows the full public catalog grid.
func (h *PageHandler) Services(w http.ResponseWriter, r *http.Request) {
	h.render(w, "services.html", map[string]any{"Services": h.Store.Services()})
}

// ServiceDetail shows one service looked up by id.
func (h *PageHandler) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	svc, ok := h.Store.ServiceByID(id)
	if !ok {
		http.Error(w, "service not found", http.StatusNotFound)
		return
	}
	h.render(w, "service_detail.html", map[string]any{"Service": svc})
}

// Dashboard is the management view: catalog table, order ledger, cost
// lists and the report panel (showing the last generated report, if any).
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Services":  h.Store.Services(),
		"Orders":    h.Store.Orders(),
		"Recurring": h.Store.Recurring(),
		"OneTime":   h.Store.OneTime(),
	}
	if res, err := h.Engine.Last(); err == nil {
		data["Report"] = res.Summary
	}
	h.render(w, "dashboard.html", data)
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data map[string]any) {
	if err := view.Render(w, name, data); err != nil {
		http.Error(w, "failed to render template: "+err.Error(), http.StatusInternalServerError)
	}
}
