package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/bmsprints/bmsprints/internal/export"
	"github.com/bmsprints/bmsprints/internal/httpx"
	"github.com/bmsprints/bmsprints/internal/report"
)

type ReportHandler struct {
	Engine *report.Engine
}

func NewReportHandler(e *report.Engine) *ReportHandler { return &ReportHandler{Engine: e} }

const dateLayout = "2006-01-02"

// Generate runs the report over the optional from/to bounds. The result
// is retained by the engine; the HTML flow redirects to the dashboard,
// which renders the retained summary.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	from, err := parseBound(r.FormValue("from"))
	if err != nil {
		badDate(w, r, "from")
		return
	}
	to, err := parseBound(r.FormValue("to"))
	if err != nil {
		badDate(w, r, "to")
		return
	}
	res := h.Engine.Generate(from, to)
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, res.Summary)
		return
	}
	redirectBack(w, r)
}

// Export downloads the last generated report's order rows. Without a
// prior Generate this is a lookup failure, not an empty document.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	res, err := h.Engine.Last()
	if errors.Is(err, report.ErrNoReport) {
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusBadRequest, "no_report", nil)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	serveCSV(w, export.ReportFilename(res.GeneratedAt), export.Orders(res.Orders))
}

// parseBound turns an optional yyyy-mm-dd form value into a bound.
func parseBound(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, v, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func badDate(w http.ResponseWriter, r *http.Request, field string) {
	if httpx.WantsJSON(r) {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_date", map[string]string{field: "want yyyy-mm-dd"})
		return
	}
	http.Error(w, "invalid "+field+" date", http.StatusBadRequest)
}
