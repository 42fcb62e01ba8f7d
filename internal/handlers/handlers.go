// Package handlers wires the HTTP surface to the store mutators and the
// report engine. Every mutating endpoint serves two paths: JSON when the
// client asks for it, otherwise an HTML form flow that redirects back to
// the dashboard.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bmsprints/bmsprints/internal/httpx"
	"github.com/bmsprints/bmsprints/internal/store"
)

// indexParam reads the {index} path segment.
func indexParam(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("index"))
}

// idParam reads the {id} path segment.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// confirmed reports whether the destructive action carried the explicit
// confirmation field the UI sets after its confirm dialog.
func confirmed(r *http.Request) bool {
	return r.FormValue("confirm") == "1"
}

// requireConfirm guards a destructive endpoint; it writes the response
// and returns false when confirmation is missing.
func requireConfirm(w http.ResponseWriter, r *http.Request) bool {
	if confirmed(r) {
		return true
	}
	if httpx.WantsJSON(r) {
		httpx.JSONError(w, http.StatusBadRequest, "confirmation_required", nil)
	} else {
		http.Error(w, "confirmation required", http.StatusBadRequest)
	}
	return false
}

// storeError maps a store mutation error onto the response: validation
// and lookup failures abort with a user-visible notice, anything else is
// a storage failure.
func storeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var code string
	switch {
	case errors.Is(err, store.ErrNameRequired):
		status, code = http.StatusBadRequest, "name_required"
	case errors.Is(err, store.ErrNoService):
		status, code = http.StatusBadRequest, "no_service_selected"
	case errors.Is(err, store.ErrUnknownField):
		status, code = http.StatusBadRequest, "unknown_field"
	case errors.Is(err, store.ErrIndexOutOfRange):
		status, code = http.StatusNotFound, "not_found"
	default:
		status, code = http.StatusInternalServerError, "storage_failed"
	}
	if httpx.WantsJSON(r) {
		httpx.JSONError(w, status, code, nil)
		return
	}
	http.Error(w, err.Error(), status)
}

// redirectBack finishes a successful HTML form post.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// serveCSV writes a delimited-text document as a file download.
func serveCSV(w http.ResponseWriter, filename string, doc []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := w.Write(doc); err != nil {
		_ = err
	}
}
