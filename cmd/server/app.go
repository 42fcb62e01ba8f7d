package main

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/bmsprints/bmsprints/internal/handlers"
	"github.com/bmsprints/bmsprints/internal/report"
	"github.com/bmsprints/bmsprints/internal/store"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
	log *zap.Logger
}

// NewApp creates the application with all routes configured.
func NewApp(st *store.Store, engine *report.Engine, log *zap.Logger) *App {
	app := &App{mux: http.NewServeMux(), log: log}

	pages := handlers.NewPageHandler(st, engine)
	catalog := handlers.NewCatalogHandler(st)
	orders := handlers.NewOrderHandler(st)
	costs := handlers.NewCostHandler(st)
	rep := handlers.NewReportHandler(engine)

	// Storefront
	app.mux.HandleFunc("GET /{$}", pages.Home)
	app.mux.HandleFunc("GET /services", pages.Services)
	app.mux.HandleFunc("GET /services/{id}", pages.ServiceDetail)
	app.mux.HandleFunc("GET /dashboard", pages.Dashboard)

	// Catalog
	app.mux.HandleFunc("POST /catalog", catalog.Add)
	app.mux.HandleFunc("POST /catalog/save", catalog.Save)
	app.mux.HandleFunc("POST /catalog/reset", catalog.Reset)
	app.mux.HandleFunc("POST /catalog/{index}/field", catalog.EditField)
	app.mux.HandleFunc("POST /catalog/{index}/delete", catalog.Delete)

	// Order ledger
	app.mux.HandleFunc("POST /orders", orders.Add)
	app.mux.HandleFunc("POST /orders/{index}/paid", orders.TogglePaid)
	app.mux.HandleFunc("POST /orders/{index}/delete", orders.Delete)

	// Cost ledgers
	app.mux.HandleFunc("POST /costs/recurring", costs.AddRecurring)
	app.mux.HandleFunc("POST /costs/recurring/{id}/delete", costs.RemoveRecurring)
	app.mux.HandleFunc("POST /costs/onetime", costs.AddOneTime)
	app.mux.HandleFunc("POST /costs/onetime/{id}/delete", costs.RemoveOneTime)

	// Report
	app.mux.HandleFunc("POST /report", rep.Generate)
	app.mux.HandleFunc("GET /report/export", rep.Export)

	// Exports
	app.mux.HandleFunc("GET /export/services", catalog.Export)
	app.mux.HandleFunc("GET /export/orders", orders.Export)

	// Static files (service images, stylesheet)
	app.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	return app
}

// ServeHTTP implements http.Handler with request logging applied.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	a.mux.ServeHTTP(w, r)
	a.log.Info("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Duration("took", time.Since(start)),
	)
}
