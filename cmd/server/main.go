package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bmsprints/bmsprints/internal/config"
	"github.com/bmsprints/bmsprints/internal/report"
	"github.com/bmsprints/bmsprints/internal/storage"
	"github.com/bmsprints/bmsprints/internal/store"
	"github.com/bmsprints/bmsprints/internal/zlog"
)

var seedOnlyFlag = flag.Bool("seed-only", false, "Seed default services and exit")

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	// Load configuration from environment
	cfg := config.Load()

	log := zlog.New(cfg.LogFile)
	defer log.Sync()

	db, err := storage.Open(cfg.DataPath, log)
	if err != nil {
		log.Fatal("open storage", zap.Error(err))
	}
	defer db.Close()

	st := store.New(db)
	if err := st.SeedDefaults(); err != nil {
		log.Fatal("seed defaults", zap.Error(err))
	}
	if *seedOnlyFlag {
		log.Info("seed completed")
		return
	}

	engine := report.NewEngine(st)
	app := NewApp(st, engine, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server starting", zap.String("port", cfg.Port), zap.String("data", cfg.DataPath))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("server stopped gracefully")
}
