package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/postgres"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/storage"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/app/auth"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/app/backoffice"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/app/ledger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/app/pos"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/audit"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/catalog"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/config"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/interfaces"

	httpAdapter "github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/http"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	ctx := context.Background()
	lgr := logger.New("pos")
	defaults := catalog.DefaultState()

	var store interfaces.Store
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := postgres.Connect(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		store = postgres.NewStore(db, defaults)
		lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
			"host": cfg.Database.Host,
			"db":   cfg.Database.Database,
		})
	default:
		fileStore, err := storage.NewFileStore(cfg.Storage.DataDir, defaults, lgr)
		if err != nil {
			log.Fatalf("Failed to open data directory: %v", err)
		}
		store = fileStore
		lgr.Info("store_opened", "File store opened", "startup", map[string]interface{}{
			"dir": cfg.Storage.DataDir,
		})
	}
	defer store.Close()

	state, err := store.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load state: %v", err)
	}

	// Wire the services. The audit trail and session are cross-cutting
	// collaborators consumed by everything else.
	trail := audit.NewTrail(state.AuditLog, store, lgr)
	backofficeSvc := backoffice.NewService(state, store, trail, nil, lgr)
	authSvc := auth.NewService(backofficeSvc, cfg.Business.EmergencyCode, trail, lgr)
	backofficeSvc.SetSession(authSvc)
	ledgerSvc := ledger.NewService(state, backofficeSvc, store, trail, authSvc, lgr)

	cat := catalog.Default()
	posSvc := pos.NewService(cat, ledgerSvc, trail, authSvc, lgr)

	posHandler := httpAdapter.NewPosHandler(posSvc, cat, lgr)
	adminHandler := httpAdapter.NewAdminHandler(ledgerSvc, backofficeSvc, trail)
	authHandler := httpAdapter.NewAuthHandler(authSvc)

	handler := httpAdapter.NewRouter(posHandler, adminHandler, authHandler, authSvc, lgr)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("POS started on port %d", cfg.Server.Port), "startup", map[string]interface{}{
		"port":    cfg.Server.Port,
		"storage": cfg.Storage.Driver,
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down POS", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}
