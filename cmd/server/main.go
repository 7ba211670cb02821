package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "whites-admin-backend/internal/api/http"
	"whites-admin-backend/internal/config"
	"whites-admin-backend/internal/logger"
	"whites-admin-backend/internal/repository/csvstore"
	"whites-admin-backend/internal/security"
	"whites-admin-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Whites Admin Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Data configuration", "dir", cfg.Data.Dir)

	// Initialize Repositories
	store, err := csvstore.NewStore(cfg.Data.Dir)
	if err != nil {
		logger.Error("Failed to initialize data store", "error", err)
		log.Fatalf("Failed to initialize data store: %v", err)
	}
	logger.Info("Data store initialized", "dir", cfg.Data.Dir)

	// Initialize Security
	creds, err := security.NewStaticCredentials(cfg.Auth.Username, cfg.Auth.PasswordHash, cfg.Auth.Password)
	if err != nil {
		logger.Error("Failed to initialize credentials", "error", err)
		log.Fatalf("Failed to initialize credentials: %v", err)
	}
	sessions := security.NewSessionManager(cfg.Auth.SessionSecret, time.Duration(cfg.Auth.SessionTTLHours)*time.Hour)

	// Initialize Services
	authSvc := service.NewAuthService(creds, sessions)
	vehicleSvc := service.NewVehicleService(store.Vehicles, store.Maintenance)
	machineSvc := service.NewMachineService(store.Machines, store.Maintenance)
	maintenanceSvc := service.NewMaintenanceService(store.Maintenance)
	equipmentSvc := service.NewEquipmentService(store.Equipment, store.Rentals)
	rentalSvc := service.NewRentalService(store.Rentals, store.Equipment)

	// Initialize HTTP handlers
	handlers := httpapi.NewHandlers(authSvc, vehicleSvc, machineSvc, maintenanceSvc, equipmentSvc, rentalSvc, store)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      handlers.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
