package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"whites-admin-backend/internal/config"
	"whites-admin-backend/internal/jobs"
	"whites-admin-backend/internal/logger"
	"whites-admin-backend/internal/repository/csvstore"
	"whites-admin-backend/internal/scheduler"
	"whites-admin-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-overdue-reminders', 'backup-data-files', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Whites Admin Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Repositories
	store, err := csvstore.NewStore(cfg.Data.Dir)
	if err != nil {
		logger.Error("Failed to initialize data store", "error", err)
		log.Fatalf("Failed to initialize data store: %v", err)
	}
	logger.Info("Data store initialized", "dir", cfg.Data.Dir)

	// Initialize Services
	emailService := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	rentalService := service.NewRentalService(store.Rentals, store.Equipment)
	equipmentService := service.NewEquipmentService(store.Equipment, store.Rentals)

	jobServices := &jobs.Services{
		Email:     emailService,
		Rental:    rentalService,
		Equipment: equipmentService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "send-overdue-reminders":
		jobRunner.SendOverdueRentalReminders()
	case "backup-data-files":
		jobRunner.BackupDataFiles()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - send-overdue-reminders\n")
		fmt.Printf("  - backup-data-files\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
	}
}
