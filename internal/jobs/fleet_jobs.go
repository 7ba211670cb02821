package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"whites-admin-backend/internal/export"
	"whites-admin-backend/internal/logger"
	"whites-admin-backend/internal/service"
)

// SendOverdueRentalReminders emails the operator a digest of every active
// rental past its expected return date
func (jr *JobRunner) SendOverdueRentalReminders() {
	jr.runWithRecovery("SendOverdueRentalReminders", func() {
		ctx := context.Background()

		rentals, err := jr.services.Rental.ListRentals(ctx)
		if err != nil {
			logger.Error("Failed to load rentals", "error", err)
			return
		}
		equipment, err := jr.services.Equipment.ListEquipment(ctx)
		if err != nil {
			logger.Error("Failed to load equipment", "error", err)
			return
		}

		board := service.ClassifyActiveRentals(rentals, equipment, time.Now())
		if len(board.Overdue) == 0 {
			logger.Info("No overdue rentals, skipping reminder")
			return
		}

		to := jr.config.SMTP.OperatorEmail
		if to == "" {
			logger.Warn("No operator email configured, skipping reminder",
				"overdue_count", len(board.Overdue))
			return
		}

		if err := jr.services.Email.SendOverdueRentalReminder(ctx, to, board.Overdue); err != nil {
			logger.Error("Failed to send overdue rental reminder", "error", err)
			return
		}

		logger.Info("Overdue rental reminder sent",
			"to", to,
			"overdue_count", len(board.Overdue))
	})
}

// BackupDataFiles snapshots every data file into a timestamped zip archive
func (jr *JobRunner) BackupDataFiles() {
	jr.runWithRecovery("BackupDataFiles", func() {
		ctx := context.Background()

		tables, err := jr.store.Tables(ctx)
		if err != nil {
			logger.Error("Failed to read data files for backup", "error", err)
			return
		}

		archive, err := export.TablesToZip(tables)
		if err != nil {
			logger.Error("Failed to build backup archive", "error", err)
			return
		}

		if err := os.MkdirAll(jr.config.Backup.Dir, 0o755); err != nil {
			logger.Error("Failed to create backup directory",
				"dir", jr.config.Backup.Dir, "error", err)
			return
		}

		name := fmt.Sprintf("backup-%s.zip", time.Now().UTC().Format("20060102-150405"))
		path := filepath.Join(jr.config.Backup.Dir, name)
		if err := os.WriteFile(path, archive, 0o644); err != nil {
			logger.Error("Failed to write backup archive", "path", path, "error", err)
			return
		}

		logger.Info("Data files backed up", "path", path, "tables", len(tables))
	})
}
