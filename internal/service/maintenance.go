package service

import (
	"context"
	"sort"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/repository"
	"whites-admin-backend/internal/validation"
)

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
}

func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository) MaintenanceService {
	return &maintenanceService{maintenanceRepo: maintenanceRepo}
}

func (s *maintenanceService) ListRecords(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	return s.maintenanceRepo.LoadAll(ctx)
}

func (s *maintenanceService) GetRecord(ctx context.Context, id string) (*domain.MaintenanceRecord, error) {
	return s.maintenanceRepo.GetByID(ctx, id)
}

func (s *maintenanceService) AddRecord(ctx context.Context, r *domain.MaintenanceRecord) (string, error) {
	if err := validation.MaintenanceData(r); err != nil {
		return "", err
	}
	return s.maintenanceRepo.Add(ctx, r)
}

func (s *maintenanceService) UpdateRecord(ctx context.Context, r *domain.MaintenanceRecord) error {
	if err := validation.MaintenanceData(r); err != nil {
		return err
	}
	return s.maintenanceRepo.Update(ctx, r)
}

func (s *maintenanceService) DeleteRecord(ctx context.Context, id string) error {
	return s.maintenanceRepo.Delete(ctx, id)
}

// VehicleHistory returns the service log for one vehicle or machine, most
// recent first. Dates sort lexically because they are stored as YYYY-MM-DD.
func (s *maintenanceService) VehicleHistory(ctx context.Context, vehicleID string) ([]domain.MaintenanceRecord, error) {
	records, err := s.maintenanceRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	var history []domain.MaintenanceRecord
	for _, r := range records {
		if r.VehicleID == vehicleID {
			history = append(history, r)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})
	return history, nil
}

func (s *maintenanceService) ImportRecords(ctx context.Context, rows []domain.MaintenanceRecord) (*domain.ImportReport, error) {
	return s.maintenanceRepo.ImportBulk(ctx, rows)
}
