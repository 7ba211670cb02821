package service

import (
	"context"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/logger"
	"whites-admin-backend/internal/repository"
	"whites-admin-backend/internal/validation"
)

type machineService struct {
	machineRepo     repository.MachineRepository
	maintenanceRepo repository.MaintenanceRepository
}

func NewMachineService(machineRepo repository.MachineRepository, maintenanceRepo repository.MaintenanceRepository) MachineService {
	return &machineService{machineRepo: machineRepo, maintenanceRepo: maintenanceRepo}
}

func (s *machineService) ListMachines(ctx context.Context) ([]domain.Machine, error) {
	return s.machineRepo.LoadAll(ctx)
}

func (s *machineService) GetMachine(ctx context.Context, id string) (*domain.Machine, error) {
	return s.machineRepo.GetByID(ctx, id)
}

func (s *machineService) AddMachine(ctx context.Context, m *domain.Machine) (string, error) {
	if err := validation.MachineData(m); err != nil {
		return "", err
	}
	return s.machineRepo.Add(ctx, m)
}

func (s *machineService) UpdateMachine(ctx context.Context, m *domain.Machine) error {
	if err := validation.MachineData(m); err != nil {
		return err
	}
	return s.machineRepo.Update(ctx, m)
}

// DeleteMachine cascades to maintenance records the same way vehicles do;
// both fleets share the maintenance table's vehicle_id column.
func (s *machineService) DeleteMachine(ctx context.Context, id string) error {
	if err := s.machineRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.maintenanceRepo.DeleteByVehicle(ctx, id); err != nil {
		return err
	}
	logger.Info("Deleted machine and its maintenance records", "machine_id", id)
	return nil
}

func (s *machineService) ImportMachines(ctx context.Context, rows []domain.Machine) (*domain.ImportReport, error) {
	return s.machineRepo.ImportBulk(ctx, rows)
}
