package service

import (
	"context"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/logger"
	"whites-admin-backend/internal/repository"
	"whites-admin-backend/internal/validation"
)

type vehicleService struct {
	vehicleRepo     repository.VehicleRepository
	maintenanceRepo repository.MaintenanceRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, maintenanceRepo repository.MaintenanceRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, maintenanceRepo: maintenanceRepo}
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.LoadAll(ctx)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) AddVehicle(ctx context.Context, v *domain.Vehicle) (string, error) {
	if err := validation.VehicleData(v); err != nil {
		return "", err
	}
	return s.vehicleRepo.Add(ctx, v)
}

// UpdateVehicle overwrites the full row. The record must be complete and
// valid before the write so an omitted field can never silently null a
// column.
func (s *vehicleService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if err := validation.VehicleData(v); err != nil {
		return err
	}
	return s.vehicleRepo.Update(ctx, v)
}

func (s *vehicleService) UpdateVehicleMileage(ctx context.Context, id string, mileage float64) error {
	if !validation.ValidMileage(mileage) {
		return &domain.ValidationError{Reasons: []string{"invalid mileage"}}
	}
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	v.Mileage = mileage
	return s.vehicleRepo.Update(ctx, v)
}

// DeleteVehicle removes the vehicle, then cascades to its maintenance
// records. The two rewrites are separate table commits; there is no
// cross-table transaction.
func (s *vehicleService) DeleteVehicle(ctx context.Context, id string) error {
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.maintenanceRepo.DeleteByVehicle(ctx, id); err != nil {
		return err
	}
	logger.Info("Deleted vehicle and its maintenance records", "vehicle_id", id)
	return nil
}

func (s *vehicleService) ImportVehicles(ctx context.Context, rows []domain.Vehicle) (*domain.ImportReport, error) {
	return s.vehicleRepo.ImportBulk(ctx, rows)
}
