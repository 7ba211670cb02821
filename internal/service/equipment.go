package service

import (
	"context"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/logger"
	"whites-admin-backend/internal/repository"
	"whites-admin-backend/internal/validation"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	rentalRepo    repository.RentalRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, rentalRepo repository.RentalRepository) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo, rentalRepo: rentalRepo}
}

func (s *equipmentService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.LoadAll(ctx)
}

func (s *equipmentService) GetEquipment(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *equipmentService) AddEquipment(ctx context.Context, e *domain.Equipment) (string, error) {
	if err := validation.EquipmentData(e); err != nil {
		return "", err
	}
	return s.equipmentRepo.Add(ctx, e)
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, e *domain.Equipment) error {
	if err := validation.EquipmentData(e); err != nil {
		return err
	}
	return s.equipmentRepo.Update(ctx, e)
}

// DeleteEquipment removes the equipment, then cascades to every rental that
// referenced it.
func (s *equipmentService) DeleteEquipment(ctx context.Context, id string) error {
	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.rentalRepo.DeleteByEquipment(ctx, id); err != nil {
		return err
	}
	logger.Info("Deleted equipment and its rentals", "equipment_id", id)
	return nil
}

func (s *equipmentService) ImportEquipment(ctx context.Context, rows []domain.Equipment) (*domain.ImportReport, error) {
	return s.equipmentRepo.ImportBulk(ctx, rows)
}
