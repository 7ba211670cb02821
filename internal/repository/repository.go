package repository

import (
	"context"

	"whites-admin-backend/internal/domain"
)

// Each repository owns exactly one backing table. Mutations fully rewrite the
// table; cascade deletes across tables are orchestrated by the service layer,
// never inside a repository.

type VehicleRepository interface {
	LoadAll(ctx context.Context) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Add(ctx context.Context, v *domain.Vehicle) (string, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
	ImportBulk(ctx context.Context, rows []domain.Vehicle) (*domain.ImportReport, error)
	Table(ctx context.Context) (*domain.Table, error)
}

type MachineRepository interface {
	LoadAll(ctx context.Context) ([]domain.Machine, error)
	GetByID(ctx context.Context, id string) (*domain.Machine, error)
	Add(ctx context.Context, m *domain.Machine) (string, error)
	Update(ctx context.Context, m *domain.Machine) error
	Delete(ctx context.Context, id string) error
	ImportBulk(ctx context.Context, rows []domain.Machine) (*domain.ImportReport, error)
	Table(ctx context.Context) (*domain.Table, error)
}

type MaintenanceRepository interface {
	LoadAll(ctx context.Context) ([]domain.MaintenanceRecord, error)
	GetByID(ctx context.Context, id string) (*domain.MaintenanceRecord, error)
	Add(ctx context.Context, r *domain.MaintenanceRecord) (string, error)
	Update(ctx context.Context, r *domain.MaintenanceRecord) error
	Delete(ctx context.Context, id string) error
	DeleteByVehicle(ctx context.Context, vehicleID string) error
	ImportBulk(ctx context.Context, rows []domain.MaintenanceRecord) (*domain.ImportReport, error)
	Table(ctx context.Context) (*domain.Table, error)
}

type EquipmentRepository interface {
	LoadAll(ctx context.Context) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	Add(ctx context.Context, e *domain.Equipment) (string, error)
	Update(ctx context.Context, e *domain.Equipment) error
	Delete(ctx context.Context, id string) error
	ImportBulk(ctx context.Context, rows []domain.Equipment) (*domain.ImportReport, error)
	Table(ctx context.Context) (*domain.Table, error)
}

type RentalRepository interface {
	LoadAll(ctx context.Context) ([]domain.Rental, error)
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	Add(ctx context.Context, r *domain.Rental) (string, error)
	Update(ctx context.Context, r *domain.Rental) error
	Delete(ctx context.Context, id string) error
	DeleteByEquipment(ctx context.Context, equipmentID string) error
	ImportBulk(ctx context.Context, rows []domain.Rental) (*domain.ImportReport, error)
	Table(ctx context.Context) (*domain.Table, error)
}
