package csvstore

import (
	"context"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/repository"
)

// Store bundles every repository over one data directory. Construction
// creates any missing data files with their header rows.
type Store struct {
	Vehicles    repository.VehicleRepository
	Machines    repository.MachineRepository
	Maintenance repository.MaintenanceRepository
	Equipment   repository.EquipmentRepository
	Rentals     repository.RentalRepository
}

func NewStore(dataDir string) (*Store, error) {
	vehicles, err := NewVehicleRepository(dataDir)
	if err != nil {
		return nil, err
	}
	machines, err := NewMachineRepository(dataDir)
	if err != nil {
		return nil, err
	}
	maintenance, err := NewMaintenanceRepository(dataDir)
	if err != nil {
		return nil, err
	}
	equipment, err := NewEquipmentRepository(dataDir)
	if err != nil {
		return nil, err
	}
	rentals, err := NewRentalRepository(dataDir)
	if err != nil {
		return nil, err
	}
	return &Store{
		Vehicles:    vehicles,
		Machines:    machines,
		Maintenance: maintenance,
		Equipment:   equipment,
		Rentals:     rentals,
	}, nil
}

// Tables loads every table in raw form, in a stable order. Used by the
// workbook/zip exports and the backup job.
func (s *Store) Tables(ctx context.Context) ([]*domain.Table, error) {
	var tables []*domain.Table
	for _, load := range []func(context.Context) (*domain.Table, error){
		s.Vehicles.Table,
		s.Machines.Table,
		s.Maintenance.Table,
		s.Equipment.Table,
		s.Rentals.Table,
	} {
		t, err := load(ctx)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}
