package csvstore

import (
	"context"
	"fmt"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/repository"
	"whites-admin-backend/internal/validation"
)

var vehicleColumns = []string{
	"id", "whites_id", "make", "model", "year", "weight",
	"license_plate", "vehicle_type", "status", "mileage", "defects", "notes",
}

type vehicleRepository struct {
	t *table[domain.Vehicle]
}

func NewVehicleRepository(dir string) (repository.VehicleRepository, error) {
	t, err := newTable(dir, "vehicles.csv", codec[domain.Vehicle]{
		entity:  "vehicle",
		columns: vehicleColumns,
		encode:  encodeVehicle,
		decode:  decodeVehicle,
		id:      func(v *domain.Vehicle) string { return v.ID },
		setID:   func(v *domain.Vehicle, id string) { v.ID = id },
	})
	if err != nil {
		return nil, err
	}
	return &vehicleRepository{t: t}, nil
}

func encodeVehicle(v *domain.Vehicle) []string {
	return []string{
		v.ID, v.WhitesID, v.Make, v.Model, cellInt(v.Year), cellFloat(v.Weight),
		v.LicensePlate, v.VehicleType, string(v.Status), cellFloat(v.Mileage),
		v.Defects, v.Notes,
	}
}

func decodeVehicle(cells []string) (domain.Vehicle, error) {
	var v domain.Vehicle
	var err error
	v.ID, v.WhitesID, v.Make, v.Model = cells[0], cells[1], cells[2], cells[3]
	if v.Year, err = parseIntCell("year", cells[4]); err != nil {
		return v, err
	}
	if v.Weight, err = parseFloatCell("weight", cells[5]); err != nil {
		return v, err
	}
	v.LicensePlate, v.VehicleType = cells[6], cells[7]
	v.Status = domain.VehicleStatus(cells[8])
	if v.Mileage, err = parseFloatCell("mileage", cells[9]); err != nil {
		return v, err
	}
	v.Defects, v.Notes = cells[10], cells[11]
	return v, nil
}

func (r *vehicleRepository) LoadAll(ctx context.Context) ([]domain.Vehicle, error) {
	return r.t.loadAll()
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	return r.t.getByID(id)
}

func (r *vehicleRepository) Add(ctx context.Context, v *domain.Vehicle) (string, error) {
	return r.t.add(v)
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	return r.t.update(v)
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(id)
}

// ImportBulk skips rows that fail validation or reuse a whites_id already in
// the fleet; skipped rows count as failures and never abort the batch.
func (r *vehicleRepository) ImportBulk(ctx context.Context, rows []domain.Vehicle) (*domain.ImportReport, error) {
	return r.t.importBulk(rows, func(existing []domain.Vehicle, v *domain.Vehicle) error {
		if err := validation.VehicleData(v); err != nil {
			return err
		}
		for i := range existing {
			if existing[i].WhitesID == v.WhitesID {
				return fmt.Errorf("duplicate whites_id %q", v.WhitesID)
			}
		}
		return nil
	})
}

func (r *vehicleRepository) Table(ctx context.Context) (*domain.Table, error) {
	return r.t.exportTable("vehicles")
}
