package csvstore

import (
	"context"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/repository"
	"whites-admin-backend/internal/validation"
)

var maintenanceColumns = []string{
	"id", "vehicle_id", "date", "type", "description",
	"cost", "mileage", "service_provider", "next_due_mileage",
}

type maintenanceRepository struct {
	t *table[domain.MaintenanceRecord]
}

func NewMaintenanceRepository(dir string) (repository.MaintenanceRepository, error) {
	t, err := newTable(dir, "maintenance.csv", codec[domain.MaintenanceRecord]{
		entity:  "maintenance record",
		columns: maintenanceColumns,
		encode:  encodeMaintenance,
		decode:  decodeMaintenance,
		id:      func(r *domain.MaintenanceRecord) string { return r.ID },
		setID:   func(r *domain.MaintenanceRecord, id string) { r.ID = id },
	})
	if err != nil {
		return nil, err
	}
	return &maintenanceRepository{t: t}, nil
}

func encodeMaintenance(rec *domain.MaintenanceRecord) []string {
	return []string{
		rec.ID, rec.VehicleID, rec.Date, rec.Type, rec.Description,
		cellFloat(rec.Cost), cellFloat(rec.Mileage), rec.ServiceProvider,
		cellOptFloat(rec.NextDueMileage),
	}
}

func decodeMaintenance(cells []string) (domain.MaintenanceRecord, error) {
	var rec domain.MaintenanceRecord
	var err error
	rec.ID, rec.VehicleID, rec.Date, rec.Type, rec.Description =
		cells[0], cells[1], cells[2], cells[3], cells[4]
	if rec.Cost, err = parseFloatCell("cost", cells[5]); err != nil {
		return rec, err
	}
	if rec.Mileage, err = parseFloatCell("mileage", cells[6]); err != nil {
		return rec, err
	}
	rec.ServiceProvider = cells[7]
	if rec.NextDueMileage, err = parseOptFloatCell("next_due_mileage", cells[8]); err != nil {
		return rec, err
	}
	return rec, nil
}

func (r *maintenanceRepository) LoadAll(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	return r.t.loadAll()
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id string) (*domain.MaintenanceRecord, error) {
	return r.t.getByID(id)
}

func (r *maintenanceRepository) Add(ctx context.Context, rec *domain.MaintenanceRecord) (string, error) {
	return r.t.add(rec)
}

func (r *maintenanceRepository) Update(ctx context.Context, rec *domain.MaintenanceRecord) error {
	return r.t.update(rec)
}

func (r *maintenanceRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(id)
}

// DeleteByVehicle sweeps every record referencing the given vehicle or
// machine; the service layer calls it when cascading a fleet delete.
func (r *maintenanceRepository) DeleteByVehicle(ctx context.Context, vehicleID string) error {
	return r.t.deleteWhere(func(rec *domain.MaintenanceRecord) bool {
		return rec.VehicleID == vehicleID
	})
}

func (r *maintenanceRepository) ImportBulk(ctx context.Context, rows []domain.MaintenanceRecord) (*domain.ImportReport, error) {
	return r.t.importBulk(rows, func(_ []domain.MaintenanceRecord, rec *domain.MaintenanceRecord) error {
		return validation.MaintenanceData(rec)
	})
}

func (r *maintenanceRepository) Table(ctx context.Context) (*domain.Table, error) {
	return r.t.exportTable("maintenance")
}
