package csvstore

import (
	"context"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/repository"
	"whites-admin-backend/internal/validation"
)

var equipmentColumns = []string{
	"id", "name", "category", "brand", "model", "serial_number", "daily_rate",
	"weekly_rate", "purchase_price", "purchase_date", "status",
	"last_service_date", "notes",
}

type equipmentRepository struct {
	t *table[domain.Equipment]
}

func NewEquipmentRepository(dir string) (repository.EquipmentRepository, error) {
	t, err := newTable(dir, "equipment.csv", codec[domain.Equipment]{
		entity:  "equipment",
		columns: equipmentColumns,
		encode:  encodeEquipment,
		decode:  decodeEquipment,
		id:      func(e *domain.Equipment) string { return e.ID },
		setID:   func(e *domain.Equipment, id string) { e.ID = id },
	})
	if err != nil {
		return nil, err
	}
	return &equipmentRepository{t: t}, nil
}

func encodeEquipment(e *domain.Equipment) []string {
	return []string{
		e.ID, e.Name, e.Category, e.Brand, e.Model, e.SerialNumber,
		cellFloat(e.DailyRate), cellOptFloat(e.WeeklyRate),
		cellOptFloat(e.PurchasePrice), e.PurchaseDate, string(e.Status),
		e.LastServiceDate, e.Notes,
	}
}

func decodeEquipment(cells []string) (domain.Equipment, error) {
	var e domain.Equipment
	var err error
	e.ID, e.Name, e.Category, e.Brand, e.Model, e.SerialNumber =
		cells[0], cells[1], cells[2], cells[3], cells[4], cells[5]
	if e.DailyRate, err = parseFloatCell("daily_rate", cells[6]); err != nil {
		return e, err
	}
	if e.WeeklyRate, err = parseOptFloatCell("weekly_rate", cells[7]); err != nil {
		return e, err
	}
	if e.PurchasePrice, err = parseOptFloatCell("purchase_price", cells[8]); err != nil {
		return e, err
	}
	e.PurchaseDate = cells[9]
	e.Status = domain.EquipmentStatus(cells[10])
	e.LastServiceDate, e.Notes = cells[11], cells[12]
	return e, nil
}

func (r *equipmentRepository) LoadAll(ctx context.Context) ([]domain.Equipment, error) {
	return r.t.loadAll()
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	return r.t.getByID(id)
}

func (r *equipmentRepository) Add(ctx context.Context, e *domain.Equipment) (string, error) {
	return r.t.add(e)
}

func (r *equipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	return r.t.update(e)
}

func (r *equipmentRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(id)
}

func (r *equipmentRepository) ImportBulk(ctx context.Context, rows []domain.Equipment) (*domain.ImportReport, error) {
	return r.t.importBulk(rows, func(_ []domain.Equipment, e *domain.Equipment) error {
		return validation.EquipmentData(e)
	})
}

func (r *equipmentRepository) Table(ctx context.Context) (*domain.Table, error) {
	return r.t.exportTable("equipment")
}
