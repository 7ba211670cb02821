package csvstore

import (
	"context"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/repository"
	"whites-admin-backend/internal/validation"
)

var machineColumns = []string{
	"id", "whites_id", "make", "model", "year", "serial_number", "machine_type",
	"hours", "weight", "status", "daily_rate", "weekly_rate", "defects", "notes",
}

type machineRepository struct {
	t *table[domain.Machine]
}

func NewMachineRepository(dir string) (repository.MachineRepository, error) {
	t, err := newTable(dir, "machines.csv", codec[domain.Machine]{
		entity:  "machine",
		columns: machineColumns,
		encode:  encodeMachine,
		decode:  decodeMachine,
		id:      func(m *domain.Machine) string { return m.ID },
		setID:   func(m *domain.Machine, id string) { m.ID = id },
	})
	if err != nil {
		return nil, err
	}
	return &machineRepository{t: t}, nil
}

func encodeMachine(m *domain.Machine) []string {
	return []string{
		m.ID, m.WhitesID, m.Make, m.Model, cellInt(m.Year), m.SerialNumber,
		m.MachineType, cellFloat(m.Hours), cellFloat(m.Weight), string(m.Status),
		cellOptFloat(m.DailyRate), cellOptFloat(m.WeeklyRate), m.Defects, m.Notes,
	}
}

func decodeMachine(cells []string) (domain.Machine, error) {
	var m domain.Machine
	var err error
	m.ID, m.WhitesID, m.Make, m.Model = cells[0], cells[1], cells[2], cells[3]
	if m.Year, err = parseIntCell("year", cells[4]); err != nil {
		return m, err
	}
	m.SerialNumber, m.MachineType = cells[5], cells[6]
	if m.Hours, err = parseFloatCell("hours", cells[7]); err != nil {
		return m, err
	}
	if m.Weight, err = parseFloatCell("weight", cells[8]); err != nil {
		return m, err
	}
	m.Status = domain.MachineStatus(cells[9])
	if m.DailyRate, err = parseOptFloatCell("daily_rate", cells[10]); err != nil {
		return m, err
	}
	if m.WeeklyRate, err = parseOptFloatCell("weekly_rate", cells[11]); err != nil {
		return m, err
	}
	m.Defects, m.Notes = cells[12], cells[13]
	return m, nil
}

func (r *machineRepository) LoadAll(ctx context.Context) ([]domain.Machine, error) {
	return r.t.loadAll()
}

func (r *machineRepository) GetByID(ctx context.Context, id string) (*domain.Machine, error) {
	return r.t.getByID(id)
}

func (r *machineRepository) Add(ctx context.Context, m *domain.Machine) (string, error) {
	return r.t.add(m)
}

func (r *machineRepository) Update(ctx context.Context, m *domain.Machine) error {
	return r.t.update(m)
}

func (r *machineRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(id)
}

func (r *machineRepository) ImportBulk(ctx context.Context, rows []domain.Machine) (*domain.ImportReport, error) {
	return r.t.importBulk(rows, func(_ []domain.Machine, m *domain.Machine) error {
		return validation.MachineData(m)
	})
}

func (r *machineRepository) Table(ctx context.Context) (*domain.Table, error) {
	return r.t.exportTable("machines")
}
