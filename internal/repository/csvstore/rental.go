package csvstore

import (
	"context"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/repository"
	"whites-admin-backend/internal/validation"
)

var rentalColumns = []string{
	"id", "equipment_id", "customer_name", "customer_phone", "customer_email",
	"start_date", "expected_return_date", "actual_return_date", "rental_rate",
	"deposit", "additional_charges", "status", "return_condition",
	"damage_notes", "notes",
}

type rentalRepository struct {
	t *table[domain.Rental]
}

func NewRentalRepository(dir string) (repository.RentalRepository, error) {
	t, err := newTable(dir, "rentals.csv", codec[domain.Rental]{
		entity:  "rental",
		columns: rentalColumns,
		encode:  encodeRental,
		decode:  decodeRental,
		id:      func(r *domain.Rental) string { return r.ID },
		setID:   func(r *domain.Rental, id string) { r.ID = id },
	})
	if err != nil {
		return nil, err
	}
	return &rentalRepository{t: t}, nil
}

func encodeRental(r *domain.Rental) []string {
	return []string{
		r.ID, r.EquipmentID, r.CustomerName, r.CustomerPhone, r.CustomerEmail,
		r.StartDate, r.ExpectedReturnDate, r.ActualReturnDate,
		cellFloat(r.RentalRate), cellOptFloat(r.Deposit),
		cellOptFloat(r.AdditionalCharges), string(r.Status),
		r.ReturnCondition, r.DamageNotes, r.Notes,
	}
}

func decodeRental(cells []string) (domain.Rental, error) {
	var r domain.Rental
	var err error
	r.ID, r.EquipmentID, r.CustomerName, r.CustomerPhone, r.CustomerEmail =
		cells[0], cells[1], cells[2], cells[3], cells[4]
	r.StartDate, r.ExpectedReturnDate, r.ActualReturnDate = cells[5], cells[6], cells[7]
	if r.RentalRate, err = parseFloatCell("rental_rate", cells[8]); err != nil {
		return r, err
	}
	if r.Deposit, err = parseOptFloatCell("deposit", cells[9]); err != nil {
		return r, err
	}
	if r.AdditionalCharges, err = parseOptFloatCell("additional_charges", cells[10]); err != nil {
		return r, err
	}
	r.Status = domain.RentalStatus(cells[11])
	r.ReturnCondition, r.DamageNotes, r.Notes = cells[12], cells[13], cells[14]
	return r, nil
}

func (r *rentalRepository) LoadAll(ctx context.Context) ([]domain.Rental, error) {
	return r.t.loadAll()
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	return r.t.getByID(id)
}

func (r *rentalRepository) Add(ctx context.Context, rec *domain.Rental) (string, error) {
	return r.t.add(rec)
}

func (r *rentalRepository) Update(ctx context.Context, rec *domain.Rental) error {
	return r.t.update(rec)
}

func (r *rentalRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(id)
}

// DeleteByEquipment sweeps every rental referencing the given equipment; the
// service layer calls it when cascading an equipment delete.
func (r *rentalRepository) DeleteByEquipment(ctx context.Context, equipmentID string) error {
	return r.t.deleteWhere(func(rec *domain.Rental) bool {
		return rec.EquipmentID == equipmentID
	})
}

func (r *rentalRepository) ImportBulk(ctx context.Context, rows []domain.Rental) (*domain.ImportReport, error) {
	return r.t.importBulk(rows, func(_ []domain.Rental, rec *domain.Rental) error {
		return validation.RentalData(rec)
	})
}

func (r *rentalRepository) Table(ctx context.Context) (*domain.Table, error) {
	return r.t.exportTable("rentals")
}
