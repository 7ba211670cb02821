package service

import (
	"context"
	"fmt"
	"time"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/logger"
	"whites-admin-backend/internal/repository"
	"whites-admin-backend/internal/validation"
)

const (
	PricingDaily  = "Daily"
	PricingWeekly = "Weekly"
	PricingCustom = "Custom"
)

type rentalService struct {
	rentalRepo    repository.RentalRepository
	equipmentRepo repository.EquipmentRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, equipmentRepo repository.EquipmentRepository) RentalService {
	return &rentalService{rentalRepo: rentalRepo, equipmentRepo: equipmentRepo}
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.LoadAll(ctx)
}

func (s *rentalService) GetRental(ctx context.Context, id string) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

// QuoteRentalRate prices a rental against the equipment's standard rates.
// Daily charges the daily rate; Weekly charges the weekly rate per started
// week (minimum one); Custom passes the operator's figure through.
func QuoteRentalRate(e *domain.Equipment, startDate, expectedReturn, kind string, customRate float64) (float64, error) {
	switch kind {
	case PricingDaily:
		return e.DailyRate, nil
	case PricingWeekly:
		if e.WeeklyRate == nil {
			return 0, &domain.ValidationError{Reasons: []string{"equipment has no weekly rate"}}
		}
		days, err := rentalDays(startDate, expectedReturn)
		if err != nil {
			return 0, err
		}
		weeks := days / 7
		if weeks < 1 {
			weeks = 1
		}
		return *e.WeeklyRate * float64(weeks), nil
	case PricingCustom:
		if !validation.ValidCost(customRate) {
			return 0, &domain.ValidationError{Reasons: []string{"invalid custom rate"}}
		}
		return customRate, nil
	default:
		return 0, &domain.ValidationError{Reasons: []string{fmt.Sprintf("unknown pricing kind %q", kind)}}
	}
}

// rentalDays counts the rental duration inclusive of both endpoints.
func rentalDays(startDate, endDate string) (int, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0, &domain.ValidationError{Reasons: []string{"invalid start date (use YYYY-MM-DD)"}}
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0, &domain.ValidationError{Reasons: []string{"invalid return date (use YYYY-MM-DD)"}}
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// CreateRental opens a rental against available equipment and flips the
// equipment to Rented. The rental and equipment writes are two separate
// table commits.
func (s *rentalService) CreateRental(ctx context.Context, r *domain.Rental, pricing *RentalPricing) (string, error) {
	equipment, err := s.equipmentRepo.GetByID(ctx, r.EquipmentID)
	if err != nil {
		return "", err
	}
	if equipment.Status != domain.EquipmentStatusAvailable {
		return "", &domain.ValidationError{
			Reasons: []string{fmt.Sprintf("equipment %q is %s, not Available", equipment.Name, equipment.Status)},
		}
	}

	if pricing != nil {
		rate, err := QuoteRentalRate(equipment, r.StartDate, r.ExpectedReturnDate, pricing.Kind, pricing.CustomRate)
		if err != nil {
			return "", err
		}
		r.RentalRate = rate
	}
	r.Status = domain.RentalStatusActive
	r.ActualReturnDate = ""

	if err := validation.RentalData(r); err != nil {
		return "", err
	}

	id, err := s.rentalRepo.Add(ctx, r)
	if err != nil {
		return "", err
	}
	equipment.Status = domain.EquipmentStatusRented
	if err := s.equipmentRepo.Update(ctx, equipment); err != nil {
		return id, err
	}
	logger.Info("Rental created", "rental_id", id, "equipment_id", r.EquipmentID, "customer", r.CustomerName)
	return id, nil
}

// ReturnRental closes an active rental. Equipment returning in Excellent or
// Good condition goes back to Available; anything else goes to Maintenance.
func (s *rentalService) ReturnRental(ctx context.Context, id string, details ReturnDetails) (*domain.Rental, error) {
	r, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != domain.RentalStatusActive {
		return nil, &domain.ValidationError{Reasons: []string{"rental is not active"}}
	}
	if !validation.ValidDate(details.ReturnDate) {
		return nil, &domain.ValidationError{Reasons: []string{"invalid return date (use YYYY-MM-DD)"}}
	}
	if !validation.ValidCost(details.AdditionalCharges) {
		return nil, &domain.ValidationError{Reasons: []string{"invalid additional charges"}}
	}

	r.ActualReturnDate = details.ReturnDate
	r.ReturnCondition = details.Condition
	r.DamageNotes = details.DamageNotes
	if details.AdditionalCharges > 0 {
		charges := details.AdditionalCharges
		r.AdditionalCharges = &charges
	}
	r.Status = domain.RentalStatusReturned
	if err := s.rentalRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.GetByID(ctx, r.EquipmentID)
	if err != nil {
		// Equipment may have been deleted while the rental was out; the
		// rental itself is already closed.
		logger.Warn("Returned rental references missing equipment", "rental_id", id, "equipment_id", r.EquipmentID)
		return r, nil
	}
	switch details.Condition {
	case "Excellent", "Good":
		equipment.Status = domain.EquipmentStatusAvailable
	default:
		equipment.Status = domain.EquipmentStatusMaintenance
	}
	if err := s.equipmentRepo.Update(ctx, equipment); err != nil {
		return nil, err
	}
	logger.Info("Rental returned", "rental_id", id, "condition", details.Condition)
	return r, nil
}

func (s *rentalService) ExtendRental(ctx context.Context, id, newExpectedReturn string) error {
	if !validation.ValidDate(newExpectedReturn) {
		return &domain.ValidationError{Reasons: []string{"invalid expected return date (use YYYY-MM-DD)"}}
	}
	r, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.Status != domain.RentalStatusActive {
		return &domain.ValidationError{Reasons: []string{"rental is not active"}}
	}
	r.ExpectedReturnDate = newExpectedReturn
	return s.rentalRepo.Update(ctx, r)
}

func (s *rentalService) ImportRentals(ctx context.Context, rows []domain.Rental) (*domain.ImportReport, error) {
	return s.rentalRepo.ImportBulk(ctx, rows)
}
