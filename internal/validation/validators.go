package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"whites-admin-backend/internal/domain"
)

var (
	licensePlatePattern = regexp.MustCompile(`^[A-Z0-9-]+$`)
	// VIN characters exclude I, O and Q per the VIN standard.
	vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
)

// ValidYear checks a model year is between 1900 and next year inclusive.
func ValidYear(year int) bool {
	return year >= 1900 && year <= time.Now().Year()+1
}

// ValidWeight checks a weight is strictly positive.
func ValidWeight(w float64) bool {
	return w > 0
}

// ValidMileage checks a mileage reading is non-negative.
func ValidMileage(m float64) bool {
	return m >= 0
}

// ValidCost checks a monetary amount is non-negative.
func ValidCost(c float64) bool {
	return c >= 0
}

// ValidLicensePlate checks a plate is 2-8 alphanumeric characters after
// stripping spaces and uppercasing.
func ValidLicensePlate(plate string) bool {
	plate = strings.ToUpper(strings.ReplaceAll(plate, " ", ""))
	if len(plate) < 2 || len(plate) > 8 {
		return false
	}
	return licensePlatePattern.MatchString(plate)
}

// ValidVIN checks a 17-character vehicle identification number after
// stripping spaces and uppercasing.
func ValidVIN(vin string) bool {
	vin = strings.ToUpper(strings.ReplaceAll(vin, " ", ""))
	return vinPattern.MatchString(vin)
}

// ValidDate checks a string parses as YYYY-MM-DD.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// RequiredFields returns one reason per named field that is missing or blank
// after stringification. Field order in the result follows the required list.
func RequiredFields(fields map[string]any, required []string) []string {
	var reasons []string
	for _, name := range required {
		value, ok := fields[name]
		if !ok || strings.TrimSpace(fmt.Sprint(value)) == "" {
			reasons = append(reasons, fmt.Sprintf("field '%s' is required", name))
		}
	}
	return reasons
}

// asError wraps collected reasons, or returns nil when there are none.
func asError(reasons []string) error {
	if len(reasons) == 0 {
		return nil
	}
	return &domain.ValidationError{Reasons: reasons}
}

// VehicleData runs every applicable check on a vehicle and collects all
// failures; a form with three bad fields reports three reasons in one pass.
func VehicleData(v *domain.Vehicle) error {
	reasons := RequiredFields(map[string]any{
		"whites_id":     v.WhitesID,
		"make":          v.Make,
		"model":         v.Model,
		"year":          v.Year,
		"license_plate": v.LicensePlate,
		"vehicle_type":  v.VehicleType,
		"status":        v.Status,
	}, []string{"whites_id", "make", "model", "year", "license_plate", "vehicle_type", "status"})

	if !ValidYear(v.Year) {
		reasons = append(reasons, "invalid year")
	}
	if !ValidWeight(v.Weight) {
		reasons = append(reasons, "invalid weight")
	}
	if !ValidLicensePlate(v.LicensePlate) {
		reasons = append(reasons, "invalid license plate format")
	}
	if !ValidMileage(v.Mileage) {
		reasons = append(reasons, "invalid mileage")
	}
	switch v.Status {
	case domain.VehicleStatusOnHire, domain.VehicleStatusOffHire, domain.VehicleStatusMaintenance:
	default:
		reasons = append(reasons, "status must be On Hire, Off Hire or Maintenance")
	}
	return asError(reasons)
}

// MachineData validates a plant machine record.
func MachineData(m *domain.Machine) error {
	reasons := RequiredFields(map[string]any{
		"whites_id":    m.WhitesID,
		"make":         m.Make,
		"model":        m.Model,
		"year":         m.Year,
		"machine_type": m.MachineType,
		"status":       m.Status,
	}, []string{"whites_id", "make", "model", "year", "machine_type", "status"})

	if !ValidYear(m.Year) {
		reasons = append(reasons, "invalid year")
	}
	if m.Hours < 0 {
		reasons = append(reasons, "invalid hours")
	}
	if m.Weight < 0 {
		reasons = append(reasons, "invalid weight")
	}
	if m.DailyRate != nil && !ValidCost(*m.DailyRate) {
		reasons = append(reasons, "invalid daily rate")
	}
	if m.WeeklyRate != nil && !ValidCost(*m.WeeklyRate) {
		reasons = append(reasons, "invalid weekly rate")
	}
	switch m.Status {
	case domain.MachineStatusActive, domain.MachineStatusMaintenance, domain.MachineStatusRetired:
	default:
		reasons = append(reasons, "status must be Active, Under Maintenance or Retired")
	}
	return asError(reasons)
}

// MaintenanceData validates a maintenance record.
func MaintenanceData(r *domain.MaintenanceRecord) error {
	reasons := RequiredFields(map[string]any{
		"vehicle_id":  r.VehicleID,
		"date":        r.Date,
		"type":        r.Type,
		"description": r.Description,
	}, []string{"vehicle_id", "date", "type", "description"})

	if !ValidDate(r.Date) {
		reasons = append(reasons, "invalid date format (use YYYY-MM-DD)")
	}
	if !ValidCost(r.Cost) {
		reasons = append(reasons, "invalid cost")
	}
	if !ValidMileage(r.Mileage) {
		reasons = append(reasons, "invalid mileage")
	}
	if r.NextDueMileage != nil && !ValidMileage(*r.NextDueMileage) {
		reasons = append(reasons, "invalid next due mileage")
	}
	if !slices.Contains(domain.MaintenanceTypes, r.Type) {
		reasons = append(reasons, "invalid maintenance type, must be one of: "+strings.Join(domain.MaintenanceTypes, ", "))
	}
	return asError(reasons)
}

// EquipmentData validates a rentable equipment record.
func EquipmentData(e *domain.Equipment) error {
	reasons := RequiredFields(map[string]any{
		"name":     e.Name,
		"category": e.Category,
		"status":   e.Status,
	}, []string{"name", "category", "status"})

	if !ValidCost(e.DailyRate) {
		reasons = append(reasons, "invalid daily rate")
	}
	if e.WeeklyRate != nil && !ValidCost(*e.WeeklyRate) {
		reasons = append(reasons, "invalid weekly rate")
	}
	if e.PurchasePrice != nil && !ValidCost(*e.PurchasePrice) {
		reasons = append(reasons, "invalid purchase price")
	}
	if e.PurchaseDate != "" && !ValidDate(e.PurchaseDate) {
		reasons = append(reasons, "invalid purchase date (use YYYY-MM-DD)")
	}
	if e.LastServiceDate != "" && !ValidDate(e.LastServiceDate) {
		reasons = append(reasons, "invalid last service date (use YYYY-MM-DD)")
	}
	switch e.Status {
	case domain.EquipmentStatusAvailable, domain.EquipmentStatusRented,
		domain.EquipmentStatusMaintenance, domain.EquipmentStatusOutOfService:
	default:
		reasons = append(reasons, "status must be Available, Rented, Maintenance or Out of Service")
	}
	return asError(reasons)
}

// RentalData validates a rental transaction record.
func RentalData(r *domain.Rental) error {
	reasons := RequiredFields(map[string]any{
		"equipment_id":         r.EquipmentID,
		"customer_name":        r.CustomerName,
		"start_date":           r.StartDate,
		"expected_return_date": r.ExpectedReturnDate,
		"status":               r.Status,
	}, []string{"equipment_id", "customer_name", "start_date", "expected_return_date", "status"})

	if !ValidDate(r.StartDate) {
		reasons = append(reasons, "invalid start date (use YYYY-MM-DD)")
	}
	if !ValidDate(r.ExpectedReturnDate) {
		reasons = append(reasons, "invalid expected return date (use YYYY-MM-DD)")
	}
	if r.ActualReturnDate != "" && !ValidDate(r.ActualReturnDate) {
		reasons = append(reasons, "invalid actual return date (use YYYY-MM-DD)")
	}
	if !ValidCost(r.RentalRate) {
		reasons = append(reasons, "invalid rental rate")
	}
	if r.Deposit != nil && !ValidCost(*r.Deposit) {
		reasons = append(reasons, "invalid deposit")
	}
	if r.AdditionalCharges != nil && !ValidCost(*r.AdditionalCharges) {
		reasons = append(reasons, "invalid additional charges")
	}
	if ValidDate(r.StartDate) && ValidDate(r.ExpectedReturnDate) && r.ExpectedReturnDate < r.StartDate {
		reasons = append(reasons, "expected return date is before start date")
	}
	switch r.Status {
	case domain.RentalStatusActive, domain.RentalStatusReturned:
	default:
		reasons = append(reasons, "status must be Active or Returned")
	}
	return asError(reasons)
}
