package service

import (
	"context"

	"whites-admin-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string)
	Validate(ctx context.Context, token string) (string, error) // returns operator username
}

type VehicleService interface {
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	AddVehicle(ctx context.Context, v *domain.Vehicle) (string, error)
	UpdateVehicle(ctx context.Context, v *domain.Vehicle) error
	UpdateVehicleMileage(ctx context.Context, id string, mileage float64) error
	DeleteVehicle(ctx context.Context, id string) error
	ImportVehicles(ctx context.Context, rows []domain.Vehicle) (*domain.ImportReport, error)
}

type MachineService interface {
	ListMachines(ctx context.Context) ([]domain.Machine, error)
	GetMachine(ctx context.Context, id string) (*domain.Machine, error)
	AddMachine(ctx context.Context, m *domain.Machine) (string, error)
	UpdateMachine(ctx context.Context, m *domain.Machine) error
	DeleteMachine(ctx context.Context, id string) error
	ImportMachines(ctx context.Context, rows []domain.Machine) (*domain.ImportReport, error)
}

type MaintenanceService interface {
	ListRecords(ctx context.Context) ([]domain.MaintenanceRecord, error)
	GetRecord(ctx context.Context, id string) (*domain.MaintenanceRecord, error)
	AddRecord(ctx context.Context, r *domain.MaintenanceRecord) (string, error)
	UpdateRecord(ctx context.Context, r *domain.MaintenanceRecord) error
	DeleteRecord(ctx context.Context, id string) error
	VehicleHistory(ctx context.Context, vehicleID string) ([]domain.MaintenanceRecord, error)
	ImportRecords(ctx context.Context, rows []domain.MaintenanceRecord) (*domain.ImportReport, error)
}

type EquipmentService interface {
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	AddEquipment(ctx context.Context, e *domain.Equipment) (string, error)
	UpdateEquipment(ctx context.Context, e *domain.Equipment) error
	DeleteEquipment(ctx context.Context, id string) error
	ImportEquipment(ctx context.Context, rows []domain.Equipment) (*domain.ImportReport, error)
}

// ReturnDetails carries what the operator records when equipment comes back.
type ReturnDetails struct {
	ReturnDate        string  `json:"return_date"`
	Condition         string  `json:"condition"`
	DamageNotes       string  `json:"damage_notes"`
	AdditionalCharges float64 `json:"additional_charges"`
}

// RentalPricing selects how the rental rate is computed at creation time.
// Kind is Daily, Weekly or Custom; CustomRate applies only to Custom.
type RentalPricing struct {
	Kind       string  `json:"kind"`
	CustomRate float64 `json:"custom_rate"`
}

type RentalService interface {
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	GetRental(ctx context.Context, id string) (*domain.Rental, error)
	CreateRental(ctx context.Context, r *domain.Rental, pricing *RentalPricing) (string, error)
	ReturnRental(ctx context.Context, id string, details ReturnDetails) (*domain.Rental, error)
	ExtendRental(ctx context.Context, id, newExpectedReturn string) error
	ImportRentals(ctx context.Context, rows []domain.Rental) (*domain.ImportReport, error)
}

// OverdueRental pairs an active rental with its equipment name and how many
// days past the expected return it is.
type OverdueRental struct {
	Rental        domain.Rental `json:"rental"`
	EquipmentName string        `json:"equipment_name"`
	DaysOverdue   int           `json:"days_overdue"`
}

type EmailService interface {
	SendOverdueRentalReminder(ctx context.Context, to string, overdue []OverdueRental) error
}
