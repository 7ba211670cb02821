package domain

type VehicleStatus string

const (
	VehicleStatusOnHire      VehicleStatus = "On Hire"
	VehicleStatusOffHire     VehicleStatus = "Off Hire"
	VehicleStatusMaintenance VehicleStatus = "Maintenance"
)

type Vehicle struct {
	ID           string        `json:"id"`
	WhitesID     string        `json:"whites_id"`
	Make         string        `json:"make"`
	Model        string        `json:"model"`
	Year         int           `json:"year"`
	Weight       float64       `json:"weight"`
	LicensePlate string        `json:"license_plate"`
	VehicleType  string        `json:"vehicle_type"`
	Status       VehicleStatus `json:"status"`
	Mileage      float64       `json:"mileage"`
	Defects      string        `json:"defects"`
	Notes        string        `json:"notes"`
}
