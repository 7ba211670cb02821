package domain

// MaintenanceRecord logs one service event against a vehicle or machine.
// VehicleID holds the owning record's ID regardless of which fleet table it
// lives in; dates are stored as YYYY-MM-DD strings matching the CSV files.
type MaintenanceRecord struct {
	ID              string   `json:"id"`
	VehicleID       string   `json:"vehicle_id"`
	Date            string   `json:"date"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	Cost            float64  `json:"cost"`
	Mileage         float64  `json:"mileage"`
	ServiceProvider string   `json:"service_provider,omitempty"`
	NextDueMileage  *float64 `json:"next_due_mileage,omitempty"`
}

// MaintenanceTypes is the accepted vocabulary for MaintenanceRecord.Type.
var MaintenanceTypes = []string{
	"Oil Change", "Tire Rotation", "Brake Service", "Transmission Service",
	"Engine Repair", "General Maintenance", "Inspection", "Other",
}
