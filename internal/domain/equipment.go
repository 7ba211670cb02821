package domain

type EquipmentStatus string

const (
	EquipmentStatusAvailable    EquipmentStatus = "Available"
	EquipmentStatusRented       EquipmentStatus = "Rented"
	EquipmentStatusMaintenance  EquipmentStatus = "Maintenance"
	EquipmentStatusOutOfService EquipmentStatus = "Out of Service"
)

type Equipment struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Brand           string          `json:"brand,omitempty"`
	Model           string          `json:"model,omitempty"`
	SerialNumber    string          `json:"serial_number,omitempty"`
	DailyRate       float64         `json:"daily_rate"`
	WeeklyRate      *float64        `json:"weekly_rate,omitempty"`
	PurchasePrice   *float64        `json:"purchase_price,omitempty"`
	PurchaseDate    string          `json:"purchase_date,omitempty"`
	Status          EquipmentStatus `json:"status"`
	LastServiceDate string          `json:"last_service_date,omitempty"`
	Notes           string          `json:"notes"`
}
