package domain

type MachineStatus string

const (
	MachineStatusActive      MachineStatus = "Active"
	MachineStatusMaintenance MachineStatus = "Under Maintenance"
	MachineStatusRetired     MachineStatus = "Retired"
)

type Machine struct {
	ID           string        `json:"id"`
	WhitesID     string        `json:"whites_id"`
	Make         string        `json:"make"`
	Model        string        `json:"model"`
	Year         int           `json:"year"`
	SerialNumber string        `json:"serial_number"`
	MachineType  string        `json:"machine_type"`
	Hours        float64       `json:"hours"`
	Weight       float64       `json:"weight"`
	Status       MachineStatus `json:"status"`
	DailyRate    *float64      `json:"daily_rate,omitempty"`
	WeeklyRate   *float64      `json:"weekly_rate,omitempty"`
	Defects      string        `json:"defects"`
	Notes        string        `json:"notes"`
}
