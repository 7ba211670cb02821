package domain

type RentalStatus string

const (
	RentalStatusActive   RentalStatus = "Active"
	RentalStatusReturned RentalStatus = "Returned"
)

type Rental struct {
	ID                 string       `json:"id"`
	EquipmentID        string       `json:"equipment_id"`
	CustomerName       string       `json:"customer_name"`
	CustomerPhone      string       `json:"customer_phone,omitempty"`
	CustomerEmail      string       `json:"customer_email,omitempty"`
	StartDate          string       `json:"start_date"`
	ExpectedReturnDate string       `json:"expected_return_date"`
	ActualReturnDate   string       `json:"actual_return_date,omitempty"`
	RentalRate         float64      `json:"rental_rate"`
	Deposit            *float64     `json:"deposit,omitempty"`
	AdditionalCharges  *float64     `json:"additional_charges,omitempty"`
	Status             RentalStatus `json:"status"`
	ReturnCondition    string       `json:"return_condition,omitempty"`
	DamageNotes        string       `json:"damage_notes,omitempty"`
	Notes              string       `json:"notes"`
}

// ReturnConditions is the accepted vocabulary for Rental.ReturnCondition.
// Excellent and Good send the equipment back to Available; anything else
// routes it to Maintenance.
var ReturnConditions = []string{"Excellent", "Good", "Fair", "Damaged"}
