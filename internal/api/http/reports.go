package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/service"
)

type fleetSummaryResponse struct {
	TotalVehicles     int            `json:"total_vehicles"`
	VehiclesByStatus  map[string]int `json:"vehicles_by_status"`
	VehiclesByType    map[string]int `json:"vehicles_by_type"`
	UtilizationRate   float64        `json:"utilization_rate"`
	MachinesByStatus  map[string]int `json:"machines_by_status"`
	EquipmentByStatus map[string]int `json:"equipment_by_status"`
}

func (h *Handlers) fleetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vehicles, err := h.vehicles.ListVehicles(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	machines, err := h.machines.ListMachines(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	equipment, err := h.equipment.ListEquipment(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := fleetSummaryResponse{
		TotalVehicles: len(vehicles),
		VehiclesByStatus: service.CountBy(vehicles, func(v *domain.Vehicle) string {
			return string(v.Status)
		}),
		VehiclesByType: service.CountBy(vehicles, func(v *domain.Vehicle) string {
			return service.CategoryOf(v.VehicleType)
		}),
		UtilizationRate: service.UtilizationRate(vehicles),
		MachinesByStatus: service.CountBy(machines, func(m *domain.Machine) string {
			return string(m.Status)
		}),
		EquipmentByStatus: service.CountBy(equipment, func(e *domain.Equipment) string {
			return string(e.Status)
		}),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) maintenanceDue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	records, err := h.maintenance.ListRecords(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	vehicles, err := h.vehicles.ListVehicles(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	mileage := make(map[string]float64, len(vehicles))
	for _, v := range vehicles {
		mileage[v.ID] = v.Mileage
	}
	writeJSON(w, http.StatusOK, service.ClassifyMaintenanceDue(records, mileage))
}

func (h *Handlers) rentalBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rentals, err := h.rentals.ListRentals(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	equipment, err := h.equipment.ListEquipment(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, service.ClassifyActiveRentals(rentals, equipment, time.Now()))
}

func (h *Handlers) costSummary(w http.ResponseWriter, r *http.Request) {
	rng, err := dateRangeFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	records, err := h.maintenance.ListRecords(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, service.MaintenanceCostSummary(records, rng))
}

func (h *Handlers) revenueSummary(w http.ResponseWriter, r *http.Request) {
	rng, err := dateRangeFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rentals, err := h.rentals.ListRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, service.RentalRevenueSummary(rentals, rng))
}

func (h *Handlers) monthlySeries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	series := mux.Vars(r)["series"]

	var points []service.MonthlyPoint
	switch series {
	case "maintenance-costs":
		records, err := h.maintenance.ListRecords(ctx)
		if err != nil {
			writeError(w, err)
			return
		}
		points = service.MonthlyAggregate(records,
			func(rec *domain.MaintenanceRecord) string { return rec.Date },
			func(rec *domain.MaintenanceRecord) float64 { return rec.Cost },
			service.AggregateSum)
	case "rental-revenue":
		rentals, err := h.rentals.ListRentals(ctx)
		if err != nil {
			writeError(w, err)
			return
		}
		points = service.MonthlyAggregate(rentals,
			func(rec *domain.Rental) string { return rec.StartDate },
			func(rec *domain.Rental) float64 { return rec.RentalRate },
			service.AggregateSum)
	case "rental-count":
		rentals, err := h.rentals.ListRentals(ctx)
		if err != nil {
			writeError(w, err)
			return
		}
		points = service.MonthlyAggregate(rentals,
			func(rec *domain.Rental) string { return rec.StartDate },
			nil,
			service.AggregateCount)
	default:
		writeError(w, &domain.NotFoundError{Entity: "report series", ID: series})
		return
	}
	writeJSON(w, http.StatusOK, points)
}

// dateRangeFromQuery reads optional from/to query parameters (YYYY-MM-DD).
func dateRangeFromQuery(r *http.Request) (*service.DateRange, error) {
	var rng service.DateRange
	if from := r.URL.Query().Get("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, &domain.ValidationError{Reasons: []string{"invalid from date: " + from}}
		}
		rng.From = &t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, &domain.ValidationError{Reasons: []string{"invalid to date: " + to}}
		}
		rng.To = &t
	}
	return &rng, nil
}
