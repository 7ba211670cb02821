// Package http exposes the REST surface the dashboard UI consumes. Handlers
// stay thin: decode, delegate to a service, map errors to statuses.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"whites-admin-backend/internal/repository/csvstore"
	"whites-admin-backend/internal/service"
)

type Handlers struct {
	auth        service.AuthService
	vehicles    service.VehicleService
	machines    service.MachineService
	maintenance service.MaintenanceService
	equipment   service.EquipmentService
	rentals     service.RentalService
	store       *csvstore.Store
}

func NewHandlers(
	auth service.AuthService,
	vehicles service.VehicleService,
	machines service.MachineService,
	maintenance service.MaintenanceService,
	equipment service.EquipmentService,
	rentals service.RentalService,
	store *csvstore.Store,
) *Handlers {
	return &Handlers{
		auth:        auth,
		vehicles:    vehicles,
		machines:    machines,
		maintenance: maintenance,
		equipment:   equipment,
		rentals:     rentals,
		store:       store,
	}
}

func (h *Handlers) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/login", h.login).Methods(http.MethodPost)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(h.requireSession)

	protected.HandleFunc("/logout", h.logout).Methods(http.MethodPost)

	protected.HandleFunc("/vehicles", h.listVehicles).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles", h.addVehicle).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles/import", h.importVehicles).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles/{id}", h.getVehicle).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id}", h.updateVehicle).Methods(http.MethodPut)
	protected.HandleFunc("/vehicles/{id}", h.deleteVehicle).Methods(http.MethodDelete)
	protected.HandleFunc("/vehicles/{id}/mileage", h.updateVehicleMileage).Methods(http.MethodPatch)
	protected.HandleFunc("/vehicles/{id}/maintenance", h.vehicleMaintenanceHistory).Methods(http.MethodGet)

	protected.HandleFunc("/machines", h.listMachines).Methods(http.MethodGet)
	protected.HandleFunc("/machines", h.addMachine).Methods(http.MethodPost)
	protected.HandleFunc("/machines/import", h.importMachines).Methods(http.MethodPost)
	protected.HandleFunc("/machines/{id}", h.getMachine).Methods(http.MethodGet)
	protected.HandleFunc("/machines/{id}", h.updateMachine).Methods(http.MethodPut)
	protected.HandleFunc("/machines/{id}", h.deleteMachine).Methods(http.MethodDelete)

	protected.HandleFunc("/maintenance", h.listMaintenance).Methods(http.MethodGet)
	protected.HandleFunc("/maintenance", h.addMaintenance).Methods(http.MethodPost)
	protected.HandleFunc("/maintenance/import", h.importMaintenance).Methods(http.MethodPost)
	protected.HandleFunc("/maintenance/{id}", h.getMaintenance).Methods(http.MethodGet)
	protected.HandleFunc("/maintenance/{id}", h.updateMaintenance).Methods(http.MethodPut)
	protected.HandleFunc("/maintenance/{id}", h.deleteMaintenance).Methods(http.MethodDelete)

	protected.HandleFunc("/equipment", h.listEquipment).Methods(http.MethodGet)
	protected.HandleFunc("/equipment", h.addEquipment).Methods(http.MethodPost)
	protected.HandleFunc("/equipment/import", h.importEquipment).Methods(http.MethodPost)
	protected.HandleFunc("/equipment/{id}", h.getEquipment).Methods(http.MethodGet)
	protected.HandleFunc("/equipment/{id}", h.updateEquipment).Methods(http.MethodPut)
	protected.HandleFunc("/equipment/{id}", h.deleteEquipment).Methods(http.MethodDelete)

	protected.HandleFunc("/rentals", h.listRentals).Methods(http.MethodGet)
	protected.HandleFunc("/rentals", h.createRental).Methods(http.MethodPost)
	protected.HandleFunc("/rentals/import", h.importRentals).Methods(http.MethodPost)
	protected.HandleFunc("/rentals/{id}", h.getRental).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{id}/return", h.returnRental).Methods(http.MethodPost)
	protected.HandleFunc("/rentals/{id}/extend", h.extendRental).Methods(http.MethodPost)

	protected.HandleFunc("/reports/fleet-summary", h.fleetSummary).Methods(http.MethodGet)
	protected.HandleFunc("/reports/maintenance-due", h.maintenanceDue).Methods(http.MethodGet)
	protected.HandleFunc("/reports/rental-board", h.rentalBoard).Methods(http.MethodGet)
	protected.HandleFunc("/reports/cost-summary", h.costSummary).Methods(http.MethodGet)
	protected.HandleFunc("/reports/revenue-summary", h.revenueSummary).Methods(http.MethodGet)
	protected.HandleFunc("/reports/monthly/{series}", h.monthlySeries).Methods(http.MethodGet)

	protected.HandleFunc("/export/workbook.xlsx", h.exportWorkbook).Methods(http.MethodGet)
	protected.HandleFunc("/export/bundle.zip", h.exportBundle).Methods(http.MethodGet)
	protected.HandleFunc("/export/{table}.csv", h.exportTableCSV).Methods(http.MethodGet)

	return r
}
