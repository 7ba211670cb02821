package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"whites-admin-backend/internal/domain"
)

func (h *Handlers) listVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.ListVehicles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *Handlers) getVehicle(w http.ResponseWriter, r *http.Request) {
	v, err := h.vehicles.GetVehicle(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handlers) addVehicle(w http.ResponseWriter, r *http.Request) {
	var v domain.Vehicle
	if err := decodeBody(r, &v); err != nil {
		writeError(w, err)
		return
	}
	id, err := h.vehicles.AddVehicle(r.Context(), &v)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handlers) updateVehicle(w http.ResponseWriter, r *http.Request) {
	var v domain.Vehicle
	if err := decodeBody(r, &v); err != nil {
		writeError(w, err)
		return
	}
	v.ID = mux.Vars(r)["id"]
	if err := h.vehicles.UpdateVehicle(r.Context(), &v); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handlers) updateVehicleMileage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mileage float64 `json:"mileage"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.vehicles.UpdateVehicleMileage(r.Context(), mux.Vars(r)["id"], req.Mileage); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handlers) deleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := h.vehicles.DeleteVehicle(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handlers) importVehicles(w http.ResponseWriter, r *http.Request) {
	var rows []domain.Vehicle
	if err := decodeBody(r, &rows); err != nil {
		writeError(w, err)
		return
	}
	report, err := h.vehicles.ImportVehicles(r.Context(), rows)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handlers) vehicleMaintenanceHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.maintenance.VehicleHistory(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
