package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"whites-admin-backend/internal/domain"
)

func (h *Handlers) listMaintenance(w http.ResponseWriter, r *http.Request) {
	records, err := h.maintenance.ListRecords(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handlers) getMaintenance(w http.ResponseWriter, r *http.Request) {
	rec, err := h.maintenance.GetRecord(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handlers) addMaintenance(w http.ResponseWriter, r *http.Request) {
	var rec domain.MaintenanceRecord
	if err := decodeBody(r, &rec); err != nil {
		writeError(w, err)
		return
	}
	id, err := h.maintenance.AddRecord(r.Context(), &rec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handlers) updateMaintenance(w http.ResponseWriter, r *http.Request) {
	var rec domain.MaintenanceRecord
	if err := decodeBody(r, &rec); err != nil {
		writeError(w, err)
		return
	}
	rec.ID = mux.Vars(r)["id"]
	if err := h.maintenance.UpdateRecord(r.Context(), &rec); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handlers) deleteMaintenance(w http.ResponseWriter, r *http.Request) {
	if err := h.maintenance.DeleteRecord(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handlers) importMaintenance(w http.ResponseWriter, r *http.Request) {
	var rows []domain.MaintenanceRecord
	if err := decodeBody(r, &rows); err != nil {
		writeError(w, err)
		return
	}
	report, err := h.maintenance.ImportRecords(r.Context(), rows)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
