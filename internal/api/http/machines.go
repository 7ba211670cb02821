package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"whites-admin-backend/internal/domain"
)

func (h *Handlers) listMachines(w http.ResponseWriter, r *http.Request) {
	machines, err := h.machines.ListMachines(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, machines)
}

func (h *Handlers) getMachine(w http.ResponseWriter, r *http.Request) {
	m, err := h.machines.GetMachine(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handlers) addMachine(w http.ResponseWriter, r *http.Request) {
	var m domain.Machine
	if err := decodeBody(r, &m); err != nil {
		writeError(w, err)
		return
	}
	id, err := h.machines.AddMachine(r.Context(), &m)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handlers) updateMachine(w http.ResponseWriter, r *http.Request) {
	var m domain.Machine
	if err := decodeBody(r, &m); err != nil {
		writeError(w, err)
		return
	}
	m.ID = mux.Vars(r)["id"]
	if err := h.machines.UpdateMachine(r.Context(), &m); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handlers) deleteMachine(w http.ResponseWriter, r *http.Request) {
	if err := h.machines.DeleteMachine(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handlers) importMachines(w http.ResponseWriter, r *http.Request) {
	var rows []domain.Machine
	if err := decodeBody(r, &rows); err != nil {
		writeError(w, err)
		return
	}
	report, err := h.machines.ImportMachines(r.Context(), rows)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
