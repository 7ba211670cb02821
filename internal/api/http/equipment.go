package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"whites-admin-backend/internal/domain"
)

func (h *Handlers) listEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := h.equipment.ListEquipment(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) getEquipment(w http.ResponseWriter, r *http.Request) {
	e, err := h.equipment.GetEquipment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handlers) addEquipment(w http.ResponseWriter, r *http.Request) {
	var e domain.Equipment
	if err := decodeBody(r, &e); err != nil {
		writeError(w, err)
		return
	}
	id, err := h.equipment.AddEquipment(r.Context(), &e)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handlers) updateEquipment(w http.ResponseWriter, r *http.Request) {
	var e domain.Equipment
	if err := decodeBody(r, &e); err != nil {
		writeError(w, err)
		return
	}
	e.ID = mux.Vars(r)["id"]
	if err := h.equipment.UpdateEquipment(r.Context(), &e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handlers) deleteEquipment(w http.ResponseWriter, r *http.Request) {
	if err := h.equipment.DeleteEquipment(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handlers) importEquipment(w http.ResponseWriter, r *http.Request) {
	var rows []domain.Equipment
	if err := decodeBody(r, &rows); err != nil {
		writeError(w, err)
		return
	}
	report, err := h.equipment.ImportEquipment(r.Context(), rows)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
