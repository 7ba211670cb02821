package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/export"
)

func (h *Handlers) exportTableCSV(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["table"]
	table, err := h.tableByName(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := export.ToCSV(table)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+table.Name+`.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handlers) exportWorkbook(w http.ResponseWriter, r *http.Request) {
	tables, err := h.store.Tables(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := export.ToWorkbook(tables)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="fleet-export.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handlers) exportBundle(w http.ResponseWriter, r *http.Request) {
	tables, err := h.store.Tables(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := export.TablesToZip(tables)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="fleet-export.zip"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handlers) tableByName(ctx context.Context, name string) (*domain.Table, error) {
	switch name {
	case "vehicles":
		return h.store.Vehicles.Table(ctx)
	case "machines":
		return h.store.Machines.Table(ctx)
	case "maintenance":
		return h.store.Maintenance.Table(ctx)
	case "equipment":
		return h.store.Equipment.Table(ctx)
	case "rentals":
		return h.store.Rentals.Table(ctx)
	default:
		return nil, &domain.NotFoundError{Entity: "table", ID: name}
	}
}
