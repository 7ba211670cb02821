package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"whites-admin-backend/internal/domain"
	"whites-admin-backend/internal/service"
)

type createRentalRequest struct {
	domain.Rental
	PricingKind string  `json:"pricing_kind,omitempty"`
	CustomRate  float64 `json:"custom_rate,omitempty"`
}

func (h *Handlers) listRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentals.ListRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *Handlers) getRental(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentals.GetRental(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *Handlers) createRental(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	var pricing *service.RentalPricing
	if req.PricingKind != "" {
		pricing = &service.RentalPricing{Kind: req.PricingKind, CustomRate: req.CustomRate}
	}
	id, err := h.rentals.CreateRental(r.Context(), &req.Rental, pricing)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handlers) returnRental(w http.ResponseWriter, r *http.Request) {
	var details service.ReturnDetails
	if err := decodeBody(r, &details); err != nil {
		writeError(w, err)
		return
	}
	rental, err := h.rentals.ReturnRental(r.Context(), mux.Vars(r)["id"], details)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *Handlers) extendRental(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExpectedReturnDate string `json:"expected_return_date"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.rentals.ExtendRental(r.Context(), mux.Vars(r)["id"], req.ExpectedReturnDate); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handlers) importRentals(w http.ResponseWriter, r *http.Request) {
	var rows []domain.Rental
	if err := decodeBody(r, &rows); err != nil {
		writeError(w, err)
		return
	}
	report, err := h.rentals.ImportRentals(r.Context(), rows)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
