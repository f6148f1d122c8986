package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/security"
	"rentalcar-backend/internal/service"
)

const dateLayout = "2006-01-02"

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	CarID     string `json:"car_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	customerID, ok := customerIDFromContext(r.Context())
	if !ok {
		writeError(w, security.ErrInvalidToken)
		return
	}

	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid car id", domain.ErrValidation))
		return
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		writeError(w, fmt.Errorf("%w: start_date must be formatted as %s", domain.ErrValidation, dateLayout))
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		writeError(w, fmt.Errorf("%w: end_date must be formatted as %s", domain.ErrValidation, dateLayout))
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), customerID, carID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	customerID, ok := customerIDFromContext(r.Context())
	if !ok {
		writeError(w, security.ErrInvalidToken)
		return
	}

	rentals, err := h.rentalSvc.ListRentalsByCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	h.withRental(w, r, h.rentalSvc.GetRental)
}

func (h *RentalHandler) ConfirmRental(w http.ResponseWriter, r *http.Request) {
	h.withRental(w, r, h.rentalSvc.ConfirmRental)
}

func (h *RentalHandler) StartRental(w http.ResponseWriter, r *http.Request) {
	h.withRental(w, r, h.rentalSvc.StartRental)
}

func (h *RentalHandler) CompleteRental(w http.ResponseWriter, r *http.Request) {
	h.withRental(w, r, h.rentalSvc.CompleteRental)
}

func (h *RentalHandler) CancelRental(w http.ResponseWriter, r *http.Request) {
	h.withRental(w, r, h.rentalSvc.CancelRental)
}

// withRental resolves the authenticated customer and the rental path id, then
// delegates to the given service operation.
func (h *RentalHandler) withRental(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, customerID, rentalID uuid.UUID) (*domain.Rental, error)) {
	customerID, ok := customerIDFromContext(r.Context())
	if !ok {
		writeError(w, security.ErrInvalidToken)
		return
	}

	rentalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid rental id", domain.ErrValidation))
		return
	}

	rental, err := op(r.Context(), customerID, rentalID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/rentals", h.CreateRental).Methods("POST")
	router.HandleFunc("/rentals", h.ListRentals).Methods("GET")
	router.HandleFunc("/rentals/{id}", h.GetRental).Methods("GET")
	router.HandleFunc("/rentals/{id}/confirm", h.ConfirmRental).Methods("POST")
	router.HandleFunc("/rentals/{id}/start", h.StartRental).Methods("POST")
	router.HandleFunc("/rentals/{id}/complete", h.CompleteRental).Methods("POST")
	router.HandleFunc("/rentals/{id}/cancel", h.CancelRental).Methods("POST")
}
