package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/service"
)

type CarHandler struct {
	carSvc service.CarService
}

func NewCarHandler(carSvc service.CarService) *CarHandler {
	return &CarHandler{carSvc: carSvc}
}

type addCarRequest struct {
	Model   string `json:"model"`
	CarType string `json:"car_type"`
}

func (h *CarHandler) AddCar(w http.ResponseWriter, r *http.Request) {
	var req addCarRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	carType, err := domain.ParseCarType(req.CarType)
	if err != nil {
		writeError(w, err)
		return
	}

	car, err := h.carSvc.AddCar(r.Context(), req.Model, carType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

// ListCars returns all cars, or only the available cars of one type when the
// "type" query parameter is set.
func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	typeParam := r.URL.Query().Get("type")
	if typeParam == "" {
		cars, err := h.carSvc.ListCars(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cars)
		return
	}

	carType, err := domain.ParseCarType(typeParam)
	if err != nil {
		writeError(w, err)
		return
	}
	summaries, err := h.carSvc.GetAvailableCarsByType(r.Context(), carType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid car id", domain.ErrValidation))
		return
	}

	car, err := h.carSvc.GetCar(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/cars", h.ListCars).Methods("GET")
	router.HandleFunc("/cars", h.AddCar).Methods("POST")
	router.HandleFunc("/cars/{id}", h.GetCar).Methods("GET")
}
