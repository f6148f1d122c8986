package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentalcar-backend/internal/security"
	"rentalcar-backend/internal/service"
)

// NewRouter wires every handler under /api/v1. Session-bound routes sit
// behind the auth middleware.
func NewRouter(
	customerSvc service.CustomerService,
	carSvc service.CarService,
	rentalSvc service.RentalService,
	tokens security.TokenManager,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	customerHandler := NewCustomerHandler(customerSvc, tokens)
	customerHandler.RegisterPublicRoutes(api)

	carHandler := NewCarHandler(carSvc)
	carHandler.RegisterRoutes(api)

	protected := api.NewRoute().Subrouter()
	protected.Use(NewAuthMiddleware(tokens).Handler)
	customerHandler.RegisterProtectedRoutes(protected)
	NewRentalHandler(rentalSvc).RegisterRoutes(protected)

	return router
}
