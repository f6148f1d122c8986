package http

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/security"
	"rentalcar-backend/internal/service"
)

type CustomerHandler struct {
	customerSvc service.CustomerService
	tokens      security.TokenManager
}

func NewCustomerHandler(customerSvc service.CustomerService, tokens security.TokenManager) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc, tokens: tokens}
}

type registerRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type loginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Customer     *domain.Customer `json:"customer,omitempty"`
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	customer, err := h.customerSvc.Register(r.Context(), req.UserID, req.Name, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

// Login authenticates by user id. Password checking is out of scope for this
// demo backend; an unknown user id is rejected.
func (h *CustomerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	customer, err := h.customerSvc.Login(r.Context(), req.UserID)
	if err != nil {
		// Do not reveal whether the user id exists.
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		return
	}

	pair, err := h.issueTokens(customer)
	if err != nil {
		writeError(w, err)
		return
	}
	pair.Customer = customer
	writeJSON(w, http.StatusOK, pair)
}

func (h *CustomerHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	claims, err := h.tokens.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}

	access, err := h.tokens.GenerateAccessToken(claims.CustomerID, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	refresh, err := h.tokens.GenerateRefreshToken(claims.CustomerID, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: access, RefreshToken: refresh})
}

func (h *CustomerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	customerID, ok := customerIDFromContext(r.Context())
	if !ok {
		writeError(w, security.ErrInvalidToken)
		return
	}

	profile, err := h.customerSvc.GetProfile(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *CustomerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	customerID, ok := customerIDFromContext(r.Context())
	if !ok {
		writeError(w, security.ErrInvalidToken)
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	customer, err := h.customerSvc.UpdateProfile(r.Context(), customerID, req.Name, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) issueTokens(customer *domain.Customer) (tokenResponse, error) {
	access, err := h.tokens.GenerateAccessToken(customer.ID, customer.UserID)
	if err != nil {
		return tokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := h.tokens.GenerateRefreshToken(customer.ID, customer.UserID)
	if err != nil {
		return tokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return tokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

// RegisterPublicRoutes mounts the endpoints that do not require a session.
func (h *CustomerHandler) RegisterPublicRoutes(router *mux.Router) {
	router.HandleFunc("/customers", h.Register).Methods("POST")
	router.HandleFunc("/auth/login", h.Login).Methods("POST")
	router.HandleFunc("/auth/refresh", h.Refresh).Methods("POST")
}

// RegisterProtectedRoutes mounts the endpoints behind the auth middleware.
func (h *CustomerHandler) RegisterProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/customers/me", h.GetProfile).Methods("GET")
	router.HandleFunc("/customers/me", h.UpdateProfile).Methods("PUT")
}
