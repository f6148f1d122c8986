package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentalcar-backend/internal/domain"
)

// CustomerProfile bundles a customer with derived account attributes.
type CustomerProfile struct {
	Customer *domain.Customer `json:"customer"`
	IsVIP    bool             `json:"is_vip"`
}

// CarSummary is the listing projection for available cars.
type CarSummary struct {
	ID        uuid.UUID      `json:"id"`
	Model     string         `json:"model"`
	CarType   domain.CarType `json:"car_type"`
	DailyRate domain.Money   `json:"daily_rate"`
}

type CustomerService interface {
	Register(ctx context.Context, userID, name, email string) (*domain.Customer, error)
	Login(ctx context.Context, userID string) (*domain.Customer, error)
	GetProfile(ctx context.Context, customerID uuid.UUID) (*CustomerProfile, error)
	UpdateProfile(ctx context.Context, customerID uuid.UUID, name, email string) (*domain.Customer, error)
}

type CarService interface {
	AddCar(ctx context.Context, model string, carType domain.CarType) (*domain.Car, error)
	GetCar(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	GetAvailableCarsByType(ctx context.Context, carType domain.CarType) ([]CarSummary, error)
	ListCars(ctx context.Context) ([]domain.Car, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, customerID, carID uuid.UUID, startDate, endDate time.Time) (*domain.Rental, error)
	ConfirmRental(ctx context.Context, customerID, rentalID uuid.UUID) (*domain.Rental, error)
	StartRental(ctx context.Context, customerID, rentalID uuid.UUID) (*domain.Rental, error)
	CompleteRental(ctx context.Context, customerID, rentalID uuid.UUID) (*domain.Rental, error)
	CancelRental(ctx context.Context, customerID, rentalID uuid.UUID) (*domain.Rental, error)
	GetRental(ctx context.Context, customerID, rentalID uuid.UUID) (*domain.Rental, error)
	ListRentalsByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Rental, error)
	ExpirePendingRentals(ctx context.Context, olderThan time.Duration) (int, error)
}

type EmailService interface {
	SendRentalConfirmation(ctx context.Context, email, name, carModel string, rental *domain.Rental) error
}
