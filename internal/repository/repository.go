package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentalcar-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	// GetByUserID matches the business key case-sensitively.
	GetByUserID(ctx context.Context, userID string) (*domain.Customer, error)
	GetAll(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	// GetByIDForUpdate locks the car row for the duration of the enclosing
	// transaction. Outside a transaction it behaves like GetByID.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	GetAvailableByType(ctx context.Context, carType domain.CarType) ([]domain.Car, error)
	GetAll(ctx context.Context) ([]domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]domain.Rental, error)
	// GetStalePending returns rentals still pending that were created before
	// the cutoff. Used by the expiry job.
	GetStalePending(ctx context.Context, cutoff time.Time) ([]domain.Rental, error)
	GetAll(ctx context.Context) ([]domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repositories bundles the per-entity repositories handed to a transactional
// function. Inside a transaction all three operate on the same connection.
type Repositories struct {
	Customers CustomerRepository
	Cars      CarRepository
	Rentals   RentalRepository
}

// UnitOfWork coordinates multiple writes as one logical commit.
//
// WithinTransaction runs fn atomically: the postgres implementation wraps fn
// in a database transaction, the in-memory implementation serializes
// transactional sections on a store-wide mutex. Either way, two concurrent
// bookings of the same car cannot both observe it as available.
//
// SaveChanges exists for callers that batch writes; both implementations
// apply writes immediately, so it is a no-op kept for contract symmetry.
type UnitOfWork interface {
	SaveChanges(ctx context.Context) error
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
