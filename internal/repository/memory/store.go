// Package memory provides the in-memory storage backend used by the demo
// deployment and by tests. Data lives for the lifetime of the process.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/logger"
	"rentalcar-backend/internal/repository"
)

// Store keeps one map per entity behind a single RWMutex. Individual
// operations are safe for concurrent use; multi-step sequences that must be
// atomic go through the unit of work, which serializes them on txMu.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	customers map[uuid.UUID]domain.Customer
	cars      map[uuid.UUID]domain.Car
	rentals   map[uuid.UUID]domain.Rental

	CustomerRepository repository.CustomerRepository
	CarRepository      repository.CarRepository
	RentalRepository   repository.RentalRepository
}

func NewStore() *Store {
	s := &Store{
		customers: make(map[uuid.UUID]domain.Customer),
		cars:      make(map[uuid.UUID]domain.Car),
		rentals:   make(map[uuid.UUID]domain.Rental),
	}
	s.CustomerRepository = &customerRepository{store: s}
	s.CarRepository = &carRepository{store: s}
	s.RentalRepository = &rentalRepository{store: s}
	return s
}

// Seed populates the fleet with a few cars so the demo has something to rent.
func (s *Store) Seed(ctx context.Context) error {
	fleet := []struct {
		model   string
		carType domain.CarType
	}{
		{"Toyota Camry", domain.CarTypeCar},
		{"Nissan Altima", domain.CarTypeCar},
		{"Honda CR-V", domain.CarTypeSUV},
		{"Mazda CX-5", domain.CarTypeSUV},
		{"Ford F-150", domain.CarTypeTruck},
		{"BMW Z4", domain.CarTypeSportsCar},
		{"Tesla Model 3", domain.CarTypeElectricCar},
	}
	for _, f := range fleet {
		car, err := domain.NewCar(f.model, f.carType)
		if err != nil {
			return err
		}
		if err := s.CarRepository.Create(ctx, car); err != nil {
			return err
		}
	}
	logger.Info("Seeded in-memory fleet", "cars", len(fleet))
	return nil
}

// UnitOfWork returns the unit of work bound to this store.
func (s *Store) UnitOfWork() repository.UnitOfWork {
	return &unitOfWork{store: s}
}

type unitOfWork struct {
	store *Store
}

// SaveChanges is a no-op: in-memory writes are applied immediately.
func (u *unitOfWork) SaveChanges(ctx context.Context) error {
	return nil
}

// WithinTransaction serializes transactional sections on a store-wide mutex.
// There is no rollback: a failing fn may leave earlier writes applied, which
// is accepted for the demo backend.
func (u *unitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	u.store.txMu.Lock()
	defer u.store.txMu.Unlock()

	return fn(ctx, repository.Repositories{
		Customers: u.store.CustomerRepository,
		Cars:      u.store.CarRepository,
		Rentals:   u.store.RentalRepository,
	})
}
