package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rentalcar-backend/internal/domain"
)

type rentalRepository struct {
	store *Store
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.rentals[rental.ID] = *rental
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rt, ok := r.store.rentals[id]
	if !ok {
		return nil, fmt.Errorf("%w: rental %s", domain.ErrNotFound, id)
	}
	return &rt, nil
}

func (r *rentalRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]domain.Rental, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var rentals []domain.Rental
	for _, rt := range r.store.rentals {
		if rt.CustomerID == customerID {
			rentals = append(rentals, rt)
		}
	}
	return rentals, nil
}

func (r *rentalRepository) GetStalePending(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var rentals []domain.Rental
	for _, rt := range r.store.rentals {
		if rt.Status == domain.RentalStatusPending && rt.CreatedAt.Before(cutoff) {
			rentals = append(rentals, rt)
		}
	}
	return rentals, nil
}

func (r *rentalRepository) GetAll(ctx context.Context) ([]domain.Rental, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rentals := make([]domain.Rental, 0, len(r.store.rentals))
	for _, rt := range r.store.rentals {
		rentals = append(rentals, rt)
	}
	return rentals, nil
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.rentals[rental.ID]; !ok {
		return fmt.Errorf("%w: rental %s", domain.ErrNotFound, rental.ID)
	}
	r.store.rentals[rental.ID] = *rental
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.rentals[id]; !ok {
		return fmt.Errorf("%w: rental %s", domain.ErrNotFound, id)
	}
	delete(r.store.rentals, id)
	return nil
}
