package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"rentalcar-backend/internal/domain"
)

type customerRepository struct {
	store *Store
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.customers[customer.ID] = *customer
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	c, ok := r.store.customers[id]
	if !ok {
		return nil, fmt.Errorf("%w: customer %s", domain.ErrNotFound, id)
	}
	return &c, nil
}

func (r *customerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.customers {
		if c.UserID == userID {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: customer with user id %q", domain.ErrNotFound, userID)
}

func (r *customerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	customers := make([]domain.Customer, 0, len(r.store.customers))
	for _, c := range r.store.customers {
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.customers[customer.ID]; !ok {
		return fmt.Errorf("%w: customer %s", domain.ErrNotFound, customer.ID)
	}
	r.store.customers[customer.ID] = *customer
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.customers[id]; !ok {
		return fmt.Errorf("%w: customer %s", domain.ErrNotFound, id)
	}
	delete(r.store.customers, id)
	return nil
}
