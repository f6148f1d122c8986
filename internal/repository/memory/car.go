package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"rentalcar-backend/internal/domain"
)

type carRepository struct {
	store *Store
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.cars[car.ID] = *car
	return nil
}

func (r *carRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	c, ok := r.store.cars[id]
	if !ok {
		return nil, fmt.Errorf("%w: car %s", domain.ErrNotFound, id)
	}
	return &c, nil
}

// GetByIDForUpdate has no row locks to take in memory; atomicity comes from
// the unit of work serializing transactional sections.
func (r *carRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	return r.GetByID(ctx, id)
}

func (r *carRepository) GetAvailableByType(ctx context.Context, carType domain.CarType) ([]domain.Car, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var cars []domain.Car
	for _, c := range r.store.cars {
		if c.CarType == carType && c.IsAvailable {
			cars = append(cars, c)
		}
	}
	return cars, nil
}

func (r *carRepository) GetAll(ctx context.Context) ([]domain.Car, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	cars := make([]domain.Car, 0, len(r.store.cars))
	for _, c := range r.store.cars {
		cars = append(cars, c)
	}
	return cars, nil
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.cars[car.ID]; !ok {
		return fmt.Errorf("%w: car %s", domain.ErrNotFound, car.ID)
	}
	r.store.cars[car.ID] = *car
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.cars[id]; !ok {
		return fmt.Errorf("%w: car %s", domain.ErrNotFound, id)
	}
	delete(r.store.cars, id)
	return nil
}
