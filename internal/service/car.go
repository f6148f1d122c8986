package service

import (
	"context"

	"github.com/google/uuid"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/repository"
)

type carService struct {
	carRepo repository.CarRepository
}

func NewCarService(carRepo repository.CarRepository) CarService {
	return &carService{carRepo: carRepo}
}

func (s *carService) AddCar(ctx context.Context, model string, carType domain.CarType) (*domain.Car, error) {
	car, err := domain.NewCar(model, carType)
	if err != nil {
		return nil, err
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) GetCar(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) GetAvailableCarsByType(ctx context.Context, carType domain.CarType) ([]CarSummary, error) {
	if _, err := domain.CarTypeInfoFor(carType); err != nil {
		return nil, err
	}
	cars, err := s.carRepo.GetAvailableByType(ctx, carType)
	if err != nil {
		return nil, err
	}

	summaries := make([]CarSummary, 0, len(cars))
	for _, c := range cars {
		summaries = append(summaries, CarSummary{
			ID:        c.ID,
			Model:     c.Model,
			CarType:   c.CarType,
			DailyRate: c.DailyRate,
		})
	}
	return summaries, nil
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.GetAll(ctx)
}
