package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Register(ctx context.Context, userID, name, email string) (*domain.Customer, error) {
	existing, err := s.customerRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user id %q is already registered", domain.ErrConflict, userID)
	}

	customer, err := domain.NewCustomer(userID, name, email)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Login(ctx context.Context, userID string) (*domain.Customer, error) {
	return s.customerRepo.GetByUserID(ctx, userID)
}

func (s *customerService) GetProfile(ctx context.Context, customerID uuid.UUID) (*CustomerProfile, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &CustomerProfile{
		Customer: customer,
		IsVIP:    domain.IsVIP(customer.UserID),
	}, nil
}

func (s *customerService) UpdateProfile(ctx context.Context, customerID uuid.UUID, name, email string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := customer.UpdateProfile(name, email); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
