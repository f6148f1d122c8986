package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/logger"
	"rentalcar-backend/internal/repository"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
	uow          repository.UnitOfWork
	emailSvc     EmailService
	calculator   domain.RentalFeeCalculator
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	uow repository.UnitOfWork,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		carRepo:      carRepo,
		customerRepo: customerRepo,
		uow:          uow,
		emailSvc:     emailSvc,
	}
}

// CreateRental books a car for a customer. The booking runs in a transaction
// with the car row locked, so two concurrent requests for the same car cannot
// both succeed.
func (s *rentalService) CreateRental(ctx context.Context, customerID, carID uuid.UUID, startDate, endDate time.Time) (*domain.Rental, error) {
	var rental *domain.Rental

	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Customers.GetByID(ctx, customerID); err != nil {
			return err
		}

		car, err := repos.Cars.GetByIDForUpdate(ctx, carID)
		if err != nil {
			return err
		}
		if !car.IsAvailable {
			return fmt.Errorf("%w: car %s is not available", domain.ErrConflict, carID)
		}

		period, err := domain.NewRentalPeriod(startDate, endDate)
		if err != nil {
			return err
		}
		fee, err := s.calculator.CalculateRentalFee(car, period)
		if err != nil {
			return err
		}

		rental = domain.NewRental(customerID, carID, period, fee)

		car.SetAvailability(false)
		if err := repos.Cars.Update(ctx, car); err != nil {
			return err
		}
		return repos.Rentals.Create(ctx, rental)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("rental created",
		"rental_id", rental.ID,
		"customer_id", customerID,
		"car_id", carID,
		"total_fee", rental.TotalFee.String())
	return rental, nil
}

// ConfirmRental moves a pending rental to confirmed and notifies the customer
// by email. Email failures are logged, not returned.
func (s *rentalService) ConfirmRental(ctx context.Context, customerID, rentalID uuid.UUID) (*domain.Rental, error) {
	rental, err := s.getOwnedRental(ctx, customerID, rentalID)
	if err != nil {
		return nil, err
	}
	if err := rental.Confirm(); err != nil {
		return nil, err
	}
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	s.sendConfirmationEmail(ctx, rental)
	return rental, nil
}

func (s *rentalService) StartRental(ctx context.Context, customerID, rentalID uuid.UUID) (*domain.Rental, error) {
	rental, err := s.getOwnedRental(ctx, customerID, rentalID)
	if err != nil {
		return nil, err
	}
	if err := rental.Start(); err != nil {
		return nil, err
	}
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) CompleteRental(ctx context.Context, customerID, rentalID uuid.UUID) (*domain.Rental, error) {
	return s.closeRental(ctx, customerID, rentalID, (*domain.Rental).Complete)
}

func (s *rentalService) CancelRental(ctx context.Context, customerID, rentalID uuid.UUID) (*domain.Rental, error) {
	return s.closeRental(ctx, customerID, rentalID, (*domain.Rental).Cancel)
}

// closeRental applies a terminal transition and puts the car back in the
// available pool in the same transaction.
func (s *rentalService) closeRental(ctx context.Context, customerID, rentalID uuid.UUID, transition func(*domain.Rental) error) (*domain.Rental, error) {
	var rental *domain.Rental

	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		rental, err = repos.Rentals.GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		if rental.CustomerID != customerID {
			return fmt.Errorf("%w: rental %s", domain.ErrNotFound, rentalID)
		}

		alreadyClosed := rental.Status == domain.RentalStatusCancelled
		if err := transition(rental); err != nil {
			return err
		}
		if alreadyClosed {
			// Cancelling twice is allowed and changes nothing.
			return nil
		}
		if err := repos.Rentals.Update(ctx, rental); err != nil {
			return err
		}

		car, err := repos.Cars.GetByIDForUpdate(ctx, rental.CarID)
		if err != nil {
			return err
		}
		car.SetAvailability(true)
		return repos.Cars.Update(ctx, car)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("rental closed", "rental_id", rental.ID, "status", rental.Status)
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, customerID, rentalID uuid.UUID) (*domain.Rental, error) {
	return s.getOwnedRental(ctx, customerID, rentalID)
}

func (s *rentalService) ListRentalsByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Rental, error) {
	return s.rentalRepo.GetByCustomerID(ctx, customerID)
}

// ExpirePendingRentals cancels rentals that stayed pending longer than the
// given duration and releases their cars. Returns the number of rentals
// expired.
func (s *rentalService) ExpirePendingRentals(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	stale, err := s.rentalRepo.GetStalePending(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range stale {
		rentalID := stale[i].ID
		err := s.uow.WithinTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
			rental, err := repos.Rentals.GetByID(ctx, rentalID)
			if err != nil {
				return err
			}
			// The rental may have progressed since the listing query.
			if rental.Status != domain.RentalStatusPending {
				return nil
			}
			if err := rental.Cancel(); err != nil {
				return err
			}
			if err := repos.Rentals.Update(ctx, rental); err != nil {
				return err
			}

			car, err := repos.Cars.GetByIDForUpdate(ctx, rental.CarID)
			if err != nil {
				return err
			}
			car.SetAvailability(true)
			if err := repos.Cars.Update(ctx, car); err != nil {
				return err
			}
			expired++
			return nil
		})
		if err != nil {
			logger.Error("failed to expire pending rental", "rental_id", rentalID, "error", err)
		}
	}
	return expired, nil
}

func (s *rentalService) getOwnedRental(ctx context.Context, customerID, rentalID uuid.UUID) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	// A rental belonging to someone else looks like a missing one.
	if rental.CustomerID != customerID {
		return nil, fmt.Errorf("%w: rental %s", domain.ErrNotFound, rentalID)
	}
	return rental, nil
}

func (s *rentalService) sendConfirmationEmail(ctx context.Context, rental *domain.Rental) {
	customer, err := s.customerRepo.GetByID(ctx, rental.CustomerID)
	if err != nil {
		logger.Warn("confirmation email skipped, customer lookup failed", "rental_id", rental.ID, "error", err)
		return
	}
	car, err := s.carRepo.GetByID(ctx, rental.CarID)
	if err != nil {
		logger.Warn("confirmation email skipped, car lookup failed", "rental_id", rental.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendRentalConfirmation(ctx, customer.Email, customer.Name, car.Model, rental); err != nil {
		logger.Warn("failed to send rental confirmation email", "rental_id", rental.ID, "error", err)
	}
}
