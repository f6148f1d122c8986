package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "PENDING"
	RentalStatusConfirmed RentalStatus = "CONFIRMED"
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

// Rental references its customer and car by identifier only; it never owns
// the objects. The fee is precomputed at creation and transitions mutate
// Status alone.
type Rental struct {
	ID         uuid.UUID    `json:"id"`
	CustomerID uuid.UUID    `json:"customer_id"`
	CarID      uuid.UUID    `json:"car_id"`
	Period     RentalPeriod `json:"period"`
	TotalFee   Money        `json:"total_fee"`
	Status     RentalStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
}

// NewRental starts every rental in the pending state.
func NewRental(customerID, carID uuid.UUID, period RentalPeriod, totalFee Money) *Rental {
	return &Rental{
		ID:         uuid.New(),
		CustomerID: customerID,
		CarID:      carID,
		Period:     period,
		TotalFee:   totalFee,
		Status:     RentalStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
}

func (r *Rental) Identity() uuid.UUID {
	return r.ID
}

// Confirm moves Pending to Confirmed.
func (r *Rental) Confirm() error {
	if r.Status != RentalStatusPending {
		return fmt.Errorf("%w: only a pending rental can be confirmed", ErrInvalidStateTransition)
	}
	r.Status = RentalStatusConfirmed
	return nil
}

// Start moves Confirmed to Active.
func (r *Rental) Start() error {
	if r.Status != RentalStatusConfirmed {
		return fmt.Errorf("%w: only a confirmed rental can be started", ErrInvalidStateTransition)
	}
	r.Status = RentalStatusActive
	return nil
}

// Complete moves Active to Completed, a terminal state.
func (r *Rental) Complete() error {
	if r.Status != RentalStatusActive {
		return fmt.Errorf("%w: only an active rental can be completed", ErrInvalidStateTransition)
	}
	r.Status = RentalStatusCompleted
	return nil
}

// Cancel is legal from any state except Completed. Cancelling an already
// cancelled rental is a no-op that succeeds.
func (r *Rental) Cancel() error {
	if r.Status == RentalStatusCompleted {
		return fmt.Errorf("%w: a completed rental cannot be cancelled", ErrInvalidStateTransition)
	}
	r.Status = RentalStatusCancelled
	return nil
}
