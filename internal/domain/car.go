package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Car is an identity-bearing entity. The daily rate is derived from the car
// type catalog at creation time and never changes afterwards.
type Car struct {
	ID          uuid.UUID `json:"id"`
	Model       string    `json:"model"`
	CarType     CarType   `json:"car_type"`
	DailyRate   Money     `json:"daily_rate"`
	IsAvailable bool      `json:"is_available"`
}

// NewCar validates the model, resolves the rate from the catalog and returns
// an available car.
func NewCar(model string, carType CarType) (*Car, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%w: model must not be blank", ErrValidation)
	}
	info, err := CarTypeInfoFor(carType)
	if err != nil {
		return nil, err
	}
	return &Car{
		ID:          uuid.New(),
		Model:       model,
		CarType:     carType,
		DailyRate:   info.DailyRate,
		IsAvailable: true,
	}, nil
}

func (c *Car) Identity() uuid.UUID {
	return c.ID
}

// SetAvailability is an unconditional setter. Any car can flip availability
// at any time; rental lifecycle guards live on Rental, not here.
func (c *Car) SetAvailability(available bool) {
	c.IsAvailable = available
}

// CalculateRentalFee returns DailyRate times the period's day count. The
// period's own invariant already forbids non-positive spans; the guard here
// protects against a zero-value period reaching this method.
func (c *Car) CalculateRentalFee(period RentalPeriod) (Money, error) {
	days := period.Days()
	if days <= 0 {
		return Money{}, fmt.Errorf("%w: rental days must be positive", ErrValidation)
	}
	return c.DailyRate.MultiplyDays(days)
}
