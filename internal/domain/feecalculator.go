package domain

import "fmt"

// RentalFeeCalculator is a stateless domain service composing a car and a
// rental period into a fee.
type RentalFeeCalculator struct{}

func NewRentalFeeCalculator() *RentalFeeCalculator {
	return &RentalFeeCalculator{}
}

// CalculateRentalFee delegates to the car's own fee calculation.
func (c *RentalFeeCalculator) CalculateRentalFee(car *Car, period RentalPeriod) (Money, error) {
	if car == nil {
		return Money{}, fmt.Errorf("%w: car is required", ErrValidation)
	}
	if period == (RentalPeriod{}) {
		return Money{}, fmt.Errorf("%w: rental period is required", ErrValidation)
	}
	return car.CalculateRentalFee(period)
}

// CalculateRentalFeeWithDiscount subtracts discountPercentage percent from
// the base fee. Percentages at or below zero leave the fee unchanged. A
// discount that would drive the fee negative is rejected by Money's
// non-negative invariant rather than clamped to zero.
func (c *RentalFeeCalculator) CalculateRentalFeeWithDiscount(car *Car, period RentalPeriod, discountPercentage float64) (Money, error) {
	baseFee, err := c.CalculateRentalFee(car, period)
	if err != nil {
		return Money{}, err
	}
	if discountPercentage <= 0 {
		return baseFee, nil
	}
	discount, err := baseFee.Multiply(discountPercentage / 100)
	if err != nil {
		return Money{}, err
	}
	return baseFee.Subtract(discount)
}
