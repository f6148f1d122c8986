package domain

import (
	"fmt"
	"time"
)

// RentalPeriod is an immutable date range. End must be strictly after start,
// and start must not lie before today at construction time.
type RentalPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// NewRentalPeriod validates against the current date.
func NewRentalPeriod(start, end time.Time) (RentalPeriod, error) {
	return newRentalPeriodAt(start, end, time.Now())
}

func newRentalPeriodAt(start, end time.Time, now time.Time) (RentalPeriod, error) {
	if !end.After(start) {
		return RentalPeriod{}, fmt.Errorf("%w: end date must be after start date", ErrInvalidPeriod)
	}
	today := truncateToDay(now)
	if truncateToDay(start).Before(today) {
		return RentalPeriod{}, fmt.Errorf("%w: start date must not be before today", ErrInvalidPeriod)
	}
	return RentalPeriod{StartDate: start, EndDate: end}, nil
}

// Days is the whole-day difference between end and start. Fractional days
// truncate toward zero, consistent with calendar-day subtraction.
func (p RentalPeriod) Days() int {
	return int(p.EndDate.Sub(p.StartDate).Hours() / 24)
}

func (p RentalPeriod) String() string {
	return fmt.Sprintf("%s ~ %s (%d days)", p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"), p.Days())
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
