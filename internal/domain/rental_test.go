package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRental(t *testing.T) *Rental {
	t.Helper()
	start := time.Now().AddDate(0, 0, 1)
	period, err := NewRentalPeriod(start, start.AddDate(0, 0, 3))
	require.NoError(t, err)
	fee, err := NewMoney(4500, "TWD")
	require.NoError(t, err)
	return NewRental(uuid.New(), uuid.New(), period, fee)
}

func rentalInStatus(t *testing.T, status RentalStatus) *Rental {
	t.Helper()
	r := newTestRental(t)
	r.Status = status
	return r
}

func TestNewRental(t *testing.T) {
	r := newTestRental(t)
	assert.Equal(t, RentalStatusPending, r.Status)
	assert.Equal(t, int64(4500), r.TotalFee.Amount)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestRental_StateMachine(t *testing.T) {
	statuses := []RentalStatus{
		RentalStatusPending,
		RentalStatusConfirmed,
		RentalStatusActive,
		RentalStatusCompleted,
		RentalStatusCancelled,
	}

	actions := []struct {
		name  string
		apply func(*Rental) error
		legal map[RentalStatus]bool
		next  RentalStatus
	}{
		{
			name:  "Confirm",
			apply: (*Rental).Confirm,
			legal: map[RentalStatus]bool{RentalStatusPending: true},
			next:  RentalStatusConfirmed,
		},
		{
			name:  "Start",
			apply: (*Rental).Start,
			legal: map[RentalStatus]bool{RentalStatusConfirmed: true},
			next:  RentalStatusActive,
		},
		{
			name:  "Complete",
			apply: (*Rental).Complete,
			legal: map[RentalStatus]bool{RentalStatusActive: true},
			next:  RentalStatusCompleted,
		},
		{
			name:  "Cancel",
			apply: (*Rental).Cancel,
			legal: map[RentalStatus]bool{
				RentalStatusPending:   true,
				RentalStatusConfirmed: true,
				RentalStatusActive:    true,
				RentalStatusCancelled: true,
			},
			next: RentalStatusCancelled,
		},
	}

	for _, action := range actions {
		for _, status := range statuses {
			t.Run(action.name+"From"+string(status), func(t *testing.T) {
				r := rentalInStatus(t, status)
				err := action.apply(r)
				if action.legal[status] {
					require.NoError(t, err)
					assert.Equal(t, action.next, r.Status)
				} else {
					assert.ErrorIs(t, err, ErrInvalidStateTransition)
					assert.Equal(t, status, r.Status, "status must not change on rejection")
				}
			})
		}
	}
}

func TestRental_FullLifecycle(t *testing.T) {
	r := newTestRental(t)
	require.NoError(t, r.Confirm())
	require.NoError(t, r.Start())
	require.NoError(t, r.Complete())
	assert.ErrorIs(t, r.Cancel(), ErrInvalidStateTransition)
}
