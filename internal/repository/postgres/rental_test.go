package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/repository"
)

var rentalColumns = []string{"id", "customer_id", "car_id", "start_date", "end_date", "total_fee", "currency", "status", "created_at"}

func TestRentalRepository_Create(t *testing.T) {
	store, mock := newMockDB(t)
	ctx := context.Background()

	start := time.Now().AddDate(0, 0, 1)
	end := time.Now().AddDate(0, 0, 3)
	period, err := domain.NewRentalPeriod(start, end)
	require.NoError(t, err)
	fee, err := domain.NewMoney(6000, "TWD")
	require.NoError(t, err)

	rental := domain.NewRental(uuid.New(), uuid.New(), period, fee)

	mock.ExpectExec("INSERT INTO rentals").
		WithArgs(rental.ID, rental.CustomerID, rental.CarID,
			rental.Period.StartDate, rental.Period.EndDate,
			rental.TotalFee.Amount, rental.TotalFee.Currency,
			rental.Status, rental.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.RentalRepository.Create(ctx, rental))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_GetByCustomerID(t *testing.T) {
	store, mock := newMockDB(t)
	ctx := context.Background()

	customerID := uuid.New()
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM rentals WHERE customer_id").
		WithArgs(customerID).
		WillReturnRows(sqlmock.NewRows(rentalColumns).
			AddRow(uuid.New(), customerID, uuid.New(), now, now.AddDate(0, 0, 2), int64(2000), "TWD", "PENDING", now).
			AddRow(uuid.New(), customerID, uuid.New(), now, now.AddDate(0, 0, 1), int64(1500), "TWD", "COMPLETED", now))

	rentals, err := store.RentalRepository.GetByCustomerID(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, rentals, 2)
	assert.Equal(t, domain.RentalStatusPending, rentals[0].Status)
	assert.Equal(t, domain.RentalStatusCompleted, rentals[1].Status)
}

func TestRentalRepository_GetStalePending(t *testing.T) {
	store, mock := newMockDB(t)
	ctx := context.Background()

	cutoff := time.Now().Add(-24 * time.Hour)
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM rentals WHERE status = \\$1 AND created_at < \\$2").
		WithArgs(domain.RentalStatusPending, cutoff).
		WillReturnRows(sqlmock.NewRows(rentalColumns).
			AddRow(uuid.New(), uuid.New(), uuid.New(), now, now.AddDate(0, 0, 2), int64(2000), "TWD", "PENDING", now.Add(-48*time.Hour)))

	rentals, err := store.RentalRepository.GetStalePending(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, domain.RentalStatusPending, rentals[0].Status)
}

func TestRentalRepository_Update(t *testing.T) {
	store, mock := newMockDB(t)
	ctx := context.Background()

	rental := &domain.Rental{ID: uuid.New(), Status: domain.RentalStatusConfirmed}

	mock.ExpectExec("UPDATE rentals SET status").
		WithArgs(rental.Status, rental.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.RentalRepository.Update(ctx, rental))
}

func TestUnitOfWork_WithinTransaction(t *testing.T) {
	store, mock := newMockDB(t)
	ctx := context.Background()

	t.Run("CommitsOnSuccess", func(t *testing.T) {
		rental := &domain.Rental{ID: uuid.New(), Status: domain.RentalStatusCancelled}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rentals SET status").
			WithArgs(rental.Status, rental.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.UnitOfWork().WithinTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
			return repos.Rentals.Update(ctx, rental)
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnError", func(t *testing.T) {
		rental := &domain.Rental{ID: uuid.New(), Status: domain.RentalStatusCancelled}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rentals SET status").
			WithArgs(rental.Status, rental.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := store.UnitOfWork().WithinTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
			return repos.Rentals.Update(ctx, rental)
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
