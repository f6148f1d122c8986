// Package postgres provides the durable storage backend. Statements are kept
// simple enough for both *sql.DB and *sql.Tx, so the same repositories serve
// direct calls and unit-of-work transactions.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rentalcar-backend/internal/repository"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store bundles the postgres-backed repositories over one connection pool.
type Store struct {
	db *sql.DB

	CustomerRepository repository.CustomerRepository
	CarRepository      repository.CarRepository
	RentalRepository   repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		CustomerRepository: NewCustomerRepository(db),
		CarRepository:      NewCarRepository(db),
		RentalRepository:   NewRentalRepository(db),
	}
}

// UnitOfWork returns the unit of work bound to this store's pool.
func (s *Store) UnitOfWork() repository.UnitOfWork {
	return &unitOfWork{db: s.db}
}

type unitOfWork struct {
	db *sql.DB
}

// SaveChanges is a no-op: repositories write through immediately and
// transactional sequences commit inside WithinTransaction.
func (u *unitOfWork) SaveChanges(ctx context.Context) error {
	return nil
}

// WithinTransaction runs fn against tx-backed repositories and commits when
// fn succeeds. Combined with GetByIDForUpdate's row lock this closes the
// read-availability/write-availability race on concurrent bookings.
func (u *unitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	repos := repository.Repositories{
		Customers: NewCustomerRepository(tx),
		Cars:      NewCarRepository(tx),
		Rentals:   NewRentalRepository(tx),
	}

	if err := fn(ctx, repos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
