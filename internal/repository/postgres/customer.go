package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/repository"
)

type customerRepository struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (id, user_id, name, email, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.Name, c.Email, c.CreatedAt)
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	query := `SELECT id, user_id, name, email, created_at FROM customers WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), fmt.Sprintf("customer %s", id))
}

func (r *customerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Customer, error) {
	query := `SELECT id, user_id, name, email, created_at FROM customers WHERE user_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID), fmt.Sprintf("customer with user id %q", userID))
}

func (r *customerRepository) scanOne(row *sql.Row, desc string) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, desc)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, user_id, name, email, created_at FROM customers ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name = $1, email = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Email, c.ID)
	if err != nil {
		return err
	}
	return requireRow(res, fmt.Sprintf("customer %s", c.ID))
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, fmt.Sprintf("customer %s", id))
}

// requireRow turns a zero-row write into a not-found error.
func requireRow(res sql.Result, desc string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, desc)
	}
	return nil
}
