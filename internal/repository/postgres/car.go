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

type carRepository struct {
	db DBTX
}

func NewCarRepository(db DBTX) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (id, model, car_type, daily_rate, currency, is_available) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Model, c.CarType, c.DailyRate.Amount, c.DailyRate.Currency, c.IsAvailable)
	return err
}

func (r *carRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	query := `SELECT id, model, car_type, daily_rate, currency, is_available FROM cars WHERE id = $1`
	return scanCar(r.db.QueryRowContext(ctx, query, id), id)
}

// GetByIDForUpdate takes a row lock; only meaningful when the repository is
// backed by a transaction.
func (r *carRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	query := `SELECT id, model, car_type, daily_rate, currency, is_available FROM cars WHERE id = $1 FOR UPDATE`
	return scanCar(r.db.QueryRowContext(ctx, query, id), id)
}

func scanCar(row *sql.Row, id uuid.UUID) (*domain.Car, error) {
	c := &domain.Car{}
	err := row.Scan(&c.ID, &c.Model, &c.CarType, &c.DailyRate.Amount, &c.DailyRate.Currency, &c.IsAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: car %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) GetAvailableByType(ctx context.Context, carType domain.CarType) ([]domain.Car, error) {
	query := `SELECT id, model, car_type, daily_rate, currency, is_available FROM cars WHERE car_type = $1 AND is_available = TRUE ORDER BY model`
	rows, err := r.db.QueryContext(ctx, query, carType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCars(rows)
}

func (r *carRepository) GetAll(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT id, model, car_type, daily_rate, currency, is_available FROM cars ORDER BY model`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCars(rows)
}

func collectCars(rows *sql.Rows) ([]domain.Car, error) {
	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Model, &c.CarType, &c.DailyRate.Amount, &c.DailyRate.Currency, &c.IsAvailable); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET model = $1, is_available = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, c.Model, c.IsAvailable, c.ID)
	if err != nil {
		return err
	}
	return requireRow(res, fmt.Sprintf("car %s", c.ID))
}

func (r *carRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, fmt.Sprintf("car %s", id))
}
