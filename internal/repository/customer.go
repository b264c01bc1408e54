package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CustomerRepository struct {
	db       *dbpg.DB
	writer   execer
	strategy retry.Strategy
}

func NewCustomerRepo(db *dbpg.DB) *CustomerRepository {
	return &CustomerRepository{
		db:       db,
		writer:   db.Master,
		strategy: defaultStrategy(),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (id, name, email, phone, first_visit, last_visit,
			  	visit_count, preferred_seating, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.writer.ExecContext(
		ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.FirstVisit, c.LastVisit,
		c.VisitCount, c.PreferredSeating, c.Status, c.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCustomerExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT id, name, email, phone, first_visit, last_visit,
			  	visit_count, preferred_seating, status, created_at
			  FROM customers
			  WHERE email = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	var c domain.Customer
	if err = row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.FirstVisit, &c.LastVisit,
		&c.VisitCount, &c.PreferredSeating, &c.Status, &c.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}

	return &c, nil
}

// RecordVisit bumps the visit counter and moves last_visit to visitDate.
func (r *CustomerRepository) RecordVisit(ctx context.Context, id string, visitDate time.Time) error {
	query := `UPDATE customers
			  SET visit_count = visit_count + 1, last_visit = $2
			  WHERE id = $1`

	res, err := r.writer.ExecContext(ctx, query, id, visitDate)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("customer rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}
