package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// execer runs statements that must not be repeated, such as inserts and
// counter bumps, so they skip the retry strategy.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type TableRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTableRepo(db *dbpg.DB) *TableRepository {
	return &TableRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const tableColumns = `id, restaurant_id, table_number, capacity,
				  minimum_party, maximum_party, location, status`

// List returns the restaurant's tables ordered by number. An empty
// restaurantID lists every table.
func (r *TableRepository) List(ctx context.Context, restaurantID string) ([]*domain.Table, error) {
	query := `SELECT ` + tableColumns + `
			  FROM tables
			  WHERE ($1 = '' OR restaurant_id = $1)
			  ORDER BY table_number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var res []*domain.Table
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *TableRepository) SetStatus(ctx context.Context, id string, status domain.TableStatus) error {
	query := `UPDATE tables SET status = $2 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update table status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("table rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrTableNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTable(s scanner) (*domain.Table, error) {
	var t domain.Table
	if err := s.Scan(
		&t.ID, &t.RestaurantID, &t.Number, &t.Capacity,
		&t.MinParty, &t.MaxParty, &t.Location, &t.Status,
	); err != nil {
		return nil, fmt.Errorf("scan table: %w", err)
	}
	return &t, nil
}
