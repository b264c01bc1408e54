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

type BookingRepository struct {
	db       *dbpg.DB
	writer   execer
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		writer:   db.Master,
		strategy: defaultStrategy(),
	}
}

const bookingColumns = `id, table_id, customer_id, restaurant_id, customer_phone, party_size,
				  booking_date, start_time, duration, status, special_requests, source,
				  cancellation_reason, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.writer.ExecContext(
		ctx, query,
		b.ID, b.TableID, b.CustomerID, b.RestaurantID, b.CustomerPhone, b.PartySize,
		b.Date, b.StartTime, b.Duration, b.Status, b.SpecialRequests, b.Source,
		b.CancellationReason, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrTableNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id::text = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	return b, nil
}

// ListActiveByTableAndDate returns the table's non-cancelled bookings on date.
func (r *BookingRepository) ListActiveByTableAndDate(ctx context.Context, tableID string, date time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE table_id = $1
			    AND booking_date = $2::date
			    AND status <> $3
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		tableID, date.Format(domain.DateLayout), domain.BookingStatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings by table: %w", err)
	}

	return collectBookings(rows)
}

// FindByIdentifier matches identifier against the customer phone or the
// booking id. An empty restaurantID searches every restaurant.
func (r *BookingRepository) FindByIdentifier(ctx context.Context, identifier, restaurantID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE (customer_phone = $1 OR id::text = $1)
			    AND ($2 = '' OR restaurant_id = $2)
			  ORDER BY booking_date DESC, start_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, identifier, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}

	return collectBookings(rows)
}

func (r *BookingRepository) Cancel(ctx context.Context, id, reason string) error {
	query := `UPDATE bookings
			  SET status = $2, cancellation_reason = $3, updated_at = now()
			  WHERE id::text = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.BookingStatusCancelled, reason)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

// booking dates and start times are UTC wall clock
const completeFinishedQuery = `
        UPDATE bookings
        SET status = $2, updated_at = $3
        WHERE status = $1
          AND (booking_date + make_interval(secs => start_time + COALESCE(NULLIF(duration, 0), $4))) AT TIME ZONE 'UTC' < $3
        RETURNING ` + bookingColumns

// CompleteFinished moves confirmed bookings whose slot ended before now to
// Completed and returns them.
func (r *BookingRepository) CompleteFinished(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, completeFinishedQuery,
		domain.BookingStatusConfirmed, domain.BookingStatusCompleted,
		now, domain.DefaultBookingDuration,
	)
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}

	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := s.Scan(
		&b.ID, &b.TableID, &b.CustomerID, &b.RestaurantID, &b.CustomerPhone, &b.PartySize,
		&b.Date, &b.StartTime, &b.Duration, &b.Status, &b.SpecialRequests, &b.Source,
		&b.CancellationReason, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return &b, nil
}
