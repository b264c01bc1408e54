package matcher

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type BookingQuerier interface {
	ListActiveByTableAndDate(ctx context.Context, tableID string, date time.Time) ([]*domain.Booking, error)
}

type AvailabilityChecker struct {
	bookings BookingQuerier
}

func NewAvailabilityChecker(bookings BookingQuerier) *AvailabilityChecker {
	return &AvailabilityChecker{bookings: bookings}
}

// IsAvailable reports whether no live booking of the table on date overlaps
// [start, start+duration).
func (c *AvailabilityChecker) IsAvailable(
	ctx context.Context,
	tableID string,
	date time.Time,
	start, duration int,
) (bool, error) {
	existing, err := c.bookings.ListActiveByTableAndDate(ctx, tableID, date)
	if err != nil {
		return false, fmt.Errorf("list bookings for table %s: %w", tableID, err)
	}

	return !Conflicts(existing, domain.NewInterval(start, duration)), nil
}

// FilterAvailable keeps the tables that are free for the requested interval.
// Tables are checked one by one in input order.
func (c *AvailabilityChecker) FilterAvailable(
	ctx context.Context,
	tables []*domain.Table,
	date time.Time,
	start, duration int,
) ([]*domain.Table, error) {
	free := make([]*domain.Table, 0, len(tables))
	for _, t := range tables {
		ok, err := c.IsAvailable(ctx, t.ID, date, start, duration)
		if err != nil {
			return nil, err
		}
		if ok {
			free = append(free, t)
		}
	}

	return free, nil
}

// Conflicts reports whether any non-cancelled booking overlaps requested.
func Conflicts(bookings []*domain.Booking, requested domain.Interval) bool {
	for _, b := range bookings {
		if b.Status == domain.BookingStatusCancelled {
			continue
		}
		if requested.Overlaps(b.Interval()) {
			return true
		}
	}
	return false
}
