package matcher

import (
	"context"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type memBookings struct {
	rows  []*domain.Booking
	err   error
	calls []string
}

func (m *memBookings) ListActiveByTableAndDate(_ context.Context, tableID string, date time.Time) ([]*domain.Booking, error) {
	m.calls = append(m.calls, tableID)
	if m.err != nil {
		return nil, m.err
	}

	var res []*domain.Booking
	for _, b := range m.rows {
		if b.TableID == tableID && b.Date.Equal(date) && b.Status != domain.BookingStatusCancelled {
			res = append(res, b)
		}
	}
	return res, nil
}

func mustDate(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func mustClock(s string) int {
	sec, err := domain.ParseWallClock(s)
	if err != nil {
		panic(err)
	}
	return sec
}
