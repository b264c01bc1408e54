package ports

import (
	"context"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListActiveByTableAndDate(ctx context.Context, tableID string, date time.Time) ([]*domain.Booking, error)
	FindByIdentifier(ctx context.Context, identifier, restaurantID string) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id, reason string) error
	CompleteFinished(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}
