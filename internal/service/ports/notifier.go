package ports

import (
	"context"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking, table *domain.Table)
	NotifyBookingCancelled(ctx context.Context, booking *domain.Booking)
}

type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, booking *domain.Booking) error
	PublishBookingCancelled(ctx context.Context, booking *domain.Booking) error
}
