package events

import (
	"context"

	"github.com/stpnv0/TableBooker/internal/domain"
)

// NopPublisher drops events; used when RABBITMQ_URL is empty.
type NopPublisher struct{}

func (NopPublisher) PublishBookingConfirmed(context.Context, *domain.Booking) error { return nil }

func (NopPublisher) PublishBookingCancelled(context.Context, *domain.Booking) error { return nil }

func (NopPublisher) Close() error { return nil }
