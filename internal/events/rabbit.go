package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/TableBooker/internal/domain"
)

const (
	KeyBookingConfirmed = "booking.confirmed"
	KeyBookingCancelled = "booking.cancelled"
)

// BookingEvent is the JSON body of every booking message.
type BookingEvent struct {
	Type               string    `json:"type"`
	BookingID          string    `json:"booking_id"`
	TableID            string    `json:"table_id"`
	RestaurantID       string    `json:"restaurant_id,omitempty"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	PartySize          int       `json:"party_size"`
	Source             string    `json:"source"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}

func NewBookingEvent(key string, b *domain.Booking) BookingEvent {
	clock, _ := domain.FormatSeconds(b.StartTime)
	return BookingEvent{
		Type:               key,
		BookingID:          b.ID,
		TableID:            b.TableID,
		RestaurantID:       b.RestaurantID,
		Date:               b.Date.Format(domain.DateLayout),
		Time:               clock,
		PartySize:          b.PartySize,
		Source:             string(b.Source),
		CancellationReason: b.CancellationReason,
		OccurredAt:         b.UpdatedAt,
	}
}

type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *RabbitPublisher) PublishBookingConfirmed(ctx context.Context, b *domain.Booking) error {
	return p.publishJSON(ctx, KeyBookingConfirmed, NewBookingEvent(KeyBookingConfirmed, b))
}

func (p *RabbitPublisher) PublishBookingCancelled(ctx context.Context, b *domain.Booking) error {
	return p.publishJSON(ctx, KeyBookingCancelled, NewBookingEvent(KeyBookingCancelled, b))
}

func (p *RabbitPublisher) publishJSON(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	return nil
}

func (p *RabbitPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
