package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusCompleted BookingStatus = "Completed"
)

// DefaultBookingDuration is the length of a booking in seconds when none is stored.
const DefaultBookingDuration = 7200

type BookingSource string

const (
	BookingSourceAPI     BookingSource = "api"
	BookingSourceVoiceAI BookingSource = "voice_ai"
)

type Booking struct {
	ID                 string        `json:"id"`
	TableID            string        `json:"table_id"`
	CustomerID         string        `json:"customer_id"`
	RestaurantID       string        `json:"restaurant_id"`
	CustomerPhone      string        `json:"customer_phone"`
	PartySize          int           `json:"party_size"`
	Date               time.Time     `json:"date"`
	StartTime          int           `json:"start_time"`
	Duration           int           `json:"duration"`
	Status             BookingStatus `json:"status"`
	SpecialRequests    string        `json:"special_requests"`
	Source             BookingSource `json:"source"`
	CancellationReason string        `json:"cancellation_reason"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// Interval returns the half-open time range the booking occupies on its date.
func (b *Booking) Interval() Interval {
	d := b.Duration
	if d <= 0 {
		d = DefaultBookingDuration
	}
	return NewInterval(b.StartTime, d)
}

type CreateBookingInput struct {
	RestaurantID      string
	CustomerName      string
	CustomerPhone     string
	CustomerEmail     string
	PartySize         int
	Date              string
	Time              string
	SeatingPreference string
	SpecialRequests   string
	Source            BookingSource
}

type BookingConfirmation struct {
	BookingID   string
	Date        string
	Time        string
	TableID     string
	TableNumber int
	Message     string
}

type AvailabilityInput struct {
	RestaurantID      string
	PartySize         int
	Date              string
	Time              string
	SeatingPreference string
}

type AvailabilityResult struct {
	Time         string
	TableNumbers []int
}

// AlternativeTimes is offered whenever no table can host a request.
// It is a fixed placeholder, not derived from real availability.
var AlternativeTimes = []string{"18:00", "19:30"}
