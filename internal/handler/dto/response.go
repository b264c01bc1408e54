package dto

import (
	"github.com/stpnv0/TableBooker/internal/domain"
)

type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type ConfirmedDetails struct {
	Date          string `json:"date"`
	Time          string `json:"time"`
	TableAssigned int    `json:"tableAssigned"`
	Message       string `json:"message"`
}

type CreateBookingResponse struct {
	Success          bool             `json:"success"`
	BookingReference string           `json:"bookingReference"`
	ConfirmedDetails ConfirmedDetails `json:"confirmedDetails"`
}

type NoTableResponse struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message,omitempty"`
	Error            string   `json:"error,omitempty"`
	AlternativeTimes []string `json:"alternativeTimes"`
}

type AvailableSlot struct {
	Time   string `json:"time"`
	Tables []int  `json:"tables"`
}

type AvailabilityResponse struct {
	Success         bool            `json:"success"`
	AvailableTables []AvailableSlot `json:"availableTables"`
	Message         string          `json:"message"`
}

type BookingSummary struct {
	BookingReference   string `json:"bookingReference"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	PartySize          int    `json:"partySize"`
	Status             string `json:"status"`
	SpecialRequests    string `json:"specialRequests,omitempty"`
	CancellationReason string `json:"cancellationReason,omitempty"`
}

type CheckBookingResponse struct {
	Found    bool             `json:"found"`
	Bookings []BookingSummary `json:"bookings"`
	Message  string           `json:"message"`
	Error    string           `json:"error,omitempty"`
}

type CancelBookingResponse struct {
	Success bool            `json:"success"`
	Data    *BookingSummary `json:"data"`
	Message string          `json:"message"`
}

func ToCreateBookingResponse(c *domain.BookingConfirmation) CreateBookingResponse {
	return CreateBookingResponse{
		Success:          true,
		BookingReference: c.BookingID,
		ConfirmedDetails: ConfirmedDetails{
			Date:          c.Date,
			Time:          c.Time,
			TableAssigned: c.TableNumber,
			Message:       c.Message,
		},
	}
}

func ToAvailabilityResponse(r *domain.AvailabilityResult) AvailabilityResponse {
	return AvailabilityResponse{
		Success: true,
		AvailableTables: []AvailableSlot{
			{Time: r.Time, Tables: r.TableNumbers},
		},
		Message: "Tables available for booking.",
	}
}

func ToBookingSummary(b *domain.Booking) BookingSummary {
	// stored start times are always in range; a bad row shows an empty time
	clock, _ := domain.FormatSeconds(b.StartTime)
	return BookingSummary{
		BookingReference:   b.ID,
		Date:               b.Date.Format(domain.DateLayout),
		Time:               clock,
		PartySize:          b.PartySize,
		Status:             string(b.Status),
		SpecialRequests:    b.SpecialRequests,
		CancellationReason: b.CancellationReason,
	}
}

func ToCheckBookingResponse(bookings []*domain.Booking) CheckBookingResponse {
	resp := CheckBookingResponse{
		Found:    len(bookings) > 0,
		Bookings: make([]BookingSummary, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, ToBookingSummary(b))
	}

	if resp.Found {
		resp.Message = "Bookings successfully retrieved."
	} else {
		resp.Message = "No bookings found for the provided identifier."
	}
	return resp
}
