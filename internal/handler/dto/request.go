package dto

type CreateBookingRequest struct {
	CustomerName      string `json:"customerName" binding:"required"`
	CustomerPhone     string `json:"customerPhone" binding:"required"`
	CustomerEmail     string `json:"customerEmail" binding:"required,email"`
	PartySize         int    `json:"partySize" binding:"required,gt=0"`
	Date              string `json:"date" binding:"required"`
	Time              string `json:"time" binding:"required"`
	SeatingPreference string `json:"seatingPreference"`
	SpecialRequests   string `json:"specialRequests"`
	RestaurantID      string `json:"restaurantId"`
}

type CheckAvailabilityRequest struct {
	PartySize         int    `json:"partySize" binding:"required,gt=0"`
	Date              string `json:"date" binding:"required"`
	Time              string `json:"time" binding:"required"`
	SeatingPreference string `json:"seatingPreference"`
	RestaurantID      string `json:"restaurantId" binding:"required"`
}

type CheckBookingQuery struct {
	Identifier   string `form:"identifier" binding:"required"`
	RestaurantID string `form:"restaurantId" binding:"required"`
}

type CancelBookingRequest struct {
	BookingReference   string `json:"bookingReference" binding:"required"`
	CancellationReason string `json:"cancellationReason" binding:"required"`
}
