package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type fieldRule struct {
	name    string
	message string
}

var fieldRules = map[string]fieldRule{
	"CustomerName":       {"customerName", "Customer name is required."},
	"CustomerPhone":      {"customerPhone", "Valid phone number is required."},
	"CustomerEmail":      {"customerEmail", "Valid email is required."},
	"PartySize":          {"partySize", "Party size must be a positive integer."},
	"Date":               {"date", "Booking date is required."},
	"Time":               {"time", "Booking time is required."},
	"RestaurantID":       {"restaurantId", "Restaurant ID is required."},
	"Identifier":         {"identifier", "Phone number or booking reference is required."},
	"BookingReference":   {"bookingReference", "Booking reference is required."},
	"CancellationReason": {"cancellationReason", "Cancellation reason is required."},
}

// FieldErrors turns a binding error into per-field messages. Errors that are
// not validator failures (malformed JSON, wrong types) come back as a single
// entry without a field.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}

	res := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		rule, ok := fieldRules[fe.Field()]
		if !ok {
			res = append(res, FieldError{Field: fe.Field(), Message: fe.Error()})
			continue
		}
		res = append(res, FieldError{Field: rule.name, Message: rule.message})
	}
	return res
}
