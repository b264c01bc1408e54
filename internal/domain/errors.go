package domain

import "errors"

var (
	ErrTableNotFound    = errors.New("table not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

var (
	ErrNoSuitableTable = errors.New("no suitable tables available for the requested data")
	ErrSlotLocked      = errors.New("table slot is being booked by another request")
)

var (
	ErrCustomerExists = errors.New("customer with this email already exists")
)

var (
	ErrValidation = errors.New("validation error")
	ErrTimeFormat = errors.New("time must be in HH:MM format")
	ErrTimeRange  = errors.New("seconds out of day range")
	ErrDateFormat = errors.New("date must be in YYYY-MM-DD format")
)
