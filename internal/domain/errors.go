package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrMissingFields   = errors.New("missing required fields")
)
