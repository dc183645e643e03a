package domain

// Booking is the wire and storage representation of a single appointment.
// The JSON tags are the persisted schema: API responses and the bookings
// file carry the exact same shape.
type Booking struct {
	ID        int64   `json:"id"`
	Service   string  `json:"service"`
	Duration  string  `json:"duration"`
	Price     string  `json:"price"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Datetime  string  `json:"datetime"`
	AromaOil  *string `json:"aroma_oil,omitempty"`
	Pressure  *string `json:"pressure,omitempty"`
	FocusArea *string `json:"focus_area,omitempty"`
	AvoidArea *string `json:"avoid_area,omitempty"`
	BookedOn  string  `json:"bookedOn"`
}

type CreateBookingInput struct {
	Service   string
	Duration  string
	Price     string
	Name      string
	Phone     string
	Datetime  string
	AromaOil  *string
	Pressure  *string
	FocusArea *string
	AvoidArea *string
}
