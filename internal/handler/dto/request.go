package dto

import "github.com/SALI676/booking-dolphin-spa201/internal/domain"

// CreateBookingRequest carries the client field names; the four preference
// fields are renamed to the storage schema when the booking is built.
type CreateBookingRequest struct {
	Service   string  `json:"service"`
	Duration  string  `json:"duration"`
	Price     string  `json:"price"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Datetime  string  `json:"datetime"`
	AromaOil  *string `json:"aromaOil"`
	Pressure  *string `json:"pressure"`
	FocusArea *string `json:"focusArea"`
	AvoidArea *string `json:"avoidArea"`
}

func (r CreateBookingRequest) ToInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		Service:   r.Service,
		Duration:  r.Duration,
		Price:     r.Price,
		Name:      r.Name,
		Phone:     r.Phone,
		Datetime:  r.Datetime,
		AromaOil:  r.AromaOil,
		Pressure:  r.Pressure,
		FocusArea: r.FocusArea,
		AvoidArea: r.AvoidArea,
	}
}
