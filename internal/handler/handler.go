package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SALI676/booking-dolphin-spa201/internal/domain"
	"github.com/SALI676/booking-dolphin-spa201/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context) []domain.Booking
	Cancel(ctx context.Context, id int64) (*domain.Booking, error)
}

type Handler struct {
	bookingService BookingSvc
}

func NewHandler(bookingService BookingSvc) *Handler {
	return &Handler{bookingService: bookingService}
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *Handler) ListBookings(c *ginext.Context) {
	c.JSON(http.StatusOK, h.bookingService.List(c.Request.Context()))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	rawID := c.Param("id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		// A non-numeric id can never match a stored booking.
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Booking not found."})
		return
	}

	if _, err = h.bookingService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	// echo the id as the client wrote it
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Booking with ID %s cancelled.", rawID),
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Booking not found."})

	case errors.Is(err, domain.ErrMissingFields):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields."})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
