package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/handler/dto"
	"github.com/stpnv0/TableBooker/internal/toolcall"
	"github.com/wb-go/wbf/ginext"
)

const (
	msgNoTableCreate = "No suitable tables available for the requested data."
	msgNoTableCheck  = "No suitable tables available for the requested time."
	msgCreateFailed  = "An error occurred while creating the booking."
	msgCheckFailed   = "Error checking table availability."
	msgLookupFailed  = "Error retrieving bookings."
	msgCancelFailed  = "Error cancelling booking."
	msgCancelled     = "Booking successfully cancelled."
	msgInvalidInput  = "Invalid request."
)

type BookingSvc interface {
	CreateBooking(ctx context.Context, in domain.CreateBookingInput) (*domain.BookingConfirmation, error)
	CheckAvailability(ctx context.Context, in domain.AvailabilityInput) (*domain.AvailabilityResult, error)
	LookupBookings(ctx context.Context, identifier, restaurantID string) ([]*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID, reason string) (*domain.Booking, error)
}

type Handler struct {
	bookingService BookingSvc
}

func NewHandler(bookingService BookingSvc) *Handler {
	return &Handler{bookingService: bookingService}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	h.createBooking(c, req, domain.BookingSourceAPI)
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	var req dto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	h.checkAvailability(c, req)
}

func (h *Handler) CheckBooking(c *ginext.Context) {
	var q dto.CheckBookingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, err)
		return
	}

	bookings, err := h.bookingService.LookupBookings(c.Request.Context(), q.Identifier, q.RestaurantID)
	if err != nil {
		if isValidation(err) {
			h.handleError(c, err, msgLookupFailed)
			return
		}
		c.Set("error", err.Error())
		c.JSON(http.StatusInternalServerError, dto.CheckBookingResponse{
			Bookings: []dto.BookingSummary{},
			Message:  msgLookupFailed,
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckBookingResponse(bookings))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), req.BookingReference, req.CancellationReason)
	if err != nil {
		h.handleError(c, err, msgCancelFailed)
		return
	}

	summary := dto.ToBookingSummary(booking)
	c.JSON(http.StatusOK, dto.CancelBookingResponse{
		Success: true,
		Data:    &summary,
		Message: msgCancelled,
	})
}

// Voice assistant tool calls

func (h *Handler) VoiceCreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if !h.decodeToolCall(c, &req) {
		return
	}

	h.createBooking(c, req, domain.BookingSourceVoiceAI)
}

func (h *Handler) VoiceCheckAvailability(c *ginext.Context) {
	var req dto.CheckAvailabilityRequest
	if !h.decodeToolCall(c, &req) {
		return
	}

	h.checkAvailability(c, req)
}

func (h *Handler) decodeToolCall(c *ginext.Context, dst any) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.badRequest(c, err)
		return false
	}

	if err = toolcall.Decode(body, dst); err != nil {
		if errors.Is(err, toolcall.ErrMissingToolCall) {
			c.Set("error", err.Error())
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "Invalid request payload: toolCalls missing",
			})
			return false
		}
		h.badRequest(c, err)
		return false
	}

	return true
}

func (h *Handler) createBooking(c *ginext.Context, req dto.CreateBookingRequest, source domain.BookingSource) {
	input := domain.CreateBookingInput{
		RestaurantID:      req.RestaurantID,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		CustomerEmail:     req.CustomerEmail,
		PartySize:         req.PartySize,
		Date:              req.Date,
		Time:              req.Time,
		SeatingPreference: req.SeatingPreference,
		SpecialRequests:   req.SpecialRequests,
		Source:            source,
	}

	conf, err := h.bookingService.CreateBooking(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrNoSuitableTable) {
			c.JSON(http.StatusBadRequest, dto.NoTableResponse{
				Error:            msgNoTableCreate,
				AlternativeTimes: domain.AlternativeTimes,
			})
			return
		}
		h.handleError(c, err, msgCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreateBookingResponse(conf))
}

func (h *Handler) checkAvailability(c *ginext.Context, req dto.CheckAvailabilityRequest) {
	input := domain.AvailabilityInput{
		RestaurantID:      req.RestaurantID,
		PartySize:         req.PartySize,
		Date:              req.Date,
		Time:              req.Time,
		SeatingPreference: req.SeatingPreference,
	}

	res, err := h.bookingService.CheckAvailability(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrNoSuitableTable) {
			c.JSON(http.StatusOK, dto.NoTableResponse{
				Message:          msgNoTableCheck,
				AlternativeTimes: domain.AlternativeTimes,
			})
			return
		}
		h.handleError(c, err, msgCheckFailed)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(res))
}

func (h *Handler) badRequest(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Message: msgInvalidInput,
		Errors:  dto.FieldErrors(err),
	})
}

func isValidation(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrTimeFormat) ||
		errors.Is(err, domain.ErrTimeRange) ||
		errors.Is(err, domain.ErrDateFormat)
}

func (h *Handler) handleError(c *ginext.Context, err error, fallback string) {
	c.Set("error", err.Error())

	switch {
	case isValidation(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: msgInvalidInput, Error: err.Error()})

	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrTableNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Not found.", Error: err.Error()})

	case errors.Is(err, domain.ErrSlotLocked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Message: "The table is being booked by another request, please retry.",
			Error:   err.Error(),
		})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback, Error: err.Error()})
	}
}
