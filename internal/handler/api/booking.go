package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "lensfolio/internal/handler/dto/request"
	resdto "lensfolio/internal/handler/dto/response"
	"lensfolio/internal/handler/middleware"
	"lensfolio/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
	authMiddleware *middleware.AuthMiddleware
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase, authMiddleware *middleware.AuthMiddleware) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		authMiddleware: authMiddleware,
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "All fields are required",
		})
		return
	}

	created, err := h.bookingUseCase.CreateBooking(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot is already booked",
			})
		case errors.Is(err, usecase.ErrInvalidBookingInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "All fields are required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to create booking",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// List serves both calendars: the admin sees everything, the public view
// gets confirmed bookings plus its own pending ones by email.
func (h *BookingHandler) List(c *gin.Context) {
	if c.Query("public") == "true" {
		bookings, err := h.bookingUseCase.ListPublicBookings(c.Request.Context(), c.Query("email"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to read bookings",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.FromBookings(bookings))
		return
	}

	if !h.authMiddleware.IsAdmin(c) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	bookings, err := h.bookingUseCase.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to read bookings",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}

func (h *BookingHandler) Update(c *gin.Context) {
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "ID is required",
		})
		return
	}

	updated, err := h.bookingUseCase.UpdateBooking(c.Request.Context(), req.ID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot is already booked",
			})
		case errors.Is(err, usecase.ErrInvalidBookingStatus), errors.Is(err, usecase.ErrInvalidBookingInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking update",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to update booking",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(updated))
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "ID is required",
		})
		return
	}

	if err := h.bookingUseCase.DeleteBooking(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to delete booking",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// Availability lists the hour slots of one day for a session length, each
// marked available or taken.
func (h *BookingHandler) Availability(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date must be formatted as YYYY-MM-DD",
		})
		return
	}

	hours, err := strconv.Atoi(c.DefaultQuery("hours", "1"))
	if err != nil || hours <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Hours must be a positive number",
		})
		return
	}

	slots, err := h.bookingUseCase.DayAvailability(c.Request.Context(), day, hours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute availability",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHourSlots(slots))
}
