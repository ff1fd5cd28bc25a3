package handler

import (
	"errors"
	"net/http"
	"strconv"

	"restavo/internal/model"
	"restavo/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking requests
type BookingHandler struct {
	service service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(s service.BookingService) *BookingHandler {
	return &BookingHandler{service: s}
}

func (h *BookingHandler) Create(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.BookingName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking name is required"})
		return
	}

	booking, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"id":      booking.ID,
	})
}

func (h *BookingHandler) List(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	bookings, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	booking, err := h.service.GetByID(c.Request.Context(), bookingID, userID)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve booking"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), bookingID, userID); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// RegisterBookingRoutes registers booking routes, all behind authentication
func (h *BookingHandler) RegisterBookingRoutes(rg *gin.RouterGroup, jwtAuthMW gin.HandlerFunc) {
	bookingGroup := rg.Group("/bookings", jwtAuthMW)
	{
		bookingGroup.POST("", h.Create)
		bookingGroup.GET("", h.List)
		bookingGroup.GET("/:id", h.GetByID)
		bookingGroup.DELETE("/:id", h.Delete)
	}
}
