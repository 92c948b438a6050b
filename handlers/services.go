package handlers

import (
	"net/http"

	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the service catalogue, availability and bookings.
type BookingHandler struct {
	BookingSvc booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingSvc: svc}
}

// GetServices handles GET /service.
func (h *BookingHandler) GetServices(c *gin.Context) {
	services, err := h.BookingSvc.ListServices(c.Request.Context())
	if err != nil {
		getLogger(c).Error("GetServices: failed to fetch services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "failed to fetch services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailability handles GET /available?date=D.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter 'date' is required")
		return
	}

	services, err := h.BookingSvc.ComputeAvailability(c.Request.Context(), date)
	if err != nil {
		getLogger(c).Error("GetAvailability: failed to compute availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "failed to compute availability")
		return
	}
	c.JSON(http.StatusOK, services)
}
