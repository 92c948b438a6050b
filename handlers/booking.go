package handlers

import (
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateBooking handles POST /booking. A duplicate treatment/date/patient is
// reported in the body with success=false, not as an HTTP error.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking", err.Error())
		return
	}
	b.ID = primitive.NilObjectID

	outcome, err := h.BookingSvc.CreateBooking(c.Request.Context(), &b)
	if err != nil {
		getLogger(c).Error("CreateBooking: failed to store booking",
			zap.String("treatment", b.Treatment),
			zap.String("date", b.Date),
			zap.Error(err),
		)
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "failed to create booking")
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// GetPatientBookings handles GET /booking?patient=P. Callers may only list
// their own bookings.
func (h *BookingHandler) GetPatientBookings(c *gin.Context) {
	patient := c.Query("patient")
	decodedEmail, ok := middleware.DecodedEmail(c)
	if !ok || patient != decodedEmail {
		utils.JSONError(c, http.StatusForbidden, "forbidden access", "")
		return
	}

	bookings, err := h.BookingSvc.ListByPatient(c.Request.Context(), patient)
	if err != nil {
		getLogger(c).Error("GetPatientBookings: failed to fetch bookings", zap.String("patient", patient), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}
