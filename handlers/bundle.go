package handlers

import (
	"doctorsportal/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Tokens verifies bearer tokens on protected routes.
	Tokens middleware.TokenVerifier
	// AdminCheckRequireAuth puts GET /admin/:email behind the token guard.
	AdminCheckRequireAuth bool
	CORSAllowOrigins      []string

	// Service catalogue and availability
	GetServicesHandler     gin.HandlerFunc
	GetAvailabilityHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler      gin.HandlerFunc
	GetPatientBookingsHandler gin.HandlerFunc

	// User endpoints
	GetAllUsersHandler gin.HandlerFunc
	UpsertUserHandler  gin.HandlerFunc

	// Admin endpoints
	CheckAdminHandler   gin.HandlerFunc
	PromoteAdminHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}
