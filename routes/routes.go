package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const greeting = "Welcome to doctors portal server side"

// RegisterServiceRoutes registers the public catalogue endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/service", hb.GetServicesHandler)
	r.GET("/services", hb.GetServicesHandler)
	r.GET("/available", hb.GetAvailabilityHandler)
}

// RegisterUserRoutes registers user and admin endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuthMiddleware(hb.Tokens)

	r.GET("/user", auth, hb.GetAllUsersHandler)
	r.PUT("/user/:email", hb.UpsertUserHandler)
	r.PUT("/user/admin/:email", auth, hb.PromoteAdminHandler)

	if hb.AdminCheckRequireAuth {
		r.GET("/admin/:email", auth, hb.CheckAdminHandler)
	} else {
		r.GET("/admin/:email", hb.CheckAdminHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/booking", middleware.JWTAuthMiddleware(hb.Tokens), hb.GetPatientBookingsHandler)
	r.POST("/booking", hb.CreateBookingHandler)
}

// RegisterHealthRoute registers the greeting and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, greeting)
	})
	if hb.HealthHandler != nil {
		r.GET("/health", hb.HealthHandler)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(corsConfig(hb.CORSAllowOrigins)))

	RegisterHealthRoute(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
