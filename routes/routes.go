package routes

import (
	"net/http"
	"time"

	"stayhub/config"
	"stayhub/handlers"
	"stayhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Users.Register)
		api.POST("/login", hb.Users.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.Users.Me)
	}
}

// RegisterPropertyRoutes registers listing CRUD, search, calendar and
// quote endpoints.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		// Public endpoints: search, detail, resolved calendar, price quote.
		api.GET("", hb.Properties.Search)
		api.GET("/:id", hb.Properties.Get)
		api.GET("/:id/availability", hb.Availability.Get)
		api.GET("/:id/quote", hb.Bookings.Quote)

		// Endpoints that modify listing data require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.Properties.Create)
		protected.PATCH("/:id", hb.Properties.Update)
		protected.DELETE("/:id", hb.Properties.Delete)
		protected.PUT("/:id/availability", hb.Availability.Set)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("", hb.Bookings.Create)
		bookingGroup.GET("", hb.Bookings.List)
		bookingGroup.GET("/:id", hb.Bookings.Get)
		bookingGroup.POST("/:id/cancel", hb.Bookings.Cancel)
		bookingGroup.POST("/:id/confirm", hb.Bookings.Confirm)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm StayHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterPropertyRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
