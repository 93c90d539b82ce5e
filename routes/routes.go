package routes

import (
	"net/http"
	"time"

	"serenia/handlers"
	"serenia/middleware"
	"serenia/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAssociateRoutes registers the associate directory endpoints.
func RegisterAssociateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/associates")
	{
		// Public directory reads.
		api.GET("", hb.ListAssociatesHandler)
		api.GET("/:associateID", hb.GetAssociateHandler)

		// Directory management requires an admin token.
		protected := api.Group("")
		protected.Use(middleware.PrincipalAuthMiddleware(), middleware.RequireAdmin())
		protected.POST("", hb.CreateAssociateHandler)
		protected.DELETE("/:associateID", hb.DeleteAssociateHandler)
	}
}

// RegisterAvailabilityRoutes registers calendar reads and mutations.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/associates/:associateID/availability")
	{
		// Public calendar reads.
		api.GET("/day/:date", hb.GetDayAvailabilityHandler)
		api.GET("/calendar", hb.GetCalendarHandler)
		api.GET("/next", hb.NextAvailableSlotHandler)

		// Calendar mutations require the owning doctor or an admin.
		protected := api.Group("")
		protected.Use(middleware.PrincipalAuthMiddleware(), middleware.RequireCalendarAccess())
		protected.PUT("/day", hb.SetAvailabilityHandler)
		protected.POST("/pattern", hb.ApplyPatternHandler)
		protected.POST("/clear", hb.ClearAvailabilityHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.PrincipalAuthMiddleware())
		bookingGroup.POST("/associates/:associateID", hb.BookSlotHandler)
		bookingGroup.GET("/:bookingID", hb.GetBookingHandler)
		bookingGroup.DELETE("/:bookingID", hb.CancelBookingHandler)
		bookingGroup.GET("/subjects/:subjectID", hb.ListSubjectBookingsHandler)
		bookingGroup.GET("/associates/:associateID", hb.ListAssociateBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Serenia",
			"deps":    utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAssociateRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
