package api

import (
	"log"
	stdhttp "net/http"

	intconfig "busline/internal/config"
	h "busline/internal/http/handlers"
	"busline/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())
	r.Use(middleware.BearerAuth([]byte(env.JWTSecret)))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Schedule: stations, trip search, trip detail, booking submit
		schedule := api.Group("/schedule")
		schedule.GET("/stations", h.Stations)
		schedule.GET("/trips", h.SearchTrips)
		schedule.GET("/trips/:id", h.TripDetail)
		schedule.POST("/bookings", h.CreateBooking)

		// Per-trip seat state
		trips := api.Group("/trips")
		trips.GET("/:id/booked-seats", h.BookedSeats)
		trips.GET("/:id/seat-summary", h.SeatSummary)

		// Tickets
		tickets := api.Group("/tickets")
		tickets.POST("/lookup", h.TicketLookup)
		tickets.GET("/:id/e-ticket", h.TicketETicket)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.GET("/:id", middleware.RequireAuth(), h.BookingDetail)

		// Profile
		profile := api.Group("/profile")
		profile.Use(middleware.RequireAuth())
		profile.GET("/:id", h.Profile)
		profile.GET("/:id/tickets", h.ProfileTickets)
	}

	return r
}
