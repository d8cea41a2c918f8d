package handlers

import (
	"net/http"
	"strconv"

	"busline/internal/http/middleware"
	"busline/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/trips/:id/booked-seats
func BookedSeats(c *gin.Context) {
	tripID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || tripID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip id"})
		return
	}

	svc := services.AvailabilityService{
		SeatCache: getSeatCache(),
		RequestID: middleware.GetRequestID(c),
	}
	seats, err := svc.BookedSeats(c.Request.Context(), tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"trip_id":      tripID,
		"booked_seats": seats,
	})
}

// GET /api/trips/:id/seat-summary
func SeatSummary(c *gin.Context) {
	tripID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || tripID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip id"})
		return
	}

	svc := services.AvailabilityService{
		SeatCache: getSeatCache(),
		RequestID: middleware.GetRequestID(c),
	}
	summary, err := svc.SeatSummary(c.Request.Context(), tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
