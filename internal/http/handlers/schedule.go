package handlers

import (
	"net/http"
	"strconv"

	"busline/internal/domain/models"
	"busline/internal/http/middleware"
	"busline/internal/repositories"
	"busline/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/schedule/stations
func Stations(c *gin.Context) {
	stations, err := repositories.StationRepository{}.ListActive()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stations})
}

// GET /api/schedule/trips?station_id=&date=&destination_id=
func SearchTrips(c *gin.Context) {
	stationID, err := strconv.ParseInt(c.Query("station_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "station_id must be numeric"})
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "station_id and date are required"})
		return
	}

	var destinationID int64
	if raw := c.Query("destination_id"); raw != "" {
		destinationID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "destination_id must be numeric"})
			return
		}
	}

	trips, err := repositories.TripRepository{}.ListTrips(stationID, date, destinationID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trips})
}

// GET /api/schedule/trips/:id
func TripDetail(c *gin.Context) {
	tripID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || tripID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip id"})
		return
	}

	trip, err := repositories.TripRepository{}.GetTripDetail(tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trip})
}

// POST /api/schedule/bookings
func CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{
		SeatCache: getSeatCache(),
		RequestID: middleware.GetRequestID(c),
	}
	result, err := svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
