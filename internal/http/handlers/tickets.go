package handlers

import (
	"net/http"
	"strconv"

	"busline/internal/http/middleware"
	"busline/internal/repositories"
	"busline/internal/services"

	"github.com/gin-gonic/gin"
)

type ticketLookupRequest struct {
	SerialNumber string `json:"serial_number"`
	Phone        string `json:"phone"`
}

// POST /api/tickets/lookup
func TicketLookup(c *gin.Context) {
	var req ticketLookupRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.TicketService{RequestID: middleware.GetRequestID(c)}
	ticket, err := svc.Lookup(req.SerialNumber, req.Phone)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ticket})
}

// GET /api/tickets/:id/e-ticket
func TicketETicket(c *gin.Context) {
	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || ticketID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket id"})
		return
	}

	svc := services.TicketService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateETicket(ticketID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/bookings/:id
func BookingDetail(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, tickets, err := repositories.BookingRepository{}.GetByID(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"booking": booking,
			"tickets": tickets,
		},
	})
}
