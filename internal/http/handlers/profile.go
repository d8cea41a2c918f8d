package handlers

import (
	"net/http"
	"strconv"

	"busline/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/profile/:id
func Profile(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || accountID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	profile, err := repositories.AccountRepository{}.GetProfile(accountID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// GET /api/profile/:id/tickets
func ProfileTickets(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || accountID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	tickets, err := repositories.TicketRepository{}.ListByAccount(accountID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tickets})
}
