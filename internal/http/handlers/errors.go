package handlers

import (
	"errors"
	"net/http"

	"busline/internal/domain"
	"busline/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. Conflict details
// (e.g. the taken seat list) ride along so the client can point at the
// exact seats that collided.
func RespondDomainError(c *gin.Context, err error) {
	reqID := middleware.GetRequestID(c)

	var conflict domain.ConflictError
	if errors.As(err, &conflict) {
		payload := gin.H{
			"error":      conflict.Msg,
			"request_id": reqID,
		}
		if payload["error"] == "" {
			payload["error"] = conflict.Error()
		}
		if conflict.Details != nil {
			payload["taken_seats"] = conflict.Details
		}
		c.JSON(http.StatusConflict, payload)
		return
	}

	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "request_id": reqID})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "request_id": reqID})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error", "request_id": reqID})
	}
}
