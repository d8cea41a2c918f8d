package handlers

import (
	"net/http"
	"sync"

	"busline/internal/cache"
	intconfig "busline/internal/config"
	"busline/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var (
	depsMu    sync.RWMutex
	seatCache cache.SeatCache
	jwtSecret = []byte(intconfig.DefaultJWTSecret)
)

// SetSeatCache wires the optional booked-seats cache into the handlers.
func SetSeatCache(c cache.SeatCache) {
	depsMu.Lock()
	defer depsMu.Unlock()
	seatCache = c
}

func getSeatCache() cache.SeatCache {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return seatCache
}

// SetJWTSecret overrides the signing key (from JWT_SECRET at startup).
func SetJWTSecret(secret string) {
	depsMu.Lock()
	defer depsMu.Unlock()
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

func getJWTSecret() []byte {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return jwtSecret
}

// RespondError sends standard error payload with request_id included.
// Keeps compatibility with the front end by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	} else {
		payload["error"] = message
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
