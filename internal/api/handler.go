package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-booking-backend/internal/auth"
	"campus-booking-backend/internal/booking"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	svc   *booking.Service
	authn *auth.Authenticator
}

// NewHandler creates a new API handler.
func NewHandler(svc *booking.Service, authn *auth.Authenticator) *Handler {
	return &Handler{svc: svc, authn: authn}
}

// abortWithError maps domain errors onto the wire contract: role failures
// are 401, everything else the caller caused is 400 with a detail message.
func abortWithError(c *gin.Context, err error) {
	var validationErr *booking.ValidationError
	var notFoundErr *booking.NotFoundError

	switch {
	case errors.Is(err, booking.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid authentication credentials"})
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": validationErr.Detail})
	case errors.As(err, &notFoundErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": notFoundErr.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}
