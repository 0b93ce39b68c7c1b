package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campus-booking-backend/internal/auth"
)

// callerKey is the gin context key under which Auth stores the verified
// token subject.
const callerKey = "callerID"

// Auth extracts and verifies the bearer token, then records its subject in
// the request context. The subject is only a user id; handlers resolve it
// to a live user record per request, so deleting a user invalidates their
// outstanding tokens immediately.
func Auth(authn *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid authentication credentials"})
			return
		}

		subject, err := authn.Subject(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid authentication credentials"})
			return
		}

		c.Set(callerKey, subject)
		c.Next()
	}
}

// CallerID returns the verified token subject recorded by Auth.
func CallerID(c *gin.Context) string {
	return c.GetString(callerKey)
}
