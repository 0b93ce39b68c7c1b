package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-booking-backend/internal/mw"
)

// Token handles POST /token: the OAuth2 password flow, form-encoded.
func (h *Handler) Token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.svc.Authenticate(username, password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	token, err := h.authn.GenerateToken(user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// Me handles GET /users/me.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.svc.Me(mw.CallerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type hashRequest struct {
	Password string `json:"password" binding:"required"`
}

// Hash handles POST /hash, the bootstrap utility that hashes a password
// for seeding the first admin by hand.
func (h *Handler) Hash(c *gin.Context) {
	var req hashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	hashed, err := h.svc.HashPassword(req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hashed_password": hashed})
}
