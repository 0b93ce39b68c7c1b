package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-booking-backend/internal/booking"
	"campus-booking-backend/internal/model"
	"campus-booking-backend/internal/mw"
)

type newUserRequest struct {
	Username             string  `json:"username" binding:"required"`
	Group                string  `json:"group" binding:"required"`
	University           *string `json:"university"`
	Password             string  `json:"password" binding:"required"`
	PasswordConfirmation string  `json:"password_confirmation" binding:"required"`
}

func (r newUserRequest) params() booking.NewUser {
	return booking.NewUser{
		Username:             r.Username,
		Group:                model.Group(r.Group),
		University:           r.University,
		Password:             r.Password,
		PasswordConfirmation: r.PasswordConfirmation,
	}
}

// CreateUser handles POST /users/create.
func (h *Handler) CreateUser(c *gin.Context) {
	var req newUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.svc.CreateUser(mw.CallerID(c), req.params())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /users/list.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(mw.CallerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type updateUserRequest struct {
	ID   string         `json:"id" binding:"required"`
	Data newUserRequest `json:"data" binding:"required"`
}

// UpdateUser handles POST /users/update.
func (h *Handler) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.svc.UpdateUser(mw.CallerID(c), req.ID, req.Data.params())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type deleteRequest struct {
	ID string `json:"id" binding:"required"`
}

// DeleteUser handles POST /users/delete.
func (h *Handler) DeleteUser(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.svc.DeleteUser(mw.CallerID(c), req.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
