package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-booking-backend/internal/mw"
)

type universityRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateUniversity handles POST /universities/create.
func (h *Handler) CreateUniversity(c *gin.Context) {
	var req universityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	university, err := h.svc.CreateUniversity(mw.CallerID(c), req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, university)
}

// ListUniversities handles GET /universities/list.
func (h *Handler) ListUniversities(c *gin.Context) {
	universities, err := h.svc.ListUniversities(mw.CallerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, universities)
}

type updateUniversityRequest struct {
	ID   string            `json:"id" binding:"required"`
	Data universityRequest `json:"data" binding:"required"`
}

// UpdateUniversity handles POST /universities/update.
func (h *Handler) UpdateUniversity(c *gin.Context) {
	var req updateUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	university, err := h.svc.UpdateUniversity(mw.CallerID(c), req.ID, req.Data.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, university)
}

// DeleteUniversity handles POST /universities/delete. Deleting a
// university also removes its rooms, their reservations, and its users.
func (h *Handler) DeleteUniversity(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.svc.DeleteUniversity(mw.CallerID(c), req.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
