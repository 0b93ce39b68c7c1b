package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campus-booking-backend/internal/booking"
	"campus-booking-backend/internal/model"
	"campus-booking-backend/internal/mw"
)

type timeRequest struct {
	Room       string    `json:"room" binding:"required"`
	Registrant *string   `json:"registrant"`
	Start      time.Time `json:"start" binding:"required"`
	End        time.Time `json:"end" binding:"required"`
}

func (r timeRequest) params() booking.TimeParams {
	return booking.TimeParams{Room: r.Room, Registrant: r.Registrant, Start: r.Start, End: r.End}
}

// CreateTime handles POST /times/create.
func (h *Handler) CreateTime(c *gin.Context) {
	var req timeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	t, err := h.svc.CreateTime(mw.CallerID(c), req.params())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// ListTimes handles GET /times/list?room_id=. Entries omit the room id
// since the listing is already scoped to one room.
func (h *Handler) ListTimes(c *gin.Context) {
	roomID := c.Query("room_id")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "room_id is required"})
		return
	}

	times, err := h.svc.ListTimes(mw.CallerID(c), roomID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	views := make([]model.TimeView, 0, len(times))
	for _, t := range times {
		views = append(views, t.View())
	}
	c.JSON(http.StatusOK, views)
}

type updateTimeRequest struct {
	ID   string      `json:"id" binding:"required"`
	Data timeRequest `json:"data" binding:"required"`
}

// UpdateTime handles POST /times/update.
func (h *Handler) UpdateTime(c *gin.Context) {
	var req updateTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	t, err := h.svc.UpdateTime(mw.CallerID(c), req.ID, req.Data.params())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTime handles POST /times/delete.
func (h *Handler) DeleteTime(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.svc.DeleteTime(mw.CallerID(c), req.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
