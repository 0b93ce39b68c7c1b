package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-booking-backend/internal/booking"
	"campus-booking-backend/internal/model"
	"campus-booking-backend/internal/mw"
)

type roomRequest struct {
	University *string `json:"university"`
	Name       string  `json:"name" binding:"required"`
}

func (r roomRequest) params() booking.RoomParams {
	return booking.RoomParams{University: r.University, Name: r.Name}
}

// roomResponse returns either the full room or its redacted projection,
// depending on what the service decided for this caller.
func roomResponse(c *gin.Context, room model.Room, redact bool) {
	if redact {
		c.JSON(http.StatusOK, room.View())
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom handles POST /rooms/create.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	room, redact, err := h.svc.CreateRoom(mw.CallerID(c), req.params())
	if err != nil {
		abortWithError(c, err)
		return
	}
	roomResponse(c, room, redact)
}

// ListRooms handles GET /rooms/list.
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, redact, err := h.svc.ListRooms(mw.CallerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !redact {
		c.JSON(http.StatusOK, rooms)
		return
	}
	views := make([]model.RoomView, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, room.View())
	}
	c.JSON(http.StatusOK, views)
}

type updateRoomRequest struct {
	ID   string      `json:"id" binding:"required"`
	Data roomRequest `json:"data" binding:"required"`
}

// UpdateRoom handles POST /rooms/update.
func (h *Handler) UpdateRoom(c *gin.Context) {
	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	room, redact, err := h.svc.UpdateRoom(mw.CallerID(c), req.ID, req.Data.params())
	if err != nil {
		abortWithError(c, err)
		return
	}
	roomResponse(c, room, redact)
}

// DeleteRoom handles POST /rooms/delete. Deleting a room also removes its
// reservations.
func (h *Handler) DeleteRoom(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.svc.DeleteRoom(mw.CallerID(c), req.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
