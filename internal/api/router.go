package api

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"campus-booking-backend/config"
	"campus-booking-backend/internal/auth"
	"campus-booking-backend/internal/booking"
	"campus-booking-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(svc *booking.Service, authn *auth.Authenticator, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(svc, authn)

	r.Use(mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst))

	// Only token issuance and the bootstrap hash helper are reachable
	// without a credential.
	r.POST("/token", handler.Token)
	r.POST("/hash", handler.Hash)

	authed := r.Group("/", mw.Auth(authn))
	{
		authed.GET("/users/me", handler.Me)

		authed.POST("/users/create", handler.CreateUser)
		authed.GET("/users/list", handler.ListUsers)
		authed.POST("/users/update", handler.UpdateUser)
		authed.POST("/users/delete", handler.DeleteUser)

		authed.POST("/universities/create", handler.CreateUniversity)
		authed.GET("/universities/list", handler.ListUniversities)
		authed.POST("/universities/update", handler.UpdateUniversity)
		authed.POST("/universities/delete", handler.DeleteUniversity)

		authed.POST("/rooms/create", handler.CreateRoom)
		authed.GET("/rooms/list", handler.ListRooms)
		authed.POST("/rooms/update", handler.UpdateRoom)
		authed.POST("/rooms/delete", handler.DeleteRoom)

		authed.POST("/times/create", handler.CreateTime)
		authed.GET("/times/list", handler.ListTimes)
		authed.POST("/times/update", handler.UpdateTime)
		authed.POST("/times/delete", handler.DeleteTime)
	}

	return r
}
