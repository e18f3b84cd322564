package router

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/edutrack/internal/api/handlers/dashboard"
	"github.com/aliskhannn/edutrack/internal/api/handlers/meeting"
	"github.com/aliskhannn/edutrack/internal/api/handlers/notification"
	"github.com/aliskhannn/edutrack/internal/api/respond"
	"github.com/aliskhannn/edutrack/internal/middlewares"
)

// New builds the dashboard API.
func New(
	notifHandler *notification.Handler,
	meetingHandler *meeting.Handler,
	dashHandler *dashboard.Handler,
	timeout time.Duration,
) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())
	e.Use(middlewares.Timeout(timeout))

	e.GET("/health", func(c *ginext.Context) {
		respond.OK(c.Writer, "ok")
	})

	api := e.Group("/api")

	notifications := api.Group("/notifications")
	notifications.POST("", notifHandler.Create)
	notifications.GET("", notifHandler.GetRecent)
	notifications.GET("/:id", notifHandler.Get)
	notifications.GET("/:id/status", notifHandler.GetStatus)
	notifications.GET("/:id/messages", notifHandler.GetMessages)

	meetings := api.Group("/meetings")
	meetings.POST("", meetingHandler.Create)
	meetings.GET("/upcoming", meetingHandler.GetUpcoming)
	meetings.GET("/:id", meetingHandler.Get)
	meetings.DELETE("/:id", meetingHandler.Delete)

	dash := api.Group("/dashboard")
	dash.GET("/rankings/:period", dashHandler.GetRankings)
	dash.GET("/notifications", dashHandler.GetNotifications)
	dash.GET("/stats", dashHandler.GetStats)

	e.NoRoute(func(c *ginext.Context) {
		respond.JSON(c.Writer, http.StatusNotFound, map[string]string{"error": "route not found"})
	})

	return e
}
