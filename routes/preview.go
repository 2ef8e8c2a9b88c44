package routes

import (
	"lp-maker/lpmaker/middleware"
	"lp-maker/lpmaker/services"

	"github.com/gin-gonic/gin"
)

// RegisterPreviewRoutes exposes the editor's websocket channel. Clients
// authenticate with ?token= (the upgrade request cannot carry a Bearer
// header) and subscribe with ?slug=; they receive re-rendered page
// fragments and telemetry ticks.
func RegisterPreviewRoutes(router *gin.Engine, previewService services.PreviewServiceInterface, authService services.AuthServiceInterface) {
	ws := router.Group("/ws")
	ws.Use(middleware.AuthMiddleware(authService))
	ws.GET("/preview", previewService.HandleConnection)
}
