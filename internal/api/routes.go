package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every tool endpoint under /api.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/presets", h.presetsHandler)
		api.POST("/cover", h.coverHandler)
		api.GET("/qr", h.qrHandler)
		api.POST("/case", h.caseHandler)
		api.POST("/count", h.countHandler)
		api.POST("/format", h.formatHandler)
	}
}
