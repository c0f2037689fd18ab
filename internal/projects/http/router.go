package http

import "github.com/gin-gonic/gin"

// Register attaches project and roadmap routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:project_id", h.get)
	rg.PATCH("/:project_id", h.update)
	rg.DELETE("/:project_id", h.delete)

	rg.POST("/:project_id/roadmap/generate", h.generateRoadmap)
	rg.PUT("/:project_id/roadmap", h.saveRoadmap)
	rg.PATCH("/:project_id/roadmap", h.editRoadmap)
	rg.GET("/:project_id/roadmap/history", h.roadmapHistory)
}
