package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geo3dhub/geo-hub-backend/internal/matching"
	"github.com/geo3dhub/geo-hub-backend/internal/matching/service"
)

// Handler serves contractor matching requests.
type Handler struct {
	svc *service.MatchingService
}

func NewHandler(svc *service.MatchingService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) match(c *gin.Context) {
	var req matching.Requirement
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	results, err := h.svc.Match(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "contractors": results})
}

// Register attaches matching routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.match)
}
