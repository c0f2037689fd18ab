package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authmw "github.com/geo3dhub/geo-hub-backend/internal/auth/middleware"
	"github.com/geo3dhub/geo-hub-backend/internal/projects/domain"
)

// generateRoadmap asks the planner for a fresh roadmap. The result is
// returned to the client but not persisted; saving is an explicit separate
// step, so a rejected or abandoned generation never clobbers stored state.
func (h *Handler) generateRoadmap(c *gin.Context) {
	p, ok := h.ownedProject(c)
	if !ok {
		return
	}

	phases, err := h.roadmaps.GenerateRoadmap(c.Request.Context(), p.ID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidGenerationResult) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": err.Error()})
			return
		}
		// Planner transport failure. No retry here; the user retries manually.
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "roadmap generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "roadmap": phases})
}

// saveRoadmap replaces the stored roadmap wholesale and appends one edit
// history entry. Used after generation and for full client-side saves.
func (h *Handler) saveRoadmap(c *gin.Context) {
	p, ok := h.ownedProject(c)
	if !ok {
		return
	}

	var req saveRoadmapReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	updated, err := h.roadmaps.ReplaceRoadmap(c.Request.Context(), p.ID, req.Roadmap, authmw.EditorName(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": updated})
}

// editRoadmap applies a batch of targeted milestone edits as one atomic save.
func (h *Handler) editRoadmap(c *gin.Context) {
	p, ok := h.ownedProject(c)
	if !ok {
		return
	}

	var req editRoadmapReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Edits) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	updated, err := h.roadmaps.EditRoadmap(c.Request.Context(), p.ID, req.Edits, authmw.EditorName(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": updated})
}

func (h *Handler) roadmapHistory(c *gin.Context) {
	p, ok := h.ownedProject(c)
	if !ok {
		return
	}

	history, err := h.roadmaps.History(c.Request.Context(), p.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "history": history})
}
