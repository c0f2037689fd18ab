package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/geo3dhub/geo-hub-backend/internal/projects/domain"
	"github.com/geo3dhub/geo-hub-backend/internal/projects/repository"
	"github.com/geo3dhub/geo-hub-backend/internal/projects/service"
)

// Handler serves project CRUD plus the roadmap endpoints.
type Handler struct {
	projects *service.ProjectService
	roadmaps *service.RoadmapService
}

// NewHandler creates a new projects handler.
func NewHandler(projects *service.ProjectService, roadmaps *service.RoadmapService) *Handler {
	return &Handler{
		projects: projects,
		roadmaps: roadmaps,
	}
}

func (h *Handler) create(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p := &domain.Project{
		OwnerUID:       c.GetString("firebase_uid"),
		Name:           strings.TrimSpace(req.Name),
		ClientName:     strings.TrimSpace(req.ClientName),
		Description:    req.Description,
		Location:       req.Location,
		StartDate:      req.StartDate,
		Deadline:       req.Deadline,
		Budget:         req.Budget,
		Tags:           req.Tags,
		RequiredSkills: req.RequiredSkills,
	}
	if err := h.projects.Create(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.projects.List(c.Request.Context(), c.GetString("firebase_uid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	p, ok := h.ownedProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	p, ok := h.ownedProject(c)
	if !ok {
		return
	}

	var req updateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if req.Status != nil && !validProjectStatus(*req.Status) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "invalid project status"})
		return
	}

	updated, err := h.projects.Update(c.Request.Context(), p.ID, repository.UpdateProjectRequest{
		Name:           req.Name,
		ClientName:     req.ClientName,
		Description:    req.Description,
		Status:         req.Status,
		Progress:       req.Progress,
		Location:       req.Location,
		StartDate:      req.StartDate,
		Deadline:       req.Deadline,
		Budget:         req.Budget,
		Tags:           req.Tags,
		RequiredSkills: req.RequiredSkills,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": updated})
}

func (h *Handler) delete(c *gin.Context) {
	p, ok := h.ownedProject(c)
	if !ok {
		return
	}

	deleted, err := h.projects.Delete(c.Request.Context(), p.OwnerUID, p.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ownedProject loads the project and enforces ownership. Projects the
// caller doesn't own look exactly like missing ones.
func (h *Handler) ownedProject(c *gin.Context) (*domain.Project, bool) {
	p, err := h.projects.Get(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		h.writeError(c, err)
		return nil, false
	}
	if p.OwnerUID != c.GetString("firebase_uid") {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return nil, false
	}
	return p, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrPhaseNotFound),
		errors.Is(err, domain.ErrMilestoneNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrInvalidFieldValue),
		errors.Is(err, domain.ErrInvalidGenerationResult):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}

func validProjectStatus(s string) bool {
	switch s {
	case domain.StatusPlanning, domain.StatusInProgress, domain.StatusCompleted, domain.StatusOnHold:
		return true
	}
	return false
}
