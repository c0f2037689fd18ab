package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geo3dhub/geo-hub-backend/internal/contractors/domain"
	"github.com/geo3dhub/geo-hub-backend/internal/contractors/repository"
)

// Handler serves the contractor directory.
type Handler struct {
	repo *repository.ContractorRepository
}

func NewHandler(repo *repository.ContractorRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "contractors": items})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.repo.GetByID(c.Request.Context(), c.Param("contractor_id"))
	if err != nil {
		if errors.Is(err, domain.ErrContractorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "contractor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "contractor": p})
}

// Register attaches contractor routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:contractor_id", h.get)
}
