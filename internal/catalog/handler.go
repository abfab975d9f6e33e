package catalog

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfoliohub/internal/live"
	"portfoliohub/pkg/models"
)

// Handler exposes the catalog over HTTP: public read access plus the one
// maintenance mutation. Journal and Hub are optional collaborators.
type Handler struct {
	Repo    *Repository
	Journal *Journal
	Hub     *live.Hub
	Log     *zap.SugaredLogger
}

func NewHandler(repo *Repository, journal *Journal, hub *live.Hub, log *zap.SugaredLogger) *Handler {
	return &Handler{Repo: repo, Journal: journal, Hub: hub, Log: log}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/missing-media", h.missingMedia)
	rg.GET("/:id", h.getByID)
	rg.GET("/:id/media", h.listMedia)
	rg.GET("/:id/validate", h.validate)
	rg.GET("/:id/sections/:section_id", h.getSection)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/:id/sections/:section_id/media", h.appendMedia)
}

func (h *Handler) list(c *gin.Context) {
	items := h.Repo.List()
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) getByID(c *gin.Context) {
	p := h.Repo.Get(c.Param("id"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) listMedia(c *gin.Context) {
	p := h.Repo.Get(c.Param("id"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var items []models.TaggedMedia
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		items = MediaByType(p, t)
	} else {
		items = AllMedia(p)
	}
	if items == nil {
		items = []models.TaggedMedia{}
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) validate(c *gin.Context) {
	p := h.Repo.Get(c.Param("id"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, Validate(p))
}

func (h *Handler) getSection(c *gin.Context) {
	p := h.Repo.Get(c.Param("id"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	s := FindSection(p, c.Param("section_id"))
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "section not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) missingMedia(c *gin.Context) {
	ids := h.Repo.ProjectsMissingMedia()
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"project_ids": ids})
}

type appendMediaReq struct {
	Type    string `json:"type"`
	Src     string `json:"src"`
	Caption string `json:"caption"`
}

func (h *Handler) appendMedia(c *gin.Context) {
	projectID := c.Param("id")
	sectionID := c.Param("section_id")

	var req appendMediaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Src) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "src required"})
		return
	}

	item := models.MediaItem{
		Type:    strings.TrimSpace(req.Type),
		Src:     strings.TrimSpace(req.Src),
		Caption: req.Caption,
	}

	if !h.Repo.AppendMedia(projectID, sectionID, item) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project or section not found"})
		return
	}

	if h.Journal != nil {
		if err := h.Journal.Record(c.Request.Context(), projectID, sectionID, item); err != nil {
			// the edit is live in memory; losing it at restart is the
			// worst case, so report the append as created anyway
			h.Log.Warnw("journal write failed", "project", projectID, "section", sectionID, "err", err)
		}
	}

	if h.Hub != nil {
		h.Hub.BroadcastJSON(live.CatalogEvent{
			Type:      live.EventMediaAppend,
			ProjectID: projectID,
			SectionID: sectionID,
			MediaType: item.Type,
			At:        time.Now().UTC(),
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"project_id": projectID,
		"section_id": sectionID,
		"item":       item,
	})
}
