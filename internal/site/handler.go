// Package site serves the browsable pages: the work grid and the project
// detail view, assembled from the catalog through the detail presenter.
package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfoliohub/internal/catalog"
	"portfoliohub/internal/detail"
	"portfoliohub/pkg/models"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

type Handler struct {
	Repo      *catalog.Repository
	AssetsDir string
	Log       *zap.SugaredLogger

	tmpl *template.Template
}

func NewHandler(repo *catalog.Repository, assetsDir string, log *zap.SugaredLogger) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse site templates: %w", err)
	}
	return &Handler{Repo: repo, AssetsDir: assetsDir, Log: log, tmpl: tmpl}, nil
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.workGrid)
	r.GET("/projects/:id", h.projectDetail)
	if h.AssetsDir != "" {
		r.Static("/assets", h.AssetsDir)
	}
}

type gridPage struct {
	Projects []models.ProjectSummary
}

type detailPage struct {
	Title  string
	Hero   template.HTML
	Detail template.HTML
}

// RenderGrid writes the work grid page. The static exporter shares this
// path with the live server.
func (h *Handler) RenderGrid(w io.Writer) error {
	page := gridPage{Projects: h.Repo.List()}
	return h.tmpl.ExecuteTemplate(w, "grid.tmpl", page)
}

// RenderDetail writes the detail page for the given project id. Unknown ids
// still render, through the presenter's fallback content.
func (h *Handler) RenderDetail(w io.Writer, id string) error {
	host := &pageHost{}
	presenter := detail.NewPresenter(h.Repo, detail.CardLookupFunc(h.cardLookup), host)
	presenter.Show(id)

	page := detailPage{
		Title:  h.pageTitle(id),
		Hero:   template.HTML(host.hero.html),
		Detail: template.HTML(host.detail.html),
	}
	return h.tmpl.ExecuteTemplate(w, "detail.tmpl", page)
}

func (h *Handler) workGrid(c *gin.Context) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.RenderGrid(c.Writer); err != nil {
		h.Log.Errorw("render work grid", "err", err)
	}
}

func (h *Handler) projectDetail(c *gin.Context) {
	id := c.Param("id")
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.RenderDetail(c.Writer, id); err != nil {
		h.Log.Errorw("render project detail", "project", id, "err", err)
	}
}

func (h *Handler) pageTitle(id string) string {
	if p := h.Repo.Get(id); p != nil {
		return p.Title
	}
	return "Project Title"
}

// cardLookup exposes grid-card titles to the presenter's fallback path.
// Only projects that actually have a card in the grid resolve.
func (h *Handler) cardLookup(id string) (string, string, bool) {
	p := h.Repo.Get(id)
	if p == nil {
		return "", "", false
	}
	return p.Title, p.Subtitle, true
}

// pageHost buffers the presenter's writes for one request.
type pageHost struct {
	detail bufSlot
	hero   bufSlot
}

func (h *pageHost) DetailSlot() detail.Slot { return &h.detail }
func (h *pageHost) HeroSlot() detail.Slot   { return &h.hero }

type bufSlot struct {
	html string
}

func (s *bufSlot) SetHTML(markup string) { s.html = markup }
