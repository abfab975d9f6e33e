package site

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfoliohub/internal/catalog"
	"portfoliohub/pkg/logger"
	"portfoliohub/pkg/models"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	repo := catalog.NewRepository([]models.Project{
		{
			ID:          "meta-dior",
			Title:       "Meta x Dior",
			Subtitle:    "Spark AR",
			Description: "<p>About.</p>",
			HeroImages:  []models.HeroImage{{Src: "hero.png", Caption: "Hero"}},
			Sections: []models.Section{
				{ID: "overview", Title: "Overview", Content: "intro", Media: []models.MediaItem{
					{Type: "mp4", Src: "act1.mp4"},
				}},
			},
			Credits: "Year: 2022",
		},
		{
			ID:       "bare",
			Title:    "Bare",
			Subtitle: "No media",
		},
	})

	h, err := NewHandler(repo, "", logger.Nop())
	require.NoError(t, err)
	return h
}

func TestRenderGrid(t *testing.T) {
	h := newTestHandler(t)

	var buf bytes.Buffer
	require.NoError(t, h.RenderGrid(&buf))
	got := buf.String()

	assert.Contains(t, got, `class="work-grid"`)
	assert.Contains(t, got, `data-project="meta-dior"`)
	assert.Contains(t, got, `href="/projects/meta-dior"`)
	assert.Contains(t, got, `<h3 class="project-title">Meta x Dior</h3>`)
	assert.Contains(t, got, `<p class="project-subtitle">Spark AR</p>`)
	assert.Contains(t, got, `src="hero.png"`)
	// no thumbnail renders the titled placeholder
	assert.Contains(t, got, `thumbnail-placeholder"><span>Bare</span>`)
}

func TestRenderDetail(t *testing.T) {
	h := newTestHandler(t)

	t.Run("known id renders the full detail page", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, h.RenderDetail(&buf, "meta-dior"))
		got := buf.String()

		assert.Contains(t, got, "<title>Meta x Dior</title>")
		assert.Contains(t, got, `data-project="meta-dior"`)
		assert.Contains(t, got, `data-section-id="overview"`)
		assert.Contains(t, got, `id="project-hero-img-0"`)
		assert.Contains(t, got, "Year: 2022")
	})

	t.Run("unknown id still renders, via the fallback", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, h.RenderDetail(&buf, "ghost"))
		got := buf.String()

		assert.Contains(t, got, "<title>Project Title</title>")
		assert.Contains(t, got, `data-project="ghost"`)
		assert.Contains(t, got, "Project Title")
		assert.Contains(t, got, "Technology Stack")
		assert.Contains(t, got, "Documentation in progress")
	})
}

func TestRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandler(t)

	r := gin.New()
	h.RegisterRoutes(r)

	t.Run("work grid at /", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), `class="work-grid"`)
	})

	t.Run("detail page at /projects/:id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects/meta-dior", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `data-project="meta-dior"`)
	})
}
