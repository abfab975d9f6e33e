package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfoliohub/pkg/models"
)

func TestHero(t *testing.T) {
	t.Run("one img per hero entry with indexed ids", func(t *testing.T) {
		p := &models.Project{
			Title: "Demo",
			HeroImages: []models.HeroImage{
				{Src: "a.png", Caption: "First"},
				{Src: "b.png"},
			},
		}
		got := Hero(p).HTML()

		assert.Contains(t, got, `id="project-hero-img-0"`)
		assert.Contains(t, got, `id="project-hero-img-1"`)
		assert.Contains(t, got, `alt="First"`)
		// caption falls back to the project title
		assert.Contains(t, got, `alt="Demo"`)
	})

	t.Run("no hero renders a titled placeholder", func(t *testing.T) {
		p := &models.Project{Title: "Demo"}
		got := Hero(p).HTML()

		assert.Contains(t, got, `class="hero-placeholder"`)
		assert.Contains(t, got, "<span>Demo</span>")
		assert.Contains(t, got, "<p>Visual Content</p>")
		assert.NotContains(t, got, "<img")
	})
}
