package render

import (
	"strconv"

	"portfoliohub/pkg/models"
)

// Hero renders a project's hero strip: one image per normalized hero
// entry, or a titled placeholder when the project has none.
func Hero(p *models.Project) *Element {
	if len(p.HeroImages) == 0 {
		return heroPlaceholder(p.Title)
	}

	strip := Fragment()
	for i, h := range p.HeroImages {
		alt := h.Caption
		if alt == "" {
			alt = p.Title
		}
		strip.Append(NewElement("img", "hero-image").
			SetAttr("id", "project-hero-img-"+strconv.Itoa(i)).
			SetAttr("src", h.Src).
			SetAttr("alt", alt))
	}
	return strip
}

func heroPlaceholder(title string) *Element {
	return NewElement("div", "hero-placeholder").Append(
		NewElement("span").SetText(title),
		NewElement("p").SetText("Visual Content"),
	)
}
