package detail

import (
	"fmt"

	"portfoliohub/pkg/models"
)

// Defaults used when the list-card for an unknown id can't be found either.
const (
	fallbackTitle    = "Project Title"
	fallbackSubtitle = "Technology Stack"
)

const (
	fallbackDescription = "This project is currently being documented. More details will be available soon."
	fallbackBody        = "This project showcases innovative technical solutions and creative problem-solving. Full project details and documentation are being prepared for publication."
)

// fallback synthesizes a stand-in project for an id the catalog doesn't
// know, scraping title and subtitle from the list-card when possible. The
// detail view never shows a broken or empty state.
func (p *Presenter) fallback(projectID string) *models.Project {
	title, subtitle := fallbackTitle, fallbackSubtitle
	if p.Cards != nil {
		if t, s, ok := p.Cards.Card(projectID); ok {
			if t != "" {
				title = t
			}
			if s != "" {
				subtitle = s
			}
		}
	}

	return &models.Project{
		ID:                  projectID,
		Title:               title,
		Subtitle:            subtitle,
		Description:         fallbackDescription,
		ExtendedDescription: fallbackBody,
		Gallery:             []string{"", ""},
		Credits: fmt.Sprintf(
			"Project: %s<br>Development: Portfolio Studio<br>Status: Documentation in progress",
			title,
		),
	}
}
