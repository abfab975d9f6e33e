// Package detail renders the project detail view: hero strip, description,
// sections (or the legacy single-blob body), and credits.
package detail

import (
	"strconv"

	"portfoliohub/internal/catalog"
	"portfoliohub/internal/render"
	"portfoliohub/pkg/models"
)

// Slot is a writable region of the hosting view.
type Slot interface {
	SetHTML(markup string)
}

// Host is the document the presenter renders into. Either slot may be nil;
// the presenter treats a missing slot as a silent no-op so a partial host
// never breaks a render.
type Host interface {
	DetailSlot() Slot
	HeroSlot() Slot
}

// CardLookup resolves the title and subtitle shown on a project's
// list-card. The presenter uses it to synthesize a fallback project for
// ids missing from the catalog; it is pluggable so tests can substitute it.
type CardLookup interface {
	Card(id string) (title, subtitle string, ok bool)
}

// CardLookupFunc adapts a function to the CardLookup interface.
type CardLookupFunc func(id string) (string, string, bool)

func (f CardLookupFunc) Card(id string) (string, string, bool) { return f(id) }

// Presenter orchestrates the detail render for one hosting view.
type Presenter struct {
	Repo  *catalog.Repository
	Cards CardLookup
	Host  Host
}

func NewPresenter(repo *catalog.Repository, cards CardLookup, host Host) *Presenter {
	return &Presenter{Repo: repo, Cards: cards, Host: host}
}

// Show renders the project with the given id into the host, fully
// replacing whatever a previous call rendered. Unknown ids never produce
// a broken view: a fallback project is synthesized instead.
func (p *Presenter) Show(projectID string) {
	project := p.Repo.Get(projectID)
	if project == nil {
		project = p.fallback(projectID)
	}

	if p.Host == nil {
		return
	}
	if hero := p.Host.HeroSlot(); hero != nil {
		hero.SetHTML(render.Hero(project).HTML())
	}
	if slot := p.Host.DetailSlot(); slot != nil {
		slot.SetHTML(p.buildDetail(projectID, project).HTML())
	}
}

// buildDetail assembles the full detail fragment. The root carries the id
// the caller asked for; deriving it back from the title proved unreliable
// in the past (see DESIGN.md).
func (p *Presenter) buildDetail(projectID string, project *models.Project) *render.Element {
	root := render.NewElement("div", "project-detail-container").
		SetAttr("data-project", projectID)

	root.Append(
		render.NewElement("h1", "project-detail-title").SetText(project.Title),
		render.NewElement("p", "project-detail-subtitle").SetText(project.Subtitle),
		render.NewElement("div", "project-description").
			SetRawHTML(render.FormatRichText(project.Description)),
	)

	body := render.NewElement("div", "project-extended-description")
	if len(project.Sections) > 0 {
		for i, s := range project.Sections {
			body.Append(render.Section(s, i))
		}
	} else if project.ExtendedDescription != "" {
		// projects authored before the section model
		body.SetRawHTML(render.FormatRichText(project.ExtendedDescription))
	}
	root.Append(body)

	if len(project.Gallery) >= 2 {
		root.Append(legacyGallery(project))
	}

	root.Append(render.NewElement("div", "project-credits-content").
		SetRawHTML(project.Credits))

	return root
}

// legacyGallery renders the fixed two-image gallery older projects carry.
// Empty entries show placeholders rather than broken images.
func legacyGallery(project *models.Project) *render.Element {
	gallery := render.NewElement("div", "project-gallery")
	for i := 0; i < 2; i++ {
		cell := render.NewElement("div", "gallery-image")
		if src := project.Gallery[i]; src != "" {
			cell.Append(render.NewElement("img", "gallery-image-item").
				SetAttr("src", src).
				SetAttr("alt", project.Title+" - Image "+strconv.Itoa(i+1)))
		} else {
			cell.Append(render.NewElement("div", "gallery-placeholder").Append(
				render.NewElement("span").SetText("Gallery Image " + strconv.Itoa(i+1)),
			))
		}
		gallery.Append(cell)
	}
	return gallery
}
