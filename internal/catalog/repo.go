package catalog

import (
	"sync"

	"portfoliohub/pkg/models"
)

// Repository holds the authored project catalog in memory. It is read-only
// after load except for AppendMedia, the single maintenance mutation. The
// original display order of the catalog file is preserved for listings.
type Repository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*models.Project
}

func NewRepository(projects []models.Project) *Repository {
	r := &Repository{byID: make(map[string]*models.Project, len(projects))}
	for i := range projects {
		p := projects[i]
		if p.ID == "" {
			continue
		}
		if _, dup := r.byID[p.ID]; dup {
			// first entry wins, same as section id collisions
			continue
		}
		r.byID[p.ID] = &p
		r.order = append(r.order, p.ID)
	}
	return r
}

// Get returns a deep copy of the project for an exact id, or nil. A missing
// project is not an error; callers decide the fallback (the presenter
// synthesizes one). Returning a copy keeps readers off the slices that
// AppendMedia mutates under the write lock.
func (r *Repository) Get(id string) *models.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p := r.byID[id]
	if p == nil {
		return nil
	}
	return snapshot(p)
}

func snapshot(p *models.Project) *models.Project {
	cp := *p
	if p.HeroImages != nil {
		cp.HeroImages = append([]models.HeroImage(nil), p.HeroImages...)
	}
	if p.Sections != nil {
		cp.Sections = make([]models.Section, len(p.Sections))
		for i, s := range p.Sections {
			cp.Sections[i] = s
			if s.Media != nil {
				cp.Sections[i].Media = append([]models.MediaItem(nil), s.Media...)
			}
		}
	}
	if p.Gallery != nil {
		cp.Gallery = append([]string(nil), p.Gallery...)
	}
	return &cp
}

// ListIDs returns every project id in catalog order.
func (r *Repository) ListIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// List returns grid-ready summaries in catalog order.
func (r *Repository) List() []models.ProjectSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ProjectSummary, 0, len(r.order))
	for _, id := range r.order {
		p := r.byID[id]
		s := models.ProjectSummary{
			ID:         p.ID,
			Title:      p.Title,
			Subtitle:   p.Subtitle,
			MediaCount: TotalMediaCount(p),
		}
		if len(p.HeroImages) > 0 {
			s.Thumbnail = p.HeroImages[0].Src
		}
		out = append(out, s)
	}
	return out
}

// AppendMedia pushes item onto the named section's media sequence. It
// returns false (a no-op) when the project is unknown, has no sections,
// or the section id does not match.
func (r *Repository) AppendMedia(projectID, sectionID string, item models.MediaItem) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.byID[projectID]
	if p == nil || len(p.Sections) == 0 {
		return false
	}
	for i := range p.Sections {
		if p.Sections[i].ID == sectionID {
			p.Sections[i].Media = append(p.Sections[i].Media, item)
			return true
		}
	}
	return false
}

// ProjectsMissingMedia returns ids of projects that lack a hero image or
// have no section media at all. Maintenance diagnostic.
func (r *Repository) ProjectsMissingMedia() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for _, id := range r.order {
		p := r.byID[id]
		hasSectionMedia := false
		for _, s := range p.Sections {
			if len(s.Media) > 0 {
				hasSectionMedia = true
				break
			}
		}
		if len(p.HeroImages) == 0 || !hasSectionMedia {
			out = append(out, id)
		}
	}
	return out
}

func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
