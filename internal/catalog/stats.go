package catalog

import "portfoliohub/pkg/models"

// TotalMediaCount sums media sequence lengths across all sections.
func TotalMediaCount(p *models.Project) int {
	if p == nil {
		return 0
	}
	total := 0
	for _, s := range p.Sections {
		total += len(s.Media)
	}
	return total
}

// AllMedia flattens every section's media in section order, then item
// order, tagging each item with its originating section.
func AllMedia(p *models.Project) []models.TaggedMedia {
	if p == nil {
		return nil
	}
	var out []models.TaggedMedia
	for _, s := range p.Sections {
		for _, m := range s.Media {
			out = append(out, models.TaggedMedia{
				MediaItem:    m,
				SectionID:    s.ID,
				SectionTitle: s.Title,
			})
		}
	}
	return out
}

// MediaByType filters AllMedia by exact type, preserving relative order.
func MediaByType(p *models.Project, mediaType string) []models.TaggedMedia {
	var out []models.TaggedMedia
	for _, m := range AllMedia(p) {
		if m.Type == mediaType {
			out = append(out, m)
		}
	}
	return out
}

// FindSection returns the first section with the given id, or nil.
func FindSection(p *models.Project, sectionID string) *models.Section {
	if p == nil {
		return nil
	}
	for i := range p.Sections {
		if p.Sections[i].ID == sectionID {
			return &p.Sections[i]
		}
	}
	return nil
}

// SectionIDs lists section ids in display order.
func SectionIDs(p *models.Project) []string {
	if p == nil {
		return nil
	}
	out := make([]string, 0, len(p.Sections))
	for _, s := range p.Sections {
		out = append(out, s.ID)
	}
	return out
}

// SectionsWithMedia returns the sections that carry at least one media item.
func SectionsWithMedia(p *models.Project) []models.Section {
	if p == nil {
		return nil
	}
	var out []models.Section
	for _, s := range p.Sections {
		if len(s.Media) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks required fields and structural validity. The report is
// diagnostic only: rendering never consults it and incomplete projects
// still render with placeholders.
func Validate(p *models.Project) models.ValidationReport {
	report := models.ValidationReport{MissingFields: []string{}}
	if p == nil {
		return report
	}

	required := []struct {
		name  string
		value string
	}{
		{"title", p.Title},
		{"subtitle", p.Subtitle},
		{"description", p.Description},
		{"credits", p.Credits},
	}
	for _, f := range required {
		if f.value == "" {
			report.MissingFields = append(report.MissingFields, f.name)
		}
	}

	report.HasHeroImage = len(p.HeroImages) > 0
	report.HasSections = p.Sections != nil
	report.HasOldStructure = p.ExtendedDescription != ""

	if report.HasSections {
		report.StructureValid = len(p.Sections) > 0
		report.SectionCount = len(p.Sections)
		report.TotalMediaItems = TotalMediaCount(p)
	} else if report.HasOldStructure {
		// legacy single-blob projects remain valid
		report.StructureValid = true
	}

	report.IsValid = len(report.MissingFields) == 0 && report.StructureValid
	return report
}
