package models

// ValidationReport is the diagnostic result of catalog validation. It is
// informational only and never blocks rendering; incompletely authored
// projects still render with placeholders.
type ValidationReport struct {
	IsValid         bool     `json:"is_valid"`
	MissingFields   []string `json:"missing_fields"`
	HasHeroImage    bool     `json:"has_hero_image"`
	HasSections     bool     `json:"has_sections"`
	HasOldStructure bool     `json:"has_old_structure"`
	StructureValid  bool     `json:"structure_valid"`
	SectionCount    int      `json:"section_count"`
	TotalMediaItems int      `json:"total_media_items"`
}
