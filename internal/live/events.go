package live

import "time"

// Event types broadcast on the live feed.
const (
	EventMediaAppend = "media.append"
)

// CatalogEvent tells preview clients that the catalog changed and which
// part of which project detail view to refresh.
type CatalogEvent struct {
	Type      string    `json:"type"`
	ProjectID string    `json:"project_id"`
	SectionID string    `json:"section_id,omitempty"`
	MediaType string    `json:"media_type,omitempty"`
	At        time.Time `json:"at"`
}
