package models

// ProjectSummary is the lightweight listing shape used by the work grid
// and the list API; it is also what the detail presenter scrapes when it
// has to synthesize a fallback project for an unknown id.
type ProjectSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Thumbnail  string `json:"thumbnail,omitempty"`
	MediaCount int    `json:"media_count"`
}
