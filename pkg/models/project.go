package models

// Media type values recognized by the renderer. Anything else falls back
// to a placeholder element rather than an error.
const (
	MediaImage = "image"
	MediaGif   = "gif"
	MediaVideo = "video"
	MediaMP4   = "mp4"
)

// Project is one portfolio case study. Projects are authored, not computed:
// after the catalog is loaded they are read-only except for AppendMedia.
//
// Description, section content and credits are trusted rich text: they may
// contain inline HTML and are rendered verbatim (author-controlled content).
type Project struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	Description string      `json:"description"`
	HeroImages  []HeroImage `json:"hero_images,omitempty"`
	Sections    []Section   `json:"sections,omitempty"`
	Credits     string      `json:"credits"`

	// Legacy fields for projects authored before the section model.
	ExtendedDescription string   `json:"extended_description,omitempty"`
	Gallery             []string `json:"gallery,omitempty"`
}

// HeroImage is one entry of a project's hero strip. Authored catalogs may
// give the hero as a bare path, a single {src, caption} object, or an
// ordered list; the loader normalizes all three shapes into []HeroImage.
type HeroImage struct {
	Src     string `json:"src"`
	Caption string `json:"caption,omitempty"`
}

// Section is a named sub-block of a project's detail view. ID doubles as a
// stable DOM anchor and a lookup key; it must be unique within the project
// (on collision, lookups return the first match).
type Section struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Media     []MediaItem `json:"media"`
	Slideshow bool        `json:"slideshow,omitempty"`
}

// MediaItem is one displayable asset. Type selects the rendering strategy;
// order within a section is display order and, for slideshows, slide index.
type MediaItem struct {
	Type    string `json:"type"`
	Src     string `json:"src"`
	Caption string `json:"caption"`
}

// TaggedMedia is a MediaItem annotated with its originating section, as
// returned by the flattened AllMedia view.
type TaggedMedia struct {
	MediaItem
	SectionID    string `json:"section_id"`
	SectionTitle string `json:"section_title"`
}

// IsVideoFamily reports whether the item renders as a video element
// (user-controlled video or autoplaying mp4 loop).
func (m MediaItem) IsVideoFamily() bool {
	return m.Type == MediaVideo || m.Type == MediaMP4
}
