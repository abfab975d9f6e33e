package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"portfoliohub/pkg/models"
)

// rawProject mirrors the authored catalog file, where heroImage may be a
// bare path string, a single {src, caption} object, or an ordered array.
// The three shapes are resolved here, once, into a normalized slice so the
// rest of the system never shape-sniffs.
type rawProject struct {
	ID                  string           `json:"id"`
	Title               string           `json:"title"`
	Subtitle            string           `json:"subtitle"`
	Description         string           `json:"description"`
	HeroImage           json.RawMessage  `json:"heroImage"`
	Sections            []models.Section `json:"sections"`
	Credits             string           `json:"credits"`
	ExtendedDescription string           `json:"extendedDescription"`
	Gallery             []string         `json:"gallery"`
}

// rawHero accepts the object form; the authored "type" field is tolerated
// and dropped (hero entries are always plain images).
type rawHero struct {
	Src     string `json:"src"`
	Caption string `json:"caption"`
}

// Load reads the catalog file and builds the in-memory repository. Array
// order in the file is the catalog's insertion order.
func Load(path string) (*Repository, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var raws []rawProject
	if err := json.Unmarshal(b, &raws); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	projects := make([]models.Project, 0, len(raws))
	for _, raw := range raws {
		projects = append(projects, models.Project{
			ID:                  raw.ID,
			Title:               raw.Title,
			Subtitle:            raw.Subtitle,
			Description:         raw.Description,
			HeroImages:          normalizeHero(raw.HeroImage),
			Sections:            raw.Sections,
			Credits:             raw.Credits,
			ExtendedDescription: raw.ExtendedDescription,
			Gallery:             raw.Gallery,
		})
	}
	return NewRepository(projects), nil
}

func normalizeHero(raw json.RawMessage) []models.HeroImage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var path string
	if err := json.Unmarshal(raw, &path); err == nil {
		if path == "" {
			return nil
		}
		return []models.HeroImage{{Src: path}}
	}

	var single rawHero
	if err := json.Unmarshal(raw, &single); err == nil && single.Src != "" {
		return []models.HeroImage{{Src: single.Src, Caption: single.Caption}}
	}

	var many []rawHero
	if err := json.Unmarshal(raw, &many); err == nil {
		out := make([]models.HeroImage, 0, len(many))
		for _, h := range many {
			if h.Src == "" {
				continue
			}
			out = append(out, models.HeroImage{Src: h.Src, Caption: h.Caption})
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}

	// unrecognized shape degrades to "no hero" rather than failing the load
	return nil
}
