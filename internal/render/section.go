package render

import (
	"strconv"

	"portfoliohub/pkg/models"
)

// Section converts one project section into its renderable block: heading,
// formatted content, then either nothing, a slideshow, or a classified
// media grid. The function is idempotent; rendering the same section twice
// yields structurally identical output.
func Section(section models.Section, index int) *Element {
	block := NewElement("div", "project-section").
		SetAttr("data-section-id", section.ID).
		SetAttr("data-section-index", strconv.Itoa(index))

	block.Append(NewElement("h2", "section-title").SetText(section.Title))
	block.Append(NewElement("div", "section-content").
		SetRawHTML(FormatRichText(section.Content)))

	if len(section.Media) == 0 {
		return block
	}

	if section.Slideshow {
		block.Append(Slideshow(section.Media))
		return block
	}

	block.Append(mediaGrid(section.Media))
	return block
}

// mediaGrid renders one element per item and annotates the container with
// layout-hinting classes describing what it holds. The hints are cosmetic
// classification only; mp4 counts toward the video family.
func mediaGrid(media []models.MediaItem) *Element {
	grid := NewElement("div", "section-media")

	var videoCount, imageCount, gifCount int
	for _, m := range media {
		switch {
		case m.IsVideoFamily():
			videoCount++
		case m.Type == models.MediaImage:
			imageCount++
		case m.Type == models.MediaGif:
			gifCount++
		}
	}

	addCountClasses(grid, videoCount, "has-videos", "single-video", "multiple-videos")
	addCountClasses(grid, imageCount, "has-images", "single-image", "multiple-images")
	addCountClasses(grid, gifCount, "has-gifs", "single-gif", "multiple-gifs")

	for _, item := range media {
		grid.Append(Media(item))
	}
	return grid
}

func addCountClasses(el *Element, count int, has, single, multiple string) {
	if count == 0 {
		return
	}
	el.AddClass(has)
	if count == 1 {
		el.AddClass(single)
	} else {
		el.AddClass(multiple)
	}
}
