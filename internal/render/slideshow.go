package render

import (
	"strconv"

	"portfoliohub/internal/slideshow"
	"portfoliohub/pkg/models"
)

// Slideshow builds the carousel markup for a media sequence with the first
// slide active. An empty sequence renders nothing at all, not even the
// carousel chrome.
func Slideshow(media []models.MediaItem) *Element {
	if len(media) == 0 {
		return nil
	}
	return SlideshowAt(media, slideshow.New(len(media)))
}

// SlideshowAt renders the carousel in the state the controller is in.
// Exactly one slide and one indicator dot are active.
func SlideshowAt(media []models.MediaItem, ctrl *slideshow.Controller) *Element {
	if len(media) == 0 {
		return nil
	}

	container := NewElement("div", "slideshow-container").
		SetAttr("tabindex", "0") // focusable so arrow keys reach it

	slides := NewElement("div", "slides-container")
	for i, item := range media {
		slide := NewElement("div", "slide")
		if i == ctrl.Current() {
			slide.AddClass("active")
		}
		slide.SetAttr("data-slide", strconv.Itoa(i))
		slide.Append(Media(item))
		slides.Append(slide)
	}

	wrapper := NewElement("div", "slideshow-wrapper").Append(slides)

	prev := NewElement("button", "slideshow-btn", "prev-btn").
		SetAttr("aria-label", "Previous image").
		SetRawHTML("&lsaquo;")
	next := NewElement("button", "slideshow-btn", "next-btn").
		SetAttr("aria-label", "Next image").
		SetRawHTML("&rsaquo;")

	dots := NewElement("div", "slideshow-dots")
	for i := range media {
		dot := NewElement("button", "dot")
		if i == ctrl.Current() {
			dot.AddClass("active")
		}
		dot.SetAttr("data-slide", strconv.Itoa(i)).
			SetAttr("aria-label", "Go to slide "+strconv.Itoa(i+1))
		dots.Append(dot)
	}

	controls := NewElement("div", "slideshow-controls").Append(prev, next, dots)

	return container.Append(wrapper, controls)
}
