package render

import "portfoliohub/pkg/models"

// Media converts one media descriptor into its displayable element. The
// dispatch never fails: unrecognized types degrade to a placeholder block
// so an incompletely authored item can't break a whole detail view.
func Media(item models.MediaItem) *Element {
	wrap := NewElement("div", "media-item", "media-"+item.Type)

	var el *Element
	switch item.Type {
	case models.MediaImage:
		el = NewElement("img", "media-image").
			SetAttr("src", item.Src).
			SetAttr("alt", captionOr(item, "Project media"))

	case models.MediaGif:
		// animated by the file format itself; still a plain img
		el = NewElement("img", "media-gif").
			SetAttr("src", item.Src).
			SetAttr("alt", captionOr(item, "Project animation"))

	case models.MediaVideo:
		el = NewElement("video", "media-video").
			SetAttr("src", item.Src).
			SetAttr("controls", "controls")

	case models.MediaMP4:
		// autoplaying ambient loop: muted is required for autoplay,
		// playsinline keeps mobile browsers from going fullscreen
		el = NewElement("video", "media-mp4").
			SetAttr("src", item.Src).
			SetAttr("autoplay", "autoplay").
			SetAttr("loop", "loop").
			SetAttr("muted", "muted").
			SetAttr("playsinline", "playsinline")

	default:
		el = NewElement("div", "media-placeholder").SetText("Media content")
	}

	wrap.Append(el)

	if item.Caption != "" {
		wrap.Append(NewElement("p", "media-caption").SetText(item.Caption))
	}
	return wrap
}

func captionOr(item models.MediaItem, def string) string {
	if item.Caption != "" {
		return item.Caption
	}
	return def
}
