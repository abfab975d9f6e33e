package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElement_HTML(t *testing.T) {
	t.Run("attributes are written in sorted order", func(t *testing.T) {
		el := NewElement("video").
			SetAttr("src", "a.mp4").
			SetAttr("loop", "loop").
			SetAttr("autoplay", "autoplay")
		assert.Equal(t, `<video autoplay="autoplay" loop="loop" src="a.mp4"></video>`, el.HTML())
	})

	t.Run("text content is escaped", func(t *testing.T) {
		el := NewElement("span").SetText(`<script>alert("x")</script>`)
		assert.Equal(t, `<span>&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;</span>`, el.HTML())
	})

	t.Run("attribute values are escaped", func(t *testing.T) {
		el := NewElement("img").SetAttr("alt", `a "quoted" <name>`)
		assert.Equal(t, `<img alt="a &#34;quoted&#34; &lt;name&gt;">`, el.HTML())
	})

	t.Run("raw html is written verbatim", func(t *testing.T) {
		el := NewElement("div").SetRawHTML("<p>trusted</p>")
		assert.Equal(t, "<div><p>trusted</p></div>", el.HTML())
	})

	t.Run("void tags have no closing tag", func(t *testing.T) {
		el := NewElement("img", "hero-image").SetAttr("src", "x.png")
		assert.Equal(t, `<img class="hero-image" src="x.png">`, el.HTML())
	})

	t.Run("fragment writes only children", func(t *testing.T) {
		frag := Fragment(NewElement("p").SetText("a"), NewElement("p").SetText("b"))
		assert.Equal(t, "<p>a</p><p>b</p>", frag.HTML())
	})

	t.Run("nil children are skipped", func(t *testing.T) {
		el := NewElement("div").Append(nil, NewElement("p").SetText("kept"))
		assert.Equal(t, "<div><p>kept</p></div>", el.HTML())
	})

	t.Run("classes join in declaration order", func(t *testing.T) {
		el := NewElement("div", "a", "b").AddClass("c")
		assert.Equal(t, `<div class="a b c"></div>`, el.HTML())
	})
}
