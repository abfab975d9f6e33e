// Package slideshow holds the cyclic carousel state machine. The sequence
// length is fixed at construction; the carousel never terminates, it wraps.
package slideshow

// Key values the carousel responds to when focused.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Controller tracks the single active slide index in [0, N).
type Controller struct {
	length  int
	current int
}

func New(length int) *Controller {
	if length < 0 {
		length = 0
	}
	return &Controller{length: length}
}

func (c *Controller) Len() int     { return c.length }
func (c *Controller) Current() int { return c.current }

// Next advances cyclically and returns the new index.
func (c *Controller) Next() int {
	if c.length == 0 {
		return 0
	}
	c.current = (c.current + 1) % c.length
	return c.current
}

// Prev steps back cyclically and returns the new index.
func (c *Controller) Prev() int {
	if c.length == 0 {
		return 0
	}
	c.current = (c.current - 1 + c.length) % c.length
	return c.current
}

// JumpTo selects slide i. Out-of-range requests are ignored: no error,
// no state change.
func (c *Controller) JumpTo(i int) int {
	if i >= 0 && i < c.length {
		c.current = i
	}
	return c.current
}

// HandleKey maps keyboard navigation onto transitions. It reports whether
// the key was one the carousel responds to.
func (c *Controller) HandleKey(key string) bool {
	switch key {
	case KeyArrowLeft:
		c.Prev()
		return true
	case KeyArrowRight:
		c.Next()
		return true
	}
	return false
}
