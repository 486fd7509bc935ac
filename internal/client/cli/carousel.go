package cli

// Carousel walks the images of the project being viewed, wrapping at both
// ends.
type Carousel struct {
	index int
	count int
}

func (c *Carousel) Reset(count int) {
	c.index = 0
	c.count = max(count, 0)
}

func (c *Carousel) Next() int {
	if c.count > 0 {
		c.index = (c.index + 1) % c.count
	}
	return c.index
}

func (c *Carousel) Prev() int {
	if c.count > 0 {
		c.index = (c.index - 1 + c.count) % c.count
	}
	return c.index
}

func (c *Carousel) Index() int { return c.index }
func (c *Carousel) Len() int   { return c.count }
