package propsymbol

import "fmt"

// Updater redraws symbols for an attribute. *Renderer satisfies it.
type Updater interface {
	Update(attribute string)
}

// Controller steps the map through the attribute list. Its index is the
// only selection state; every transition redraws through the Updater.
type Controller struct {
	attributes []string
	updater    Updater
	index      int
}

// NewController starts at index 0. The symbols are expected to already
// show attributes[0].
func NewController(attributes []string, updater Updater) (*Controller, error) {
	if len(attributes) == 0 {
		return nil, ErrNoAttributes
	}
	return &Controller{attributes: attributes, updater: updater}, nil
}

// Index returns the current slider position.
func (c *Controller) Index() int { return c.index }

// Max returns the last valid slider position.
func (c *Controller) Max() int { return len(c.attributes) - 1 }

// Attribute returns the attribute currently displayed.
func (c *Controller) Attribute() string { return c.attributes[c.index] }

// Forward moves one decade ahead, wrapping past the last to the first.
func (c *Controller) Forward() string {
	c.index++
	if c.index > c.Max() {
		c.index = 0
	}
	return c.apply()
}

// Reverse moves one decade back, wrapping before the first to the last.
func (c *Controller) Reverse() string {
	c.index--
	if c.index < 0 {
		c.index = c.Max()
	}
	return c.apply()
}

// Seek jumps to index as a slider drag would.
func (c *Controller) Seek(index int) (string, error) {
	if index < 0 || index > c.Max() {
		return "", fmt.Errorf("%w: %d not in [0,%d]", ErrIndexOutOfRange, index, c.Max())
	}
	c.index = index
	return c.apply(), nil
}

func (c *Controller) apply() string {
	attribute := c.attributes[c.index]
	c.updater.Update(attribute)
	return attribute
}
