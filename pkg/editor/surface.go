package editor

import (
	"github.com/matzehuels/sketchboard/pkg/errors"
	"github.com/matzehuels/sketchboard/pkg/textlayout"
)

// SetSurface registers the text measurement surface.
func (c *Controller) SetSurface(m textlayout.Measurer) { c.surface = m }

// Surface returns the registered measurement surface. Asking before one was
// registered is a programming error reported as
// [errors.ErrCodeSurfaceNotInitialized].
func (c *Controller) Surface() (textlayout.Measurer, error) {
	if c.surface == nil {
		return nil, errors.New(errors.ErrCodeSurfaceNotInitialized, "text surface is not initialized")
	}
	return c.surface, nil
}

// MustSurface is like [Controller.Surface] but panics.
func (c *Controller) MustSurface() textlayout.Measurer {
	m, err := c.Surface()
	if err != nil {
		panic(err)
	}
	return m
}

// LabelLayout lays text out inside the width of the item with key.
func (c *Controller) LabelLayout(key, text string, opts ...textlayout.Option) ([]textlayout.Line, error) {
	m, err := c.Surface()
	if err != nil {
		return nil, err
	}
	it := c.Item(key)
	if it == nil {
		return nil, errors.New(errors.ErrCodeUnknownKey, "unknown item key %q", key)
	}
	return textlayout.Layout(m, text, it.W, opts...), nil
}
