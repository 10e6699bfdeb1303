package editor

import (
	"math"

	"github.com/matzehuels/sketchboard/pkg/geom"
)

// FitPadding is the screen margin kept around content by [Controller.ViewFull].
const FitPadding = 20

// ToScreen maps a virtual point to screen coordinates.
func (c *Controller) ToScreen(p geom.Point) geom.Point {
	return p.Scale(c.scale).Add(c.offset)
}

// ToVirtual maps a screen point to virtual coordinates.
func (c *Controller) ToVirtual(p geom.Point) geom.Point {
	return p.Sub(c.offset).Scale(1 / c.scale)
}

// SetViewportPos sets the pan offset.
func (c *Controller) SetViewportPos(x, y float64) {
	c.offset = geom.Point{X: x, Y: y}
}

// SetViewportScale sets the zoom, clamped to [MinScale, MaxScale].
func (c *Controller) SetViewportScale(s float64) {
	c.scale = clampScale(s)
}

// ViewInit restores the identity view.
func (c *Controller) ViewInit() {
	c.offset = geom.Point{}
	c.scale = 1
}

// ContentBounds returns the union of all item rectangles in virtual
// coordinates, or false if there are no items.
func (c *Controller) ContentBounds() (geom.Rect, bool) {
	if len(c.items) == 0 {
		return geom.Rect{}, false
	}
	b := c.items[0].Bounds()
	for _, it := range c.items[1:] {
		b = b.Union(it.Bounds())
	}
	return b, true
}

// ViewFull zooms and pans so that all items fit a viewport of w by h screen
// pixels, centered. The scale stays within its usual bounds.
func (c *Controller) ViewFull(w, h float64) {
	b, ok := c.ContentBounds()
	if !ok || w <= 0 || h <= 0 {
		c.ViewInit()
		return
	}
	aw := math.Max(1, w-2*FitPadding)
	ah := math.Max(1, h-2*FitPadding)
	s := MaxScale
	if b.W > 0 {
		s = math.Min(s, aw/b.W)
	}
	if b.H > 0 {
		s = math.Min(s, ah/b.H)
	}
	c.scale = clampScale(s)
	c.offset = geom.Point{
		X: (w-b.W*c.scale)/2 - b.X*c.scale,
		Y: (h-b.H*c.scale)/2 - b.Y*c.scale,
	}
}

// Placement returns where a new item of typ dropped at the canvas position
// (offsetX, offsetY) goes: its default size, centered on the pointer, snapped
// to the grid. The host creates the item.
func (c *Controller) Placement(typ string, offsetX, offsetY float64) geom.Rect {
	size := c.sizes.DefaultSize(typ)
	v := c.ToVirtual(geom.Point{X: offsetX, Y: offsetY})
	return geom.Rect{
		X: geom.Snap(v.X-size.W/2, MoveGrid),
		Y: geom.Snap(v.Y-size.H/2, MoveGrid),
		W: size.W,
		H: size.H,
	}
}
