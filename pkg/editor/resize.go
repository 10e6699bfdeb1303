package editor

import (
	"math"

	"github.com/matzehuels/sketchboard/pkg/geom"
)

func (c *Controller) resizeSelection(page geom.Point) {
	if len(c.selection) != 1 {
		return
	}
	key := c.selection[0]
	it := c.Item(key)
	start, ok := c.snapshot[key]
	if it == nil || !ok {
		return
	}
	delta := page.Sub(c.dragStart).Scale(1 / c.scale)
	resize(it, start, c.handle, delta, c.sizes.MinSize(it.Type))
}

// resize applies a handle drag of delta (virtual units) to it, starting from
// the geometry in start. Dragged edges on the west and north sides move the
// position too, unless the size hit its minimum.
func resize(it *Item, start geom.Rect, d Direction, delta geom.Point, min Size) {
	switch {
	case d.east():
		it.W = snapSize(start.W+delta.X, min.W)
	case d.west():
		it.W = snapSize(start.W-delta.X, min.W)
		if it.W > min.W {
			it.X = geom.Snap(start.X+delta.X, MoveGrid)
		}
	}
	switch {
	case d.south():
		it.H = snapSize(start.H+delta.Y, min.H)
	case d.north():
		it.H = snapSize(start.H-delta.Y, min.H)
		if it.H > min.H {
			it.Y = geom.Snap(start.Y+delta.Y, MoveGrid)
		}
	}
}

// snapSize snaps a dimension to the size grid without going below min.
func snapSize(v, min float64) float64 {
	return math.Max(min, geom.Snap(math.Max(min, v), SizeGrid))
}
