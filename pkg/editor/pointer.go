package editor

import (
	"math"
	"slices"

	"github.com/matzehuels/sketchboard/pkg/geom"
)

// Wheel pans the viewport, or zooms around the pointer when ev.Zoom is set.
func (c *Controller) Wheel(ev WheelEvent) {
	if !ev.Zoom {
		c.offset.X -= ev.DeltaX
		c.offset.Y -= ev.DeltaY
		return
	}
	before := c.scale
	c.scale = clampScale(before - ev.DeltaY*ZoomStep)
	d := before - c.scale
	c.offset.X += zoomShift(ev.Width, d, ev.OffsetX)
	c.offset.Y += zoomShift(ev.Height, d, ev.OffsetY)
}

// zoomShift keeps the point under the pointer fixed while zooming along one
// axis of an element of the given size.
func zoomShift(size, d, pointer float64) float64 {
	if size <= 0 {
		return d * pointer
	}
	return size * d * (pointer / size)
}

func clampScale(s float64) float64 {
	if math.IsNaN(s) {
		return 1
	}
	return math.Max(MinScale, math.Min(MaxScale, s))
}

// KeyDown tracks the pan modifier.
func (c *Controller) KeyDown(ev KeyEvent) {
	if ev.Code == KeySpace {
		c.spaceDown = true
	}
}

// KeyUp releases the pan modifier. A walk started with space and the left
// button ends with it.
func (c *Controller) KeyUp(ev KeyEvent) {
	if ev.Code != KeySpace {
		return
	}
	c.spaceDown = false
	if c.mode == ModeWalking && c.walkBySpace {
		c.endGesture()
	}
}

// SpaceDown reports whether the pan modifier is held.
func (c *Controller) SpaceDown() bool { return c.spaceDown }

// PointerDown starts a gesture. It is ignored while another gesture is
// active and in read-only mode.
func (c *Controller) PointerDown(ev PointerEvent) {
	if c.readonly || c.mode != ModeIdle {
		return
	}
	page := geom.Point{X: ev.X, Y: ev.Y}

	if ev.Button == ButtonMiddle || (ev.Button == ButtonLeft && c.spaceDown) {
		c.dragStart = page
		c.startOffset = c.offset
		c.walkBySpace = ev.Button == ButtonLeft
		c.setMode(ModeWalking)
		return
	}
	if ev.Button != ButtonLeft {
		return
	}

	switch ev.Target.Kind {
	case HitHandle:
		c.beginResize(ev.Target, page)
	case HitItem:
		c.beginItem(ev, page)
	case HitScrollbarX:
		c.dragStart = page
		c.startOffset = c.offset
		c.setMode(ModeScrollingX)
	case HitScrollbarY:
		c.dragStart = page
		c.startOffset = c.offset
		c.setMode(ModeScrollingY)
	case HitCanvas:
		at := geom.Point{X: ev.OffsetX, Y: ev.OffsetY}
		c.marqueeFrom, c.marqueeTo = at, at
		if !ev.Shift {
			c.setSelection(nil)
		}
		c.setMode(ModeSelecting)
	}
}

func (c *Controller) beginResize(t HitTarget, page geom.Point) {
	if c.Item(t.Key) == nil {
		c.setSelection(nil)
		return
	}
	c.setSelection([]string{t.Key})
	if !t.Handle.Valid() {
		return
	}
	c.dragStart = page
	c.handle = t.Handle
	c.snapshot = c.capture(c.selection)
	c.setMode(ModeResizing)
}

func (c *Controller) beginItem(ev PointerEvent, page geom.Point) {
	key := ev.Target.Key
	it := c.Item(key)
	if it == nil {
		return
	}

	switch {
	case ev.Shift:
		if i := slices.Index(c.selection, key); i >= 0 {
			c.setSelection(slices.Delete(slices.Clone(c.selection), i, i+1))
		} else {
			c.setSelection(append(slices.Clone(c.selection), key))
		}
	case ev.Alt:
		center := it.Center()
		c.setSelection([]string{key})
		c.connFrom = key
		c.connStart, c.connEnd = center, center
		c.setMode(ModeConnecting)
		return
	case len(c.selection) <= 1 || !slices.Contains(c.selection, key):
		c.setSelection([]string{key})
	}

	c.dragStart = page
	c.snapshot = c.capture(c.selection)
	c.setMode(ModeMoving)
}

// PointerMove updates hover and drives the active gesture.
func (c *Controller) PointerMove(ev PointerEvent) {
	if c.readonly {
		return
	}
	switch ev.Target.Kind {
	case HitItem, HitHandle:
		c.hover = ev.Target.Key
	default:
		c.hover = ""
	}

	page := geom.Point{X: ev.X, Y: ev.Y}
	at := geom.Point{X: ev.OffsetX, Y: ev.OffsetY}

	switch c.mode {
	case ModeWalking:
		c.offset = c.startOffset.Add(page.Sub(c.dragStart))
	case ModeMoving:
		c.moveSelection(page)
		c.hover = ""
	case ModeResizing:
		c.resizeSelection(page)
		c.hover = ""
	case ModeConnecting:
		c.connEnd = c.ToVirtual(at)
	case ModeSelecting:
		c.marqueeTo = at
		c.setSelection(c.enclosed(c.marqueeFrom, c.marqueeTo))
	case ModeScrollingX:
		c.offset.X = c.startOffset.X - (page.X-c.dragStart.X)*scrollFactor(c.scale)
	case ModeScrollingY:
		c.offset.Y = c.startOffset.Y - (page.Y-c.dragStart.Y)*scrollFactor(c.scale)
	}
}

// PointerUp ends the active gesture. Geometry changes were applied live, so
// there is nothing to commit. The selection survives.
func (c *Controller) PointerUp(PointerEvent) {
	c.endGesture()
}

func scrollFactor(scale float64) float64 {
	return math.Max(1, scale*scale)
}

func (c *Controller) moveSelection(page geom.Point) {
	delta := page.Sub(c.dragStart).Scale(1 / c.scale)
	for key, start := range c.snapshot {
		it := c.Item(key)
		if it == nil {
			continue
		}
		it.X = geom.Snap(start.X+delta.X, MoveGrid)
		it.Y = geom.Snap(start.Y+delta.Y, MoveGrid)
	}
}

// enclosed returns the keys of items whose screen rectangle lies inside the
// box spanned by a and b, in item order.
func (c *Controller) enclosed(a, b geom.Point) []string {
	var keys []string
	for _, it := range c.items {
		tl := c.ToScreen(geom.Point{X: it.X, Y: it.Y})
		br := c.ToScreen(geom.Point{X: it.X + it.W, Y: it.Y + it.H})
		if geom.InRect(tl.X, tl.Y, a.X, a.Y, b.X, b.Y) && geom.InRect(br.X, br.Y, a.X, a.Y, b.X, b.Y) {
			keys = append(keys, it.Key)
		}
	}
	return keys
}
