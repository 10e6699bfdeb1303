package document

import (
	"github.com/matzehuels/sketchboard/pkg/editor"
	"github.com/matzehuels/sketchboard/pkg/geom"
)

// LabelKey is the meta key holding the display label of an item.
const LabelKey = "label"

// Document is a diagram: items, connections and the saved viewport.
type Document struct {
	Items       []editor.Item
	Connections []Connection
	Viewport    Viewport
}

// Connection links two items by key.
type Connection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Viewport is a saved pan and zoom.
type Viewport struct {
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
	Scale   float64 `json:"scale"`
}

// Label returns the display label of an item, falling back to its key.
func Label(it editor.Item) string {
	if s, ok := it.Meta[LabelKey].(string); ok && s != "" {
		return s
	}
	return it.Key
}

// Controller returns a controller over the document items with the saved
// viewport applied. Edits made through it are visible in d.Items.
func (d *Document) Controller(opts ...editor.Option) *editor.Controller {
	c := editor.New(d.Items, opts...)
	c.SetViewportPos(d.Viewport.OffsetX, d.Viewport.OffsetY)
	c.SetViewportScale(d.Viewport.Scale)
	return c
}

// SyncViewport stores the current viewport of c in the document.
func (d *Document) SyncViewport(c *editor.Controller) {
	off := c.Offset()
	d.Viewport = Viewport{OffsetX: off.X, OffsetY: off.Y, Scale: c.Scale()}
}

// Index returns the position of every item by key.
func (d *Document) Index() map[string]int {
	idx := make(map[string]int, len(d.Items))
	for i, it := range d.Items {
		idx[it.Key] = i
	}
	return idx
}

// Bounds returns the union of all item rectangles.
func (d *Document) Bounds() (geom.Rect, bool) {
	if len(d.Items) == 0 {
		return geom.Rect{}, false
	}
	b := d.Items[0].Bounds()
	for _, it := range d.Items[1:] {
		b = b.Union(it.Bounds())
	}
	return b, true
}
