package sink

import (
	"github.com/matzehuels/sketchboard/pkg/document"
	"github.com/matzehuels/sketchboard/pkg/editor"
	"github.com/matzehuels/sketchboard/pkg/geom"
)

// Default viewport size used when a scene is captured without one.
const (
	DefaultWidth  = 1200
	DefaultHeight = 800
)

// Scene is everything a renderer draws.
type Scene struct {
	Width, Height float64
	Offset        geom.Point
	Scale         float64
	Mode          string

	Boxes []Box
	Links []Link

	// Marquee is the selection rectangle in screen coordinates.
	Marquee *geom.Rect
	// Connector is the connector being dragged, in virtual coordinates.
	Connector *geom.Curve
}

// Box is one item with its interaction state.
type Box struct {
	editor.Item
	Selected bool
	Hovered  bool
	// Handles is set on the only selected item.
	Handles bool
}

// Link is a connection between two boxes.
type Link struct {
	From  string
	To    string
	Curve geom.Curve
}

// SceneOf captures the state of c. Connections naming unknown items are
// skipped.
func SceneOf(c *editor.Controller, conns []document.Connection, width, height float64) Scene {
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	s := Scene{
		Width:  width,
		Height: height,
		Offset: c.Offset(),
		Scale:  c.Scale(),
		Mode:   c.Mode().String(),
	}

	sel := c.Selection()
	for _, it := range c.Items() {
		selected := c.Selected(it.Key)
		s.Boxes = append(s.Boxes, Box{
			Item:     it,
			Selected: selected,
			Hovered:  c.Hover() == it.Key,
			Handles:  selected && len(sel) == 1 && !c.Readonly(),
		})
	}

	for _, conn := range conns {
		from, to := c.Item(conn.From), c.Item(conn.To)
		if from == nil || to == nil {
			continue
		}
		s.Links = append(s.Links, Link{From: conn.From, To: conn.To, Curve: editor.LinkCurve(*from, *to)})
	}

	if r, ok := c.Marquee(); ok {
		s.Marquee = &r
	}
	if conn, ok := c.Connector(); ok {
		curve := conn.Curve()
		s.Connector = &curve
	}
	return s
}

// FromDocument captures a document at its saved viewport.
func FromDocument(doc *document.Document, width, height float64) Scene {
	return SceneOf(doc.Controller(), doc.Connections, width, height)
}

// toScreen maps a virtual point through the scene viewport.
func (s Scene) toScreen(p geom.Point) geom.Point {
	return p.Scale(s.Scale).Add(s.Offset)
}
