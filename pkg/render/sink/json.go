package sink

import (
	"context"
	"encoding/json"
	"time"

	"github.com/matzehuels/sketchboard/pkg/geom"
	"github.com/matzehuels/sketchboard/pkg/observability"
	"github.com/matzehuels/sketchboard/pkg/textlayout"
)

type jsonScene struct {
	Width     float64     `json:"width"`
	Height    float64     `json:"height"`
	Viewport  jsonView    `json:"viewport"`
	Mode      string      `json:"mode"`
	Items     []jsonItem  `json:"items"`
	Links     []jsonLink  `json:"links"`
	Marquee   *geom.Rect  `json:"marquee,omitempty"`
	Connector *geom.Curve `json:"connector,omitempty"`
}

type jsonView struct {
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
	Scale   float64 `json:"scale"`
}

type jsonItem struct {
	Key      string            `json:"key"`
	Type     string            `json:"type,omitempty"`
	X        float64           `json:"x"`
	Y        float64           `json:"y"`
	W        float64           `json:"w"`
	H        float64           `json:"h"`
	Selected bool              `json:"selected,omitempty"`
	Hovered  bool              `json:"hovered,omitempty"`
	Label    string            `json:"label"`
	Lines    []textlayout.Line `json:"lines"`
}

type jsonLink struct {
	From string `json:"from"`
	To   string `json:"to"`
	Path string `json:"path"`
}

// RenderJSON dumps the scene with laid out label lines.
func RenderJSON(s Scene, opts ...Option) ([]byte, error) {
	start := time.Now()
	observability.Render().OnRenderStart(context.Background(), "json", len(s.Boxes))

	r := newRenderer(opts...)
	out := jsonScene{
		Width:     s.Width,
		Height:    s.Height,
		Viewport:  jsonView{OffsetX: s.Offset.X, OffsetY: s.Offset.Y, Scale: s.Scale},
		Mode:      s.Mode,
		Items:     make([]jsonItem, 0, len(s.Boxes)),
		Links:     make([]jsonLink, 0, len(s.Links)),
		Marquee:   s.Marquee,
		Connector: s.Connector,
	}
	for _, b := range s.Boxes {
		out.Items = append(out.Items, jsonItem{
			Key:      b.Key,
			Type:     b.Type,
			X:        b.X,
			Y:        b.Y,
			W:        b.W,
			H:        b.H,
			Selected: b.Selected,
			Hovered:  b.Hovered,
			Label:    r.label(b),
			Lines:    r.layoutLabel(r.measurer, b).Lines,
		})
	}
	for _, l := range s.Links {
		out.Links = append(out.Links, jsonLink{From: l.From, To: l.To, Path: l.Curve.String()})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	observability.Render().OnRenderComplete(context.Background(), "json", len(data), time.Since(start), err)
	return data, err
}
