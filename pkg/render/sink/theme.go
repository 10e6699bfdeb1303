package sink

import (
	"bytes"
	"encoding/xml"
)

// Theme holds the colors and sizes of rendered scenes. Colors are hex
// strings such as "#3182ce".
type Theme struct {
	Background string
	Fill       string
	Stroke     string
	Selected   string
	Hover      string
	Link       string
	Text       string
	Marquee    string

	StrokeWidth float64
	Radius      float64
	// Padding is the horizontal inset of labels.
	Padding    float64
	HandleSize float64
}

// DefaultTheme is a light theme.
var DefaultTheme = Theme{
	Background:  "#ffffff",
	Fill:        "#f7fafc",
	Stroke:      "#4a5568",
	Selected:    "#3182ce",
	Hover:       "#63b3ed",
	Link:        "#718096",
	Text:        "#1a202c",
	Marquee:     "#3182ce",
	StrokeWidth: 1.5,
	Radius:      4,
	Padding:     4,
	HandleSize:  6,
}

// stroke returns the border color of b.
func (t Theme) stroke(b Box) string {
	switch {
	case b.Selected:
		return t.Selected
	case b.Hovered:
		return t.Hover
	}
	return t.Stroke
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
