package sink

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/sketchboard/pkg/editor"
	"github.com/matzehuels/sketchboard/pkg/fonts"
	"github.com/matzehuels/sketchboard/pkg/geom"
	"github.com/matzehuels/sketchboard/pkg/observability"
)

// RenderSVG renders the scene as a standalone SVG document.
func RenderSVG(s Scene, opts ...Option) []byte {
	start := time.Now()
	observability.Render().OnRenderStart(context.Background(), "svg", len(s.Boxes))

	r := newRenderer(opts...)
	t := r.theme
	n := geom.FormatNumber

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		n(s.Width), n(s.Height), n(s.Width), n(s.Height))
	r.renderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect class="canvas" width="100%%" height="100%%" fill="%s"/>`+"\n", t.Background)

	fmt.Fprintf(&buf, `  <g class="viewport" transform="translate(%s %s) scale(%s)">`+"\n",
		n(s.Offset.X), n(s.Offset.Y), n(s.Scale))
	for _, l := range s.Links {
		fmt.Fprintf(&buf, `    <path class="link" data-from="%s" data-to="%s" d="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
			escapeXML(l.From), escapeXML(l.To), svgPath(l.Curve), t.Link, n(t.StrokeWidth))
	}
	for _, b := range s.Boxes {
		r.renderBox(&buf, b)
	}
	if s.Connector != nil {
		fmt.Fprintf(&buf, `    <path class="connector" d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-dasharray="4 4"/>`+"\n",
			svgPath(*s.Connector), t.Selected, n(t.StrokeWidth))
	}
	buf.WriteString("  </g>\n")

	if m := s.Marquee; m != nil {
		fmt.Fprintf(&buf, `  <rect class="marquee" x="%s" y="%s" width="%s" height="%s" fill="%s" fill-opacity="0.1" stroke="%s" stroke-dasharray="4 4"/>`+"\n",
			n(m.X), n(m.Y), n(m.W), n(m.H), t.Marquee, t.Marquee)
	}
	buf.WriteString("</svg>\n")

	observability.Render().OnRenderComplete(context.Background(), "svg", buf.Len(), time.Since(start), nil)
	return buf.Bytes()
}

func (r *renderer) renderDefs(buf *bytes.Buffer) {
	family := fonts.FallbackFontFamily
	buf.WriteString("  <defs>\n    <style>\n")
	if r.embedFont {
		fmt.Fprintf(buf, "      @font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }\n",
			fonts.FontFamily, fonts.RegularBase64())
	}
	fmt.Fprintf(buf, "      .label { font-family: %s; font-size: %spx; fill: %s; }\n",
		family, geom.FormatNumber(r.fontSize), r.theme.Text)
	buf.WriteString("    </style>\n  </defs>\n")
}

func (r *renderer) renderBox(buf *bytes.Buffer, b Box) {
	t := r.theme
	n := geom.FormatNumber

	fmt.Fprintf(buf, `    <g class="%s" data-key="%s">`+"\n", editor.ClassItem, escapeXML(b.Key))
	fmt.Fprintf(buf, `      <rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		n(b.X), n(b.Y), n(b.W), n(b.H), n(t.Radius), t.Fill, t.stroke(b), n(t.StrokeWidth))

	lb := r.layoutLabel(r.measurer, b)
	for i, line := range lb.Lines {
		if line.Text == "" {
			continue
		}
		fmt.Fprintf(buf, `      <text class="label" x="%s" y="%s">%s</text>`+"\n",
			n(lb.X+line.Left), n(lb.baseline(i, r.fontSize)), escapeXML(line.Text))
	}

	if b.Handles {
		hs := t.HandleSize
		for _, d := range editor.Directions {
			p := editor.HandlePoint(b.Item, d)
			fmt.Fprintf(buf, `      <rect class="%s" data-mode="%s" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
				editor.ClassResize, d, n(p.X-hs/2), n(p.Y-hs/2), n(hs), n(hs), t.Selected)
		}
	}
	buf.WriteString("    </g>\n")
}

func svgPath(c geom.Curve) string {
	return geom.SVGPath(c.String())
}
