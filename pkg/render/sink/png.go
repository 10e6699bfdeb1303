package sink

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/matzehuels/sketchboard/pkg/editor"
	"github.com/matzehuels/sketchboard/pkg/fonts"
	"github.com/matzehuels/sketchboard/pkg/geom"
	"github.com/matzehuels/sketchboard/pkg/observability"
)

var (
	pngFont     *truetype.Font
	pngFontErr  error
	pngFontOnce sync.Once
)

func labelFont() (*truetype.Font, error) {
	pngFontOnce.Do(func() {
		pngFont, pngFontErr = truetype.Parse(fonts.Regular())
	})
	return pngFont, pngFontErr
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// contextMeasurer measures with the face currently set on a gg context.
type contextMeasurer struct{ dc *gg.Context }

func (m contextMeasurer) MeasureString(s string, _ float64) float64 {
	w, _ := m.dc.MeasureString(s)
	return w
}

// RenderPNG renders the scene as a PNG image. The canvas is Width x Height
// screen pixels times the pixel ratio.
func RenderPNG(s Scene, opts ...Option) (data []byte, err error) {
	start := time.Now()
	observability.Render().OnRenderStart(context.Background(), "png", len(s.Boxes))
	defer func() {
		observability.Render().OnRenderComplete(context.Background(), "png", len(data), time.Since(start), err)
	}()

	r := newRenderer(opts...)
	f, err := labelFont()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	w := int(math.Ceil(s.Width * r.pixelRatio))
	h := int(math.Ceil(s.Height * r.pixelRatio))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)

	// Labels are laid out in virtual units at the configured size.
	dc.SetFontFace(newFace(f, r.fontSize))
	labels := make([]labelBlock, len(s.Boxes))
	for i, b := range s.Boxes {
		labels[i] = r.layoutLabel(contextMeasurer{dc}, b)
	}

	p := pngPainter{dc: dc, theme: r.theme, scene: s, ratio: r.pixelRatio}
	p.background()
	for _, l := range s.Links {
		p.curve(l.Curve, r.theme.Link, false)
	}
	for _, b := range s.Boxes {
		p.box(b)
	}

	zoom := s.Scale * r.pixelRatio
	dc.SetFontFace(newFace(f, r.fontSize*zoom))
	dc.SetHexColor(r.theme.Text)
	for i, lb := range labels {
		for j, line := range lb.Lines {
			if line.Text == "" {
				continue
			}
			at := p.dev(geom.Point{X: lb.X + line.Left, Y: lb.baseline(j, r.fontSize)})
			dc.DrawString(line.Text, at.X, at.Y)
		}
		if s.Boxes[i].Handles {
			p.handles(s.Boxes[i])
		}
	}

	if s.Connector != nil {
		p.curve(*s.Connector, r.theme.Selected, true)
	}
	if s.Marquee != nil {
		p.marquee(*s.Marquee)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// pngPainter draws in device pixels; dev maps virtual points there.
type pngPainter struct {
	dc    *gg.Context
	theme Theme
	scene Scene
	ratio float64
}

func (p pngPainter) dev(v geom.Point) geom.Point {
	return p.scene.toScreen(v).Scale(p.ratio)
}

func (p pngPainter) zoom() float64 { return p.scene.Scale * p.ratio }

func (p pngPainter) background() {
	p.dc.SetHexColor(p.theme.Background)
	p.dc.Clear()
}

func (p pngPainter) box(b Box) {
	tl := p.dev(geom.Point{X: b.X, Y: b.Y})
	z := p.zoom()
	p.dc.DrawRoundedRectangle(tl.X, tl.Y, b.W*z, b.H*z, p.theme.Radius*z)
	p.dc.SetHexColor(p.theme.Fill)
	p.dc.FillPreserve()
	p.dc.SetHexColor(p.theme.stroke(b))
	p.dc.SetLineWidth(p.theme.StrokeWidth * z)
	p.dc.Stroke()
}

func (p pngPainter) handles(b Box) {
	hs := p.theme.HandleSize * p.ratio
	p.dc.SetHexColor(p.theme.Selected)
	for _, d := range editor.Directions {
		at := p.dev(editor.HandlePoint(b.Item, d))
		p.dc.DrawRectangle(at.X-hs/2, at.Y-hs/2, hs, hs)
		p.dc.Fill()
	}
}

func (p pngPainter) curve(c geom.Curve, color string, dashed bool) {
	a, c1, c2, b := p.dev(c.Start), p.dev(c.C1), p.dev(c.C2), p.dev(c.End)
	p.dc.MoveTo(a.X, a.Y)
	p.dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, b.X, b.Y)
	p.dc.SetHexColor(color)
	p.dc.SetLineWidth(p.theme.StrokeWidth * p.zoom())
	if dashed {
		p.dc.SetDash(4*p.ratio, 4*p.ratio)
	}
	p.dc.Stroke()
	p.dc.SetDash()
}

func (p pngPainter) marquee(m geom.Rect) {
	p.dc.DrawRectangle(m.X*p.ratio, m.Y*p.ratio, m.W*p.ratio, m.H*p.ratio)
	p.dc.SetRGBA255(49, 130, 206, 25)
	p.dc.FillPreserve()
	p.dc.SetHexColor(p.theme.Marquee)
	p.dc.SetLineWidth(p.ratio)
	p.dc.SetDash(4*p.ratio, 4*p.ratio)
	p.dc.Stroke()
	p.dc.SetDash()
}
