package sink

import (
	"github.com/matzehuels/sketchboard/pkg/document"
	"github.com/matzehuels/sketchboard/pkg/textlayout"
)

// lineHeight is the label line pitch relative to the font size.
const lineHeight = 1.25

// Option configures a renderer.
type Option func(*renderer)

type renderer struct {
	theme      Theme
	measurer   textlayout.Measurer
	fontSize   float64
	textOpts   []textlayout.Option
	labelKey   string
	embedFont  bool
	pixelRatio float64
}

// WithTheme sets colors and sizes.
func WithTheme(t Theme) Option { return func(r *renderer) { r.theme = t } }

// WithMeasurer sets the text measurement surface for SVG and JSON output.
// PNG output always measures with the font it draws with.
func WithMeasurer(m textlayout.Measurer) Option { return func(r *renderer) { r.measurer = m } }

// WithFontSize sets the label font size.
func WithFontSize(size float64) Option {
	return func(r *renderer) {
		if size > 0 {
			r.fontSize = size
		}
	}
}

// WithTextOptions sets label layout options. The font size always comes
// from [WithFontSize].
func WithTextOptions(opts ...textlayout.Option) Option {
	return func(r *renderer) { r.textOpts = opts }
}

// WithLabelKey reads labels from another meta key.
func WithLabelKey(key string) Option { return func(r *renderer) { r.labelKey = key } }

// WithEmbeddedFont embeds the label font into SVG output.
func WithEmbeddedFont() Option { return func(r *renderer) { r.embedFont = true } }

// WithPixelRatio sets the PNG device pixel ratio (default 2).
func WithPixelRatio(ratio float64) Option {
	return func(r *renderer) {
		if ratio > 0 {
			r.pixelRatio = ratio
		}
	}
}

func newRenderer(opts ...Option) *renderer {
	r := &renderer{
		theme:      DefaultTheme,
		fontSize:   textlayout.DefaultFontSize,
		labelKey:   document.LabelKey,
		pixelRatio: 2,
		textOpts: []textlayout.Option{
			textlayout.WithMaxLines(2),
			textlayout.WithAlign(textlayout.AlignCenter),
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.measurer == nil {
		r.measurer = textlayout.DefaultFaceMeasurer()
	}
	return r
}

func (r *renderer) label(b Box) string {
	if s, ok := b.Meta[r.labelKey].(string); ok && s != "" {
		return s
	}
	return b.Key
}

// labelBlock is a laid out label positioned inside its box.
type labelBlock struct {
	Lines []textlayout.Line
	// X is the left edge of the text area, Top the first line's top.
	X, Top, Pitch float64
}

// baseline returns the baseline of line i.
func (l labelBlock) baseline(i int, fontSize float64) float64 {
	return l.Top + float64(i)*l.Pitch + fontSize
}

func (r *renderer) layoutLabel(m textlayout.Measurer, b Box) labelBlock {
	width := b.W - 2*r.theme.Padding
	opts := append(append([]textlayout.Option{}, r.textOpts...), textlayout.WithFontSize(r.fontSize))
	lines := textlayout.Layout(m, r.label(b), width, opts...)

	pitch := r.fontSize * lineHeight
	total := float64(len(lines))*pitch - (pitch - r.fontSize)
	return labelBlock{
		Lines: lines,
		X:     b.X + r.theme.Padding,
		Top:   b.Y + (b.H-total)/2,
		Pitch: pitch,
	}
}
