package textlayout

import (
	"fmt"
	"strings"
)

// Defaults applied by [Layout] when no option overrides them.
const (
	DefaultFontSize = 12
	DefaultMaxLines = 1
	DefaultOverflow = "…"
)

// Align is the horizontal alignment of laid out lines.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlign parses "left", "center" or "right". The empty string is left.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return AlignLeft, nil
	case "center", "middle":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("invalid alignment: %s (must be 'left', 'center', or 'right')", s)
}

// Line is one laid out line of text. Widths holds one entry per rune; a
// trailing overflow marker counts as a single entry, so Widths always sums to
// Width.
type Line struct {
	Text   string    `json:"text"`
	Width  float64   `json:"width"`
	Widths []float64 `json:"widths"`
	Left   float64   `json:"left"`
}

// Option configures [Layout].
type Option func(*options)

type options struct {
	fontSize float64
	maxLines int
	overflow string
	endGap   float64
	align    Align
}

// WithFontSize sets the font size passed to the measurer.
func WithFontSize(size float64) Option { return func(o *options) { o.fontSize = size } }

// WithMaxLines sets the maximum number of lines.
func WithMaxLines(n int) Option { return func(o *options) { o.maxLines = n } }

// WithOverflow sets the marker appended to truncated text. An empty marker
// truncates silently.
func WithOverflow(marker string) Option { return func(o *options) { o.overflow = marker } }

// WithTextEndGap reserves gap pixels at the end of the last allowed line.
func WithTextEndGap(gap float64) Option { return func(o *options) { o.endGap = gap } }

// WithAlign sets the horizontal alignment used to compute [Line.Left].
func WithAlign(a Align) Option { return func(o *options) { o.align = a } }

type lineBuf struct {
	runes     []rune
	widths    []float64
	width     float64
	truncated bool
}

func (l *lineBuf) push(r rune, w float64) {
	l.runes = append(l.runes, r)
	l.widths = append(l.widths, w)
	l.width += w
}

func (l *lineBuf) pop() {
	n := len(l.runes) - 1
	l.width -= l.widths[n]
	l.runes = l.runes[:n]
	l.widths = l.widths[:n]
}

// Layout lays text out into at most the configured number of lines of the
// given pixel width.
//
// Empty text, a non-positive width or a non-positive line limit yield a single
// empty line. The result is stable: laying out the concatenated text of a
// previous result again (see [Join]) returns the same lines.
func Layout(m Measurer, text string, width float64, opts ...Option) []Line {
	o := options{
		fontSize: DefaultFontSize,
		maxLines: DefaultMaxLines,
		overflow: DefaultOverflow,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if text == "" || width <= 0 || o.maxLines <= 0 {
		return []Line{{}}
	}

	var markerWidth float64
	if o.overflow != "" {
		markerWidth = m.MeasureString(o.overflow, o.fontSize)
	}

	cur := &lineBuf{}
	lines := []*lineBuf{cur}

	for _, r := range text {
		w := m.MeasureString(string(r), o.fontSize)

		limit := width
		if len(lines) == o.maxLines {
			limit -= o.endGap
		}
		if cur.width+w <= limit {
			cur.push(r, w)
			continue
		}

		if len(lines) == o.maxLines {
			if markerWidth > 0 {
				for len(cur.runes) > 0 && cur.width+markerWidth > width-o.endGap {
					cur.pop()
				}
				cur.widths = append(cur.widths, markerWidth)
				cur.width += markerWidth
				cur.truncated = true
			}
			return finish(lines, width, o)
		}

		cur = &lineBuf{}
		cur.push(r, w)
		lines = append(lines, cur)
	}

	return finish(lines, width, o)
}

// finish converts the line buffers into lines and applies the alignment.
func finish(bufs []*lineBuf, width float64, o options) []Line {
	out := make([]Line, len(bufs))
	for i, b := range bufs {
		text := string(b.runes)
		if b.truncated {
			text += o.overflow
		}

		l := Line{Text: text, Width: b.width, Widths: b.widths}
		switch o.align {
		case AlignCenter:
			l.Left = (width - l.Width) / 2
		case AlignRight:
			l.Left = width - l.Width
		}
		out[i] = l
	}
	return out
}

// Join concatenates the text of all lines, undoing the wrapping.
func Join(lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.Text)
	}
	return sb.String()
}
