package textlayout

import (
	"sync"
	"unicode/utf8"

	"github.com/golang/freetype/truetype"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"

	"github.com/matzehuels/sketchboard/pkg/fonts"
)

// Measurer reports the advance width of a string at a font size.
type Measurer interface {
	MeasureString(s string, fontSize float64) float64
}

// MeasurerFunc adapts a function to the [Measurer] interface.
type MeasurerFunc func(s string, fontSize float64) float64

// MeasureString calls f.
func (f MeasurerFunc) MeasureString(s string, fontSize float64) float64 { return f(s, fontSize) }

// FixedWidth gives every rune the same advance regardless of font size.
type FixedWidth float64

// MeasureString implements [Measurer].
func (w FixedWidth) MeasureString(s string, _ float64) float64 {
	return float64(utf8.RuneCountInString(s)) * float64(w)
}

// CellMeasurer measures text in terminal cells, each CellWidth pixels wide.
// Wide runes occupy two cells.
type CellMeasurer struct {
	CellWidth float64
}

// MeasureString implements [Measurer].
func (c CellMeasurer) MeasureString(s string, _ float64) float64 {
	return float64(runewidth.StringWidth(s)) * c.CellWidth
}

// FaceMeasurer measures text with a TrueType font at 72 DPI, so one point is
// one pixel. Faces are created lazily per font size and cached; a
// FaceMeasurer is safe for concurrent use.
type FaceMeasurer struct {
	font *truetype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFaceMeasurer parses a TrueType font.
func NewFaceMeasurer(ttf []byte) (*FaceMeasurer, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return &FaceMeasurer{font: f, faces: make(map[float64]font.Face)}, nil
}

var (
	defaultFace     *FaceMeasurer
	defaultFaceOnce sync.Once
)

// DefaultFaceMeasurer returns a shared measurer for the embedded Go Regular font.
func DefaultFaceMeasurer() *FaceMeasurer {
	defaultFaceOnce.Do(func() {
		m, err := NewFaceMeasurer(fonts.Regular())
		if err != nil {
			panic("textlayout: embedded Go Regular font is invalid: " + err.Error())
		}
		defaultFace = m
	})
	return defaultFace
}

// Face returns the cached face for size.
func (m *FaceMeasurer) Face(size float64) font.Face {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(m.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	m.faces[size] = f
	return f
}

// MeasureString implements [Measurer].
func (m *FaceMeasurer) MeasureString(s string, fontSize float64) float64 {
	face := m.Face(fontSize)
	m.mu.Lock()
	defer m.mu.Unlock()
	return float64(font.MeasureString(face, s)) / 64
}
