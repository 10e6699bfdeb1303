package editor

import (
	"fmt"
	"strings"

	"github.com/matzehuels/sketchboard/pkg/geom"
)

// Item is a positioned rectangle on the canvas. Key is the immutable
// identity; Type is opaque to the editor and only used to look up sizes.
type Item struct {
	Key  string         `json:"key"`
	X    float64        `json:"x"`
	Y    float64        `json:"y"`
	W    float64        `json:"w"`
	H    float64        `json:"h"`
	Type string         `json:"type,omitempty"`
	Meta map[string]any `json:"meta,omitempty"`
}

// Bounds returns the item geometry as a rectangle.
func (it Item) Bounds() geom.Rect { return geom.Rect{X: it.X, Y: it.Y, W: it.W, H: it.H} }

// Center returns the center of the item in virtual coordinates.
func (it Item) Center() geom.Point { return it.Bounds().Center() }

// Size is a width and height pair.
type Size struct {
	W float64 `json:"w" toml:"w"`
	H float64 `json:"h" toml:"h"`
}

// SizeProvider answers size questions per item type.
type SizeProvider interface {
	MinSize(typ string) Size
	DefaultSize(typ string) Size
}

// DefaultItemSize is used by [FixedSizes] when a size is left zero.
var DefaultItemSize = Size{W: 40, H: 40}

// FixedSizes returns the same sizes for every item type.
type FixedSizes struct {
	Min     Size
	Default Size
}

// MinSize implements [SizeProvider].
func (f FixedSizes) MinSize(string) Size { return orDefault(f.Min) }

// DefaultSize implements [SizeProvider].
func (f FixedSizes) DefaultSize(string) Size { return orDefault(f.Default) }

func orDefault(s Size) Size {
	if s.W <= 0 || s.H <= 0 {
		return DefaultItemSize
	}
	return s
}

// Direction is the compass direction of a resize handle.
type Direction string

const (
	DirN  Direction = "n"
	DirNE Direction = "ne"
	DirE  Direction = "e"
	DirSE Direction = "se"
	DirS  Direction = "s"
	DirSW Direction = "sw"
	DirW  Direction = "w"
	DirNW Direction = "nw"
)

// Directions lists all handle directions clockwise from north.
var Directions = []Direction{DirN, DirNE, DirE, DirSE, DirS, DirSW, DirW, DirNW}

// Valid reports whether d is one of the eight compass directions.
func (d Direction) Valid() bool {
	for _, v := range Directions {
		if d == v {
			return true
		}
	}
	return false
}

// ParseDirection parses a handle direction such as "ne".
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("invalid resize direction: %q", s)
	}
	return d, nil
}

// north, south, east and west report which edges a direction drags.
func (d Direction) north() bool { return d == DirN || d == DirNE || d == DirNW }
func (d Direction) south() bool { return d == DirS || d == DirSE || d == DirSW }
func (d Direction) east() bool  { return d == DirE || d == DirNE || d == DirSE }
func (d Direction) west() bool  { return d == DirW || d == DirNW || d == DirSW }

// HandlePoint returns the position of the resize handle d on the border of
// it, in virtual coordinates.
func HandlePoint(it Item, d Direction) geom.Point {
	p := it.Center()
	if d.north() {
		p.Y = it.Y
	}
	if d.south() {
		p.Y = it.Y + it.H
	}
	if d.west() {
		p.X = it.X
	}
	if d.east() {
		p.X = it.X + it.W
	}
	return p
}
