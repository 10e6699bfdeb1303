package geom

import (
	"math"
	"strconv"
	"strings"
)

// ControlPoints returns the two control points of the connector curve from
// (x1, y1) to (x2, y2).
//
// The orientation is decided by the centers of the connected shapes, (fX, fY)
// and (tX, tY): when vertical travel dominates (ties included) the curve
// leaves and enters vertically, with both control points on the vertical
// midline; otherwise both control points sit on the horizontal midline.
func ControlPoints(fX, fY, tX, tY, x1, y1, x2, y2 float64) (c1, c2 Point) {
	if math.Abs(fX-tX) <= math.Abs(fY-tY) {
		midY := (y1 + y2) / 2
		return Point{x1, midY}, Point{x2, midY}
	}
	midX := (x1 + x2) / 2
	return Point{midX, y1}, Point{midX, y2}
}

// Curve is a cubic segment from Start to End.
type Curve struct {
	Start Point `json:"start"`
	C1    Point `json:"c1"`
	C2    Point `json:"c2"`
	End   Point `json:"end"`
}

// NewCurve returns the connector curve from (x1, y1) to (x2, y2) with the
// orientation picked by [ControlPoints].
func NewCurve(fX, fY, tX, tY, x1, y1, x2, y2 float64) Curve {
	c1, c2 := ControlPoints(fX, fY, tX, tY, x1, y1, x2, y2)
	return Curve{Start: Point{x1, y1}, C1: c1, C2: c2, End: Point{x2, y2}}
}

// String returns the point list "x1 y1 c1x c1y c2x c2y x2 y2".
func (c Curve) String() string {
	return joinNumbers(c.Start.X, c.Start.Y, c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.End.X, c.End.Y)
}

// At evaluates the curve at t in [0, 1].
func (c Curve) At(t float64) Point {
	u := 1 - t
	a, b, cc, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point{
		X: a*c.Start.X + b*c.C1.X + cc*c.C2.X + d*c.End.X,
		Y: a*c.Start.Y + b*c.C1.Y + cc*c.C2.Y + d*c.End.Y,
	}
}

// CurvePath returns the connector curve as "x1 y1 c1x c1y c2x c2y x2 y2",
// the point list of an SVG cubic segment ("M x1 y1 C c1x c1y ...").
func CurvePath(fX, fY, tX, tY, x1, y1, x2, y2 float64) string {
	return NewCurve(fX, fY, tX, tY, x1, y1, x2, y2).String()
}

// SVGPath wraps a [CurvePath] point list into SVG path data.
func SVGPath(points string) string {
	coords := strings.Fields(points)
	if len(coords) != 8 {
		return ""
	}
	return "M " + strings.Join(coords[:2], " ") + " C " + strings.Join(coords[2:], " ")
}

func joinNumbers(vs ...float64) string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(FormatNumber(v))
	}
	return b.String()
}

// FormatNumber formats v in its shortest decimal form ("20", "12.5").
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
